// Package control provides the local control plane of a running bot with
// pluggable transports and wire formats.
//
// Architecture:
//
//	Client ─── WireFormat ─── Transport ─── Listener ─── Router ─── Handler ─── Controller
//	                                                        │
//	                                                        └── fallback ─── Controller.Invoke ─── Dispatcher
//
// Components:
//   - Controller: Domain interface of the running bot (Ping, Status, Invoke)
//   - WireFormat: Serialization format (JSON lines, plain lines)
//   - Transport:  Connection mechanism (Unix socket, TCP)
//   - Router:     Dispatches built-in commands to handlers; anything else
//     goes to the fallback handler
//   - Listener:   Accepts connections and coordinates components
//   - Client:     Sends commands to a listener
package control

import (
	"context"
	"time"
)

// Controller defines the operations the CLI can run against a live bot.
type Controller interface {
	// Ping checks if the controller is responsive.
	Ping(ctx context.Context) error
	// Status describes the running bot.
	Status(ctx context.Context) (StatusInfo, error)
	// Commands lists the names Invoke accepts.
	Commands() []string
	// Invoke runs one command and returns its reply text.
	Invoke(ctx context.Context, name string, options map[string]any) string
}

// StatusInfo is the payload of the status command.
type StatusInfo struct {
	State     string    `json:"state"`
	PID       int       `json:"pid"`
	StartedAt time.Time `json:"started_at"`
	Commands  int       `json:"commands"`
	NodeID    string    `json:"node_id,omitempty"`
	NodeAlias string    `json:"node_alias,omitempty"`
	Network   string    `json:"network,omitempty"`
}

// ControllerFunc allows functions to implement single Controller methods.
// Useful for testing or composition.
type ControllerFunc struct {
	PingFn     func(ctx context.Context) error
	StatusFn   func(ctx context.Context) (StatusInfo, error)
	CommandsFn func() []string
	InvokeFn   func(ctx context.Context, name string, options map[string]any) string
}

// Ping implements Controller.
func (f ControllerFunc) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	return nil
}

// Status implements Controller.
func (f ControllerFunc) Status(ctx context.Context) (StatusInfo, error) {
	if f.StatusFn != nil {
		return f.StatusFn(ctx)
	}
	return StatusInfo{State: StatusRunning}, nil
}

// Commands implements Controller.
func (f ControllerFunc) Commands() []string {
	if f.CommandsFn != nil {
		return f.CommandsFn()
	}
	return nil
}

// Invoke implements Controller.
func (f ControllerFunc) Invoke(ctx context.Context, name string, options map[string]any) string {
	if f.InvokeFn != nil {
		return f.InvokeFn(ctx, name, options)
	}
	return ""
}

// Status constants
const (
	StatusRunning = "running"
	StatusStopped = "stopped"
)

// Command constants
const (
	CmdPing     = "ping"
	CmdStatus   = "status"
	CmdCommands = "commands"
)

// Response constants
const (
	RespOK   = "ok"
	RespPong = "pong"
)
