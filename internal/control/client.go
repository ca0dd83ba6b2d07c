package control

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotRunning is returned when no bot is listening on the control socket.
var ErrNotRunning = errors.New("botimint is not running")

// ClientConfig holds client configuration options.
type ClientConfig struct {
	StateDir string
	// Address overrides the socket path derived from StateDir.
	Address    string
	Transport  Transport
	WireFormat WireFormat
}

// Client sends commands to a running control listener.
type Client struct {
	address    string
	transport  Transport
	wireFormat WireFormat
}

// NewClient creates a client with default transport and wire format.
func NewClient(stateDir string) *Client {
	return NewClientWithConfig(ClientConfig{StateDir: stateDir})
}

// NewClientWithConfig creates a client with custom configuration.
func NewClientWithConfig(cfg ClientConfig) *Client {
	if cfg.Transport == nil {
		cfg.Transport = DefaultTransport
	}
	if cfg.WireFormat == nil {
		cfg.WireFormat = DefaultWireFormat
	}
	address := cfg.Address
	if address == "" {
		address = SocketPath(cfg.StateDir)
	}
	return &Client{
		address:    address,
		transport:  cfg.Transport,
		wireFormat: cfg.WireFormat,
	}
}

// Send writes msg and returns the response. ctx bounds the whole exchange;
// without a deadline the client waits as long as the listener takes.
func (c *Client) Send(ctx context.Context, msg *Message) (*Message, error) {
	conn, err := c.transport.Dial(ctx, c.address)
	if err != nil {
		if isSocketNotAvailable(err) {
			return nil, fmt.Errorf("%w: %v", ErrNotRunning, err)
		}
		return nil, err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf("set deadline: %w", err)
		}
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	if err := c.wireFormat.Encode(conn, msg); err != nil {
		return nil, fmt.Errorf("send command: %w", err)
	}

	resp, err := c.wireFormat.Decode(conn)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("read response: %w", err)
	}
	return resp, nil
}

func (c *Client) sendCommand(ctx context.Context, msg *Message) (*Message, error) {
	resp, err := c.Send(ctx, msg)
	if err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("server error: %s", resp.Error)
	}
	return resp, nil
}

// IsRunning checks if a bot is listening.
func (c *Client) IsRunning(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, clientPingTimeout)
	defer cancel()
	resp, err := c.Send(ctx, &Message{Command: CmdPing})
	if err != nil {
		return false
	}
	return resp.Response == RespPong
}

// Status gets the status of the running bot. A missing socket reports
// StatusStopped without error.
func (c *Client) Status(ctx context.Context) (StatusInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, clientPingTimeout)
	defer cancel()
	resp, err := c.sendCommand(ctx, &Message{Command: CmdStatus})
	if err != nil {
		if errors.Is(err, ErrNotRunning) {
			return StatusInfo{State: StatusStopped}, nil
		}
		return StatusInfo{}, fmt.Errorf("get status: %w", err)
	}
	var info StatusInfo
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &info); err != nil {
			return StatusInfo{}, fmt.Errorf("decode status: %w", err)
		}
	}
	if info.State == "" {
		info.State = resp.Response
	}
	return info, nil
}

// Commands lists the command names the running bot accepts.
func (c *Client) Commands(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, clientCmdTimeout)
	defer cancel()
	resp, err := c.sendCommand(ctx, &Message{Command: CmdCommands})
	if err != nil {
		return nil, err
	}
	var names []string
	if err := json.Unmarshal(resp.Data, &names); err != nil {
		return nil, fmt.Errorf("decode command list: %w", err)
	}
	return names, nil
}

// Call invokes a command through the running bot and returns its reply
// text. Failures of the command itself are part of the reply.
func (c *Client) Call(ctx context.Context, name string, options map[string]any) (string, error) {
	resp, err := c.sendCommand(ctx, &Message{Command: name, Options: options})
	if err != nil {
		return "", err
	}
	return resp.Response, nil
}

// ConfigGet reads one runtime configuration value.
func (c *Client) ConfigGet(ctx context.Context, key string) (string, error) {
	return c.config(ctx, "get", key)
}

// ConfigSet changes one runtime configuration value.
func (c *Client) ConfigSet(ctx context.Context, key, value string) error {
	_, err := c.config(ctx, "set", key, value)
	return err
}

// ConfigKeys lists the runtime configuration keys.
func (c *Client) ConfigKeys(ctx context.Context) (string, error) {
	return c.config(ctx, "keys")
}

func (c *Client) config(ctx context.Context, op string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, clientCmdTimeout)
	defer cancel()
	resp, err := c.sendCommand(ctx, &Message{Command: "config." + op, Args: args})
	if err != nil {
		return "", err
	}
	return resp.Response, nil
}
