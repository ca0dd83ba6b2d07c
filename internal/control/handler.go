package control

import "context"

// Request represents an incoming command with its arguments.
type Request struct {
	Command string         // command name, e.g. "status" or "config.get"
	Args    []string       // positional arguments
	Options map[string]any // named options
}

// NewRequest creates a request from a decoded message.
func NewRequest(msg *Message) *Request {
	return &Request{
		Command: msg.Command,
		Args:    msg.Args,
		Options: msg.Options,
	}
}

// Arg returns the i-th positional argument or "".
func (r *Request) Arg(i int) string {
	if i < 0 || i >= len(r.Args) {
		return ""
	}
	return r.Args[i]
}

// Handler processes a request and returns a message response.
type Handler interface {
	Handle(ctx context.Context, req *Request) *Message
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, req *Request) *Message

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, req *Request) *Message {
	return f(ctx, req)
}
