package command

import (
	"errors"
	"fmt"

	"github.com/Kodylow/botimint/internal/lightning"
)

// MissingParameterError reports a required parameter that was not supplied.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter %q", e.Name)
}

// MalformedValueError reports a parameter whose value did not decode.
type MalformedValueError struct {
	Name     string
	Expected string
	Err      error
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed value for %q (expected %s): %v", e.Name, e.Expected, e.Err)
}

func (e *MalformedValueError) Unwrap() error { return e.Err }

// UnsupportedCommandError reports a command name with no descriptor.
type UnsupportedCommandError struct {
	Name string
}

func (e *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("unsupported command %q", e.Name)
}

// RemoteCallError wraps a failure of the node call itself. An error the node
// returned is shown as is; other failures are prefixed with the method.
type RemoteCallError struct {
	Method string
	Err    error
}

func (e *RemoteCallError) Error() string {
	var rpcErr *lightning.RPCError
	if errors.As(e.Err, &rpcErr) {
		return rpcErr.Error()
	}
	return fmt.Sprintf("%s: %v", e.Method, e.Err)
}

func (e *RemoteCallError) Unwrap() error { return e.Err }

// RenderError wraps a failure to turn a node result into text.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return fmt.Sprintf("render result: %v", e.Err) }

func (e *RenderError) Unwrap() error { return e.Err }
