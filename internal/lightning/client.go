// Package lightning talks to a Core Lightning node over its JSON-RPC socket
// and models the values its methods take.
package lightning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrConnectionClosed is returned when the node closes the socket.
	ErrConnectionClosed = errors.New("node connection closed")
	// ErrProtocol is returned when the node sends something that is not a
	// reply to the outstanding request.
	ErrProtocol = errors.New("node protocol violation")
)

// RPCError is an error object returned by the node.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

// Dialer opens a stream connection to address.
type Dialer interface {
	Dial(ctx context.Context, address string) (net.Conn, error)
}

type unixDialer struct{}

func (unixDialer) Dial(ctx context.Context, address string) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, "unix", address)
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type response struct {
	ID     string          `json:"id"`
	Method string          `json:"method"`
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// Client owns the single connection to the node. Calls are serialized: one
// request is written and its reply read before the next caller proceeds.
// The connection is dialled on first use and after any transport failure.
type Client struct {
	path   string
	dialer Dialer

	mu   sync.Mutex
	conn net.Conn
	dec  *json.Decoder
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithDialer replaces the default unix socket dialer.
func WithDialer(d Dialer) ClientOption {
	return func(c *Client) { c.dialer = d }
}

// NewClient returns a client for the RPC socket at path. No connection is
// made until the first call.
func NewClient(path string, opts ...ClientOption) *Client {
	c := &Client{path: path, dialer: unixDialer{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call sends method with params and returns the raw result. A nil params
// value is sent as an empty object.
//
// ctx is only consulted before the request is written. Once sent, the call
// waits for the node's reply; wait-style methods carry their own timeout
// parameter.
func (c *Client) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	if params == nil {
		params = struct{}{}
	}
	id := fmt.Sprintf("botimint:%s#%s", method, uuid.NewString())
	body, err := json.Marshal(request{JSONRPC: "2.0", ID: id, Method: method, Params: params})
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", method, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.connectLocked(ctx); err != nil {
		return nil, err
	}

	if _, err := c.conn.Write(body); err != nil {
		c.resetLocked()
		return nil, fmt.Errorf("send %s request: %w", method, err)
	}

	for {
		var resp response
		if err := c.dec.Decode(&resp); err != nil {
			c.resetLocked()
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("read %s response: %w", method, ErrConnectionClosed)
			}
			return nil, fmt.Errorf("read %s response: %w", method, err)
		}
		if resp.Method != "" && resp.ID == "" {
			continue // notification
		}
		if resp.ID != id {
			c.resetLocked()
			return nil, fmt.Errorf("%w: got reply %q while waiting for %q", ErrProtocol, resp.ID, id)
		}
		if resp.Error != nil {
			return nil, resp.Error
		}
		return resp.Result, nil
	}
}

// Close drops the connection. A later call dials again.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn, c.dec = nil, nil
	return err
}

func (c *Client) connectLocked(ctx context.Context) error {
	if c.conn != nil {
		return nil
	}
	conn, err := c.dialer.Dial(ctx, c.path)
	if err != nil {
		return fmt.Errorf("connect to node at %s: %w", c.path, err)
	}
	c.conn = conn
	c.dec = json.NewDecoder(conn)
	return nil
}

func (c *Client) resetLocked() {
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.conn, c.dec = nil, nil
}
