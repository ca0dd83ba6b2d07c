package control

import (
	"context"
	"net"
)

// Transport abstracts the underlying connection mechanism.
type Transport interface {
	// Listen creates a listener at the given address
	Listen(address string) (net.Listener, error)
	// Dial connects to the given address; ctx bounds the attempt
	Dial(ctx context.Context, address string) (net.Conn, error)
	// Cleanup performs any necessary cleanup (e.g., removing socket files)
	Cleanup(address string) error
}

// UnixTransport implements Transport using Unix domain sockets.
type UnixTransport struct{}

// Listen creates a Unix socket listener.
func (UnixTransport) Listen(address string) (net.Listener, error) {
	return net.Listen("unix", address)
}

// Dial connects to a Unix socket.
func (UnixTransport) Dial(ctx context.Context, address string) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, "unix", address)
}

// Cleanup removes the socket file if it exists.
func (UnixTransport) Cleanup(address string) error {
	return removeIfExists(address)
}

// TCPTransport implements Transport using TCP sockets. Loopback only is
// advised: the protocol has no authentication.
type TCPTransport struct{}

// Listen creates a TCP listener.
func (TCPTransport) Listen(address string) (net.Listener, error) {
	return net.Listen("tcp", address)
}

// Dial connects to a TCP address.
func (TCPTransport) Dial(ctx context.Context, address string) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, "tcp", address)
}

// Cleanup is a no-op for TCP (no file to remove).
func (TCPTransport) Cleanup(_ string) error {
	return nil
}

// DefaultTransport is the transport used by default (Unix sockets).
var DefaultTransport Transport = UnixTransport{}
