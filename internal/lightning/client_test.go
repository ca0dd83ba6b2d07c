package lightning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeNode serves JSON-RPC requests on the server end of a net.Pipe.
type fakeNode struct {
	t      *testing.T
	handle func(req map[string]any) []any

	mu       sync.Mutex
	dials    int
	inflight int
	overlap  bool
	methods  []string
}

func (n *fakeNode) Dial(_ context.Context, _ string) (net.Conn, error) {
	client, server := net.Pipe()
	n.mu.Lock()
	n.dials++
	n.mu.Unlock()
	go n.serve(server)
	return &trackedConn{Conn: client, node: n}, nil
}

func (n *fakeNode) serve(conn net.Conn) {
	defer conn.Close()
	dec := json.NewDecoder(conn)
	for {
		var req map[string]any
		if err := dec.Decode(&req); err != nil {
			return
		}
		n.mu.Lock()
		n.methods = append(n.methods, req["method"].(string))
		n.mu.Unlock()

		replies := n.handle(req)

		n.mu.Lock()
		n.inflight--
		n.mu.Unlock()

		for _, r := range replies {
			b, err := json.Marshal(r)
			if err != nil {
				n.t.Errorf("marshal reply: %v", err)
				return
			}
			if _, err := conn.Write(append(b, '\n', '\n')); err != nil {
				return
			}
		}
	}
}

// trackedConn counts requests written but not yet answered.
type trackedConn struct {
	net.Conn
	node *fakeNode
}

func (c *trackedConn) Write(b []byte) (int, error) {
	c.node.mu.Lock()
	c.node.inflight++
	if c.node.inflight > 1 {
		c.node.overlap = true
	}
	c.node.mu.Unlock()
	return c.Conn.Write(b)
}

func echoResult(result any) func(map[string]any) []any {
	return func(req map[string]any) []any {
		return []any{map[string]any{"jsonrpc": "2.0", "id": req["id"], "result": result}}
	}
}

func TestClientCall(t *testing.T) {
	node := &fakeNode{t: t}
	var gotParams any
	node.handle = func(req map[string]any) []any {
		gotParams = req["params"]
		return echoResult(map[string]any{"address": "bcrt1qxyz"})(req)
	}
	c := NewClient("/tmp/lightning-rpc", WithDialer(node))
	defer c.Close()

	raw, err := c.Call(context.Background(), "newaddr", NewaddrRequest{AddressType: AddressBech32})
	require.NoError(t, err)
	require.JSONEq(t, `{"address":"bcrt1qxyz"}`, string(raw))
	require.Equal(t, map[string]any{"addresstype": "bech32"}, gotParams)
}

func TestClientNilParamsSendsEmptyObject(t *testing.T) {
	node := &fakeNode{t: t}
	var gotParams any
	node.handle = func(req map[string]any) []any {
		gotParams = req["params"]
		return echoResult(map[string]any{})(req)
	}
	c := NewClient("sock", WithDialer(node))
	defer c.Close()

	_, err := c.Call(context.Background(), "listtransactions", nil)
	require.NoError(t, err)
	require.Equal(t, map[string]any{}, gotParams)
}

func TestClientSkipsNotifications(t *testing.T) {
	node := &fakeNode{t: t}
	node.handle = func(req map[string]any) []any {
		return []any{
			map[string]any{"jsonrpc": "2.0", "method": "message", "params": map[string]any{"level": "info"}},
			map[string]any{"jsonrpc": "2.0", "id": req["id"], "result": map[string]any{"ok": true}},
		}
	}
	c := NewClient("sock", WithDialer(node))
	defer c.Close()

	raw, err := c.Call(context.Background(), "stop", StopRequest{})
	require.NoError(t, err)
	require.JSONEq(t, `{"ok":true}`, string(raw))
}

func TestClientRPCError(t *testing.T) {
	node := &fakeNode{t: t}
	node.handle = func(req map[string]any) []any {
		return []any{map[string]any{
			"jsonrpc": "2.0",
			"id":      req["id"],
			"error":   map[string]any{"code": 210, "message": "Destination unknown"},
		}}
	}
	c := NewClient("sock", WithDialer(node))
	defer c.Close()

	_, err := c.Call(context.Background(), "pay", PayRequest{Bolt11: "lnbc1"})
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, 210, rpcErr.Code)
	require.Equal(t, "RPC error 210: Destination unknown", err.Error())

	// An RPC error leaves the connection usable.
	node.handle = echoResult(map[string]any{})
	_, err = c.Call(context.Background(), "getinfo", nil)
	require.NoError(t, err)
	require.Equal(t, 1, node.dials)
}

func TestClientMismatchedIDDropsConnection(t *testing.T) {
	node := &fakeNode{t: t}
	node.handle = func(map[string]any) []any {
		return []any{map[string]any{"jsonrpc": "2.0", "id": "someone-else", "result": map[string]any{}}}
	}
	c := NewClient("sock", WithDialer(node))
	defer c.Close()

	_, err := c.Call(context.Background(), "getinfo", nil)
	require.ErrorIs(t, err, ErrProtocol)

	node.handle = echoResult(map[string]any{})
	_, err = c.Call(context.Background(), "getinfo", nil)
	require.NoError(t, err)
	require.Equal(t, 2, node.dials)
}

func TestClientConnectionClosed(t *testing.T) {
	c := NewClient("sock", WithDialer(closingDialer{}))
	defer c.Close()

	_, err := c.Call(context.Background(), "getinfo", nil)
	require.ErrorIs(t, err, ErrConnectionClosed)
}

type closingDialer struct{}

func (closingDialer) Dial(context.Context, string) (net.Conn, error) {
	client, server := net.Pipe()
	go func() {
		dec := json.NewDecoder(server)
		var req map[string]any
		_ = dec.Decode(&req)
		server.Close()
	}()
	return client, nil
}

func TestClientCancelledContextSendsNothing(t *testing.T) {
	node := &fakeNode{t: t, handle: echoResult(map[string]any{})}
	c := NewClient("sock", WithDialer(node))
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Call(ctx, "getinfo", nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, node.dials)
}

func TestClientDialFailure(t *testing.T) {
	c := NewClient("sock", WithDialer(failingDialer{}))
	_, err := c.Call(context.Background(), "getinfo", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "connect to node at sock")
}

type failingDialer struct{}

func (failingDialer) Dial(context.Context, string) (net.Conn, error) {
	return nil, errors.New("connection refused")
}

func TestClientSerializesConcurrentCalls(t *testing.T) {
	node := &fakeNode{t: t}
	node.handle = func(req map[string]any) []any {
		time.Sleep(5 * time.Millisecond)
		return echoResult(map[string]any{"method": req["method"]})(req)
	}
	c := NewClient("sock", WithDialer(node))
	defer c.Close()

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			method := fmt.Sprintf("m%d", i)
			raw, err := c.Call(context.Background(), method, nil)
			if err != nil {
				errs <- err
				return
			}
			var got map[string]string
			if err := json.Unmarshal(raw, &got); err != nil {
				errs <- err
				return
			}
			if got["method"] != method {
				errs <- fmt.Errorf("call %s got reply for %s", method, got["method"])
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	node.mu.Lock()
	defer node.mu.Unlock()
	require.False(t, node.overlap, "requests overlapped on the shared connection")
	require.Len(t, node.methods, n)
	require.Equal(t, 1, node.dials)
}

func TestInfoConnectionString(t *testing.T) {
	info, err := ParseInfo(json.RawMessage(`{
		"id": "` + testPubKey + `",
		"alias": "botimint",
		"binding": [{"type": "ipv4", "address": "127.0.0.1", "port": 9735}]
	}`))
	require.NoError(t, err)
	got, err := info.ConnectionString()
	require.NoError(t, err)
	require.Equal(t, testPubKey+"@127.0.0.1:9735", got)

	info.Binding = nil
	_, err = info.ConnectionString()
	require.Error(t, err)
}
