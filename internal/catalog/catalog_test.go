package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kodylow/botimint/internal/command"
)

const (
	testPubKey = "02eec7245d6b7d2ccb30380bfbe2a3648cd7a942653f5aa340edcea1f283686619"
	testTxID   = "a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90"
)

type call struct {
	method string
	params map[string]any
}

type stubNode struct {
	calls  []call
	result json.RawMessage
}

func (s *stubNode) Call(_ context.Context, method string, params any) (json.RawMessage, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	s.calls = append(s.calls, call{method: method, params: m})
	if s.result != nil {
		return s.result, nil
	}
	return json.RawMessage(`{}`), nil
}

func newDispatcher(t *testing.T, node *stubNode) *command.Dispatcher {
	t.Helper()
	reg, err := NewRegistry()
	require.NoError(t, err)
	return command.NewDispatcher(reg, node)
}

func opts(kv ...any) []command.RawOption {
	out := make([]command.RawOption, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, command.RawOption{Name: kv[i].(string), Value: kv[i+1]})
	}
	return out
}

func TestCatalogRegisters(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)
	require.Equal(t, 56, reg.Len())

	for _, d := range reg.Descriptors() {
		require.True(t, d.Name == "ping" || strings.HasPrefix(d.Name, Prefix), d.Name)
		require.NotEmpty(t, d.Description, d.Name)
		require.LessOrEqual(t, len(d.Description), 100, d.Name)
		for _, p := range d.Params {
			require.NotEmpty(t, p.Description, "%s.%s", d.Name, p.Name)
			require.LessOrEqual(t, len(p.Description), 100, "%s.%s", d.Name, p.Name)
			require.LessOrEqual(t, len(p.Name), 32, "%s.%s", d.Name, p.Name)
			require.Equal(t, strings.ToLower(p.Name), p.Name)
		}
	}
}

func TestPingIsLocal(t *testing.T) {
	node := &stubNode{}
	d := newDispatcher(t, node)
	require.Equal(t, PingReply, d.Dispatch(context.Background(), "ping", nil))
	require.Empty(t, node.calls)
}

func TestMethodMapping(t *testing.T) {
	tests := []struct {
		command string
		options []command.RawOption
		method  string
	}{
		{command: "cln_info", method: "getinfo"},
		{command: "cln_autoclean", method: "autoclean-invoice"},
		{command: "cln_listtransactions", method: "listtransactions"},
		{command: "cln_staticbackup", method: "staticbackup"},
		{command: "cln_decode", options: opts("invstring", "lnbc1"), method: "decode"},
		{command: "cln_ping", options: opts("id", testPubKey), method: "ping"},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			node := &stubNode{}
			d := newDispatcher(t, node)
			d.Dispatch(context.Background(), tt.command, tt.options)
			require.Len(t, node.calls, 1)
			require.Equal(t, tt.method, node.calls[0].method)
		})
	}
}

func TestPayDefaults(t *testing.T) {
	node := &stubNode{}
	d := newDispatcher(t, node)
	d.Dispatch(context.Background(), "cln_pay", opts("bolt11", "lnbc1"))

	require.Len(t, node.calls, 1)
	require.Equal(t, map[string]any{
		"bolt11":        "lnbc1",
		"riskfactor":    float64(10),
		"maxfeepercent": 0.5,
		"retry_for":     float64(60),
		"exemptfee":     "5000msat",
	}, node.calls[0].params)
}

func TestConnectSplitsConnectionString(t *testing.T) {
	node := &stubNode{}
	d := newDispatcher(t, node)
	d.Dispatch(context.Background(), "cln_connect", opts("connection_string", testPubKey+"@127.0.0.1:9735"))

	require.Len(t, node.calls, 1)
	require.Equal(t, map[string]any{"id": testPubKey, "host": "127.0.0.1", "port": float64(9735)}, node.calls[0].params)

	reply := d.Dispatch(context.Background(), "cln_connect", opts("connection_string", testPubKey))
	require.True(t, strings.HasPrefix(reply, "Error: malformed value"), reply)
	require.Len(t, node.calls, 1)
}

func TestCreateinvoiceGeneratesLabel(t *testing.T) {
	node := &stubNode{}
	d := newDispatcher(t, node)
	d.Dispatch(context.Background(), "cln_createinvoice", opts("invstring", "lnbc1", "preimage", "00"))
	d.Dispatch(context.Background(), "cln_createinvoice", opts("invstring", "lnbc1", "preimage", "00"))

	require.Len(t, node.calls, 2)
	first := node.calls[0].params["label"].(string)
	second := node.calls[1].params["label"].(string)
	require.True(t, strings.HasPrefix(first, "botimint-"), first)
	require.NotEqual(t, first, second)

	d.Dispatch(context.Background(), "cln_createinvoice", opts("invstring", "lnbc1", "preimage", "00", "label", "mine"))
	require.Equal(t, "mine", node.calls[2].params["label"])
}

func TestWalletDefaults(t *testing.T) {
	node := &stubNode{}
	d := newDispatcher(t, node)

	d.Dispatch(context.Background(), "cln_newaddr", nil)
	d.Dispatch(context.Background(), "cln_listfunds", nil)
	d.Dispatch(context.Background(), "cln_fundchannel", opts("id", testPubKey, "amount", "all"))

	require.Len(t, node.calls, 3)
	require.Equal(t, map[string]any{"addresstype": "bech32"}, node.calls[0].params)
	require.Equal(t, map[string]any{"spent": false}, node.calls[1].params)
	require.Equal(t, map[string]any{"id": testPubKey, "amount": "all", "feerate": "1000perkb"}, node.calls[2].params)
}

func TestWithdrawAndTxprepare(t *testing.T) {
	node := &stubNode{}
	d := newDispatcher(t, node)

	d.Dispatch(context.Background(), "cln_withdraw", opts(
		"destination", "bcrt1qexample",
		"amount", "all",
		"feerate", "urgent",
		"utxos", `["`+testTxID+`:1"]`,
	))
	d.Dispatch(context.Background(), "cln_txprepare", opts("outputs", `["bcrt1qexample:10000sat"]`))

	require.Len(t, node.calls, 2)
	require.Equal(t, map[string]any{
		"destination": "bcrt1qexample",
		"satoshi":     "all",
		"feerate":     "urgent",
		"utxos":       []any{testTxID + ":1"},
	}, node.calls[0].params)
	require.Equal(t, []any{map[string]any{"bcrt1qexample": "10000000msat"}}, node.calls[1].params["outputs"])
}

func TestKeysendStructuredOptions(t *testing.T) {
	node := &stubNode{}
	d := newDispatcher(t, node)

	d.Dispatch(context.Background(), "cln_keysend", opts(
		"destination", testPubKey,
		"amount_msat", "1sat",
		"extratlvs", `[{"typ": 5482373484, "value": "beef"}]`,
	))
	require.Len(t, node.calls, 1)
	require.Equal(t, map[string]any{"5482373484": "beef"}, node.calls[0].params["extratlvs"])
	require.Equal(t, "1000msat", node.calls[0].params["amount_msat"])
	require.NotContains(t, node.calls[0].params, "routehints")
}

func TestGetConnectionString(t *testing.T) {
	node := &stubNode{result: json.RawMessage(`{
		"id": "` + testPubKey + `",
		"address": [],
		"binding": [{"type": "ipv4", "address": "127.0.0.1", "port": 9735}]
	}`)}
	d := newDispatcher(t, node)

	reply := d.Dispatch(context.Background(), "cln_get_connection_string", nil)
	require.Equal(t, testPubKey+"@127.0.0.1:9735", reply)
	require.Equal(t, "getinfo", node.calls[0].method)
}

func TestEnumOptionsPublishChoices(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	d, ok := reg.Lookup("cln_delinvoice")
	require.True(t, ok)
	require.Equal(t, "status", d.Params[1].Name)
	require.Equal(t, []string{"paid", "expired", "unpaid"}, d.Params[1].Choices)

	d, _ = reg.Lookup("cln_feerates")
	require.Equal(t, []string{"perkb", "perkw"}, d.Params[0].Choices)
}
