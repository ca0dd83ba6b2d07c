package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		commandsFlags.json = false
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCommandsJSON(t *testing.T) {
	var list []commandJSON
	require.NoError(t, json.Unmarshal([]byte(runRoot(t, "commands", "--json")), &list))

	byName := make(map[string]commandJSON, len(list))
	for _, c := range list {
		byName[c.Name] = c
	}

	ping, ok := byName["ping"]
	require.True(t, ok)
	require.True(t, ping.Local)
	require.Empty(t, ping.Params)

	newaddr, ok := byName["cln_newaddr"]
	require.True(t, ok)
	require.False(t, newaddr.Local)
	require.Len(t, newaddr.Params, 1)
	p := newaddr.Params[0]
	require.Equal(t, "address_type", p.Name)
	require.Equal(t, "string", p.Kind)
	require.False(t, p.Required)
	require.Equal(t, "bech32", p.Default)
	require.Equal(t, []string{"bech32", "p2tr", "all"}, p.Choices)
}

func TestCommandsJSONSingle(t *testing.T) {
	var list []commandJSON
	require.NoError(t, json.Unmarshal([]byte(runRoot(t, "commands", "cln_info", "--json")), &list))
	require.Len(t, list, 1)
	require.Equal(t, "cln_info", list[0].Name)
}

func TestParseCallArgs(t *testing.T) {
	name, options, err := parseCallArgs([]string{"cln_invoice", "amount_msat=10sat", "label=coffee"})
	require.NoError(t, err)
	require.Equal(t, "cln_invoice", name)
	require.Equal(t, map[string]any{"amount_msat": "10sat", "label": "coffee"}, options)

	_, _, err = parseCallArgs([]string{"label=x"})
	require.Error(t, err)

	_, _, err = parseCallArgs([]string{"cln_invoice", "stray"})
	require.Error(t, err)
}
