package lightning

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testPubKey = "02eec7245d6b7d2ccb30380bfbe2a3648cd7a942653f5aa340edcea1f283686619"
	testTxID   = "a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90"
)

func TestParsePublicKey(t *testing.T) {
	pk, err := ParsePublicKey(testPubKey)
	require.NoError(t, err)
	require.Equal(t, testPubKey, pk.String())

	_, err = ParsePublicKey("04" + testPubKey[2:])
	require.Error(t, err)
	_, err = ParsePublicKey(testPubKey[:64])
	require.Error(t, err)
	_, err = ParsePublicKey(strings.Replace(testPubKey, "e", "g", 1))
	require.Error(t, err)
}

func TestParseShortChannelID(t *testing.T) {
	scid, err := ParseShortChannelID("812345x1024x1")
	require.NoError(t, err)
	require.Equal(t, ShortChannelID{Block: 812345, Tx: 1024, Output: 1}, scid)
	require.Equal(t, "812345x1024x1", scid.String())

	for _, bad := range []string{"1x2", "1x2x3x4", "ax1x1", "16777216x0x0", "1x1x65536"} {
		_, err := ParseShortChannelID(bad)
		require.Error(t, err, bad)
	}
}

func TestParseOutpoint(t *testing.T) {
	op, err := ParseOutpoint(testTxID + ":3")
	require.NoError(t, err)
	require.Equal(t, uint32(3), op.Index)
	require.Equal(t, testTxID, op.TxID.String())

	b, err := json.Marshal(op)
	require.NoError(t, err)
	require.JSONEq(t, `"`+testTxID+`:3"`, string(b))

	for _, bad := range []string{"not-an-outpoint", testTxID, testTxID + ":1:2", "abcd:1", testTxID + ":-1"} {
		_, err := ParseOutpoint(bad)
		require.Error(t, err, bad)
	}
}

func TestOutputDescJSON(t *testing.T) {
	out, err := ParseOutputDesc("bcrt1qexample:10000sat")
	require.NoError(t, err)
	b, err := json.Marshal(out)
	require.NoError(t, err)
	require.JSONEq(t, `{"bcrt1qexample":"10000000msat"}`, string(b))

	_, err = ParseOutputDesc(":1sat")
	require.Error(t, err)
}

func TestParseConnectionString(t *testing.T) {
	cs, err := ParseConnectionString(testPubKey + "@127.0.0.1:9735")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cs.Host)
	require.Equal(t, uint16(9735), cs.Port)

	cs, err = ParseConnectionString(testPubKey + "@example.onion")
	require.NoError(t, err)
	require.Equal(t, "example.onion", cs.Host)
	require.Zero(t, cs.Port)

	_, err = ParseConnectionString(testPubKey)
	require.Error(t, err)
}

func TestTlvStreamJSON(t *testing.T) {
	s := TlvStream{{Type: 5482373484, Value: []byte{0xde, 0xad}}}
	b, err := json.Marshal(s)
	require.NoError(t, err)
	require.JSONEq(t, `{"5482373484":"dead"}`, string(b))
}

func TestRequestsOmitUnsetOptionals(t *testing.T) {
	b, err := json.Marshal(PayRequest{Bolt11: "lnbc1", Riskfactor: 10, Maxfeepercent: 0.5, RetryFor: 60, Exemptfee: Msat(5000)})
	require.NoError(t, err)
	require.JSONEq(t, `{"bolt11":"lnbc1","riskfactor":10,"maxfeepercent":0.5,"retry_for":60,"exemptfee":"5000msat"}`, string(b))
}
