package decode

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Kodylow/botimint/internal/lightning"
)

const (
	pubkey = "02eec7245d6b7d2ccb30380bfbe2a3648cd7a942653f5aa340edcea1f283686619"
	txid   = "a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90"
)

func TestScalarsDoNotCoerce(t *testing.T) {
	_, err := String(float64(12))
	require.Error(t, err)
	_, err = Uint32("12")
	require.Error(t, err)
	_, err = Bool("true")
	require.Error(t, err)
	_, err = Float64("0.5")
	require.Error(t, err)
	_, err = Amount(float64(1000))
	require.Error(t, err)

	var decErr *Error
	_, err = String(nil)
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, "want string: got null", err.Error())
}

func TestUnsigned(t *testing.T) {
	tests := []struct {
		name    string
		dec     func(any) (uint64, error)
		in      any
		want    uint64
		wantErr bool
	}{
		{name: "u16 max", dec: widen(Uint16), in: float64(65535), want: 65535},
		{name: "u16 overflow rejected", dec: widen(Uint16), in: float64(65536), wantErr: true},
		{name: "u32 overflow int rejected", dec: widen(Uint32), in: int64(1) << 32, wantErr: true},
		{name: "NaN rejected", dec: Uint64, in: math.NaN(), wantErr: true},
		{name: "Inf rejected", dec: Uint64, in: math.Inf(1), wantErr: true},
		{name: "json NaN rejected", dec: Uint64, in: json.Number("NaN"), wantErr: true},
		{name: "u32 from json number", dec: widen(Uint32), in: json.Number("4294967295"), want: 4294967295},
		{name: "u32 json number overflow", dec: widen(Uint32), in: json.Number("4294967296"), wantErr: true},
		{name: "u64 json exponent", dec: Uint64, in: json.Number("1e3"), want: 1000},
		{name: "negative", dec: Uint64, in: float64(-1), wantErr: true},
		{name: "negative int", dec: Uint64, in: -1, wantErr: true},
		{name: "fraction", dec: Uint64, in: 1.5, wantErr: true},
		{name: "u64 float beyond range", dec: Uint64, in: 1.8446744073709552e19, wantErr: true},
		{name: "go uint64", dec: Uint64, in: uint64(1 << 63), want: 1 << 63},
		{name: "bool is not a number", dec: Uint64, in: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.dec(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func widen[T uint16 | uint32](f Func[T]) func(any) (uint64, error) {
	return func(v any) (uint64, error) {
		n, err := f(v)
		return uint64(n), err
	}
}

func TestFloat64(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
	}{
		{name: "float", in: 0.5, want: 0.5},
		{name: "json number", in: json.Number("2.5e1"), want: 25},
		{name: "int8", in: int8(-3), want: -3},
		{name: "int16", in: int16(300), want: 300},
		{name: "uint", in: uint(7), want: 7},
		{name: "uint8", in: uint8(8), want: 8},
		{name: "uint16", in: uint16(16), want: 16},
		{name: "NaN rejected", in: math.NaN(), wantErr: true},
		{name: "Inf rejected", in: math.Inf(-1), wantErr: true},
		{name: "json NaN rejected", in: json.Number("NaN"), wantErr: true},
		{name: "json Infinity rejected", in: json.Number("Infinity"), wantErr: true},
		{name: "string rejected", in: "1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Float64(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestIsNumberText(t *testing.T) {
	for _, s := range []string{"0", "-1", "2.5", "1e3", "-0.5E-2"} {
		require.True(t, IsNumberText(s), s)
	}
	for _, s := range []string{"", "NaN", "Inf", "+1", "1.", ".5", "0x10", " 1", "1 ", "01"} {
		require.False(t, IsNumberText(s), s)
	}
}

func TestDecodeIsDeterministic(t *testing.T) {
	inputs := []any{"1000sat", "12x", float64(3), nil, []any{"a"}}
	for _, in := range inputs {
		a1, e1 := Amount(in)
		a2, e2 := Amount(in)
		require.Equal(t, a1, a2)
		require.Equal(t, e1 == nil, e2 == nil)
		if e1 != nil {
			require.Equal(t, e1.Error(), e2.Error())
		}
	}
}

func TestAmountCanonicalUnit(t *testing.T) {
	bare, err := Amount("1000")
	require.NoError(t, err)
	require.Equal(t, lightning.Msat(1000), bare)

	sat, err := Amount("1000sat")
	require.NoError(t, err)
	msat, err := Amount("1000000msat")
	require.NoError(t, err)
	require.Equal(t, sat, msat)
}

func TestAmountOrSentinels(t *testing.T) {
	all, err := AmountOrAll("all")
	require.NoError(t, err)
	require.True(t, all.All)

	some, err := AmountOrAll("5sat")
	require.NoError(t, err)
	require.Equal(t, lightning.AmountOrAll{Amount: lightning.Msat(5000)}, some)

	_, err = AmountOrAll("any")
	require.Error(t, err)

	anyAmt, err := AmountOrAny("any")
	require.NoError(t, err)
	require.True(t, anyAmt.Any)
}

func TestOutpoint(t *testing.T) {
	op, err := Outpoint(txid + ":3")
	require.NoError(t, err)
	require.Equal(t, uint32(3), op.Index)
	require.Equal(t, txid, op.TxID.String())

	_, err = Outpoint("not-an-outpoint")
	var decErr *Error
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, "outpoint", decErr.Expected)
}

func TestHexLengths(t *testing.T) {
	_, err := PublicKey(pubkey[:10])
	require.Error(t, err)
	_, err = Hash(txid + "00")
	require.Error(t, err)
	_, err = Secret("zz" + txid[2:])
	require.Error(t, err)
	h, err := Hash(txid)
	require.NoError(t, err)
	require.Equal(t, txid, h.String())
}

func TestSequenceFailsWhole(t *testing.T) {
	dec := Sequence(Uint16)
	got, err := dec([]any{float64(1), "two", float64(3)})
	require.Error(t, err)
	require.Nil(t, got)
	require.Contains(t, err.Error(), "element 1")

	got, err = dec([]any{float64(1), float64(2)})
	require.NoError(t, err)
	require.Equal(t, []uint16{1, 2}, got)

	_, err = dec(float64(1))
	require.Error(t, err)
}

func TestSequenceFromJSONText(t *testing.T) {
	got, err := Sequence(Outpoint)(`["` + txid + `:0", "` + txid + `:1",]`)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, uint32(1), got[1].Index)

	nums, err := Sequence(Uint32)("[1, 2, /* three */ 3]")
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 2, 3}, nums)

	_, err = Sequence(String)("not json")
	require.Error(t, err)
	_, err = Sequence(String)(`"just a string"`)
	require.Error(t, err)
	_, err = Sequence(String)(`["a"] ["b"]`)
	require.Error(t, err)
}

func TestEnum(t *testing.T) {
	dec := Enum("address type", lightning.AddressBech32, lightning.AddressP2TR, lightning.AddressAll)
	got, err := dec("p2tr")
	require.NoError(t, err)
	require.Equal(t, lightning.AddressP2TR, got)

	_, err = dec("P2TR")
	require.Error(t, err)
	_, err = dec(float64(1))
	require.Error(t, err)
}

func TestRecord(t *testing.T) {
	in := map[string]any{
		"amount_msat": "1000msat",
		"id":          pubkey,
		"delay":       float64(9),
		"channel":     "103x1x0",
	}
	got, err := SendpayRoute(in)
	require.NoError(t, err)

	pk, err := lightning.ParsePublicKey(pubkey)
	require.NoError(t, err)
	want := lightning.SendpayRoute{
		AmountMsat: lightning.Msat(1000),
		ID:         pk,
		Delay:      9,
		Channel:    lightning.ShortChannelID{Block: 103, Tx: 1, Output: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SendpayRoute() mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordMissingFieldNamed(t *testing.T) {
	_, err := FirstHop(map[string]any{"id": pubkey, "delay": float64(9)})
	require.Error(t, err)
	require.Contains(t, err.Error(), `missing field "amount_msat"`)

	_, err = FirstHop(map[string]any{"id": pubkey, "amount_msat": "1sat", "delay": float64(1 << 20)})
	require.Error(t, err)
	require.Contains(t, err.Error(), `field "delay"`)

	_, err = FirstHop([]any{})
	require.Error(t, err)
}

func TestNestedRecordsFromJSONText(t *testing.T) {
	text := `[[{"pubkey": "` + pubkey + `", "short_channel_id": "1x2x3",
		"fee_base_msat": "1000", "fee_proportional_millionths": 10, "cltv_expiry_delta": 40}]]`
	hints, err := RouteHintList(text)
	require.NoError(t, err)
	require.Len(t, hints, 1)
	require.Len(t, hints[0], 1)
	require.Equal(t, uint32(10), hints[0][0].FeeProportional)
	require.Equal(t, uint16(40), hints[0][0].CLTVExpiryDelta)

	tlvs, err := TlvStream(`[{"typ": 5482373484, "value": "dead"}]`)
	require.NoError(t, err)
	require.Equal(t, lightning.TlvStream{{Type: 5482373484, Value: []byte{0xde, 0xad}}}, tlvs)

	_, err = TlvStream(`[{"typ": 1, "value": "xyz"}]`)
	require.Error(t, err)
}

func TestErrorUnwraps(t *testing.T) {
	_, err := Amount("12usd")
	var decErr *Error
	require.True(t, errors.As(err, &decErr))
	require.NotNil(t, errors.Unwrap(err))
}

func TestEnumOfPublishesChoices(t *testing.T) {
	typ := EnumOf("peer log level", lightning.LogIO, lightning.LogDebug)
	require.Equal(t, []string{"io", "debug"}, typ.Choices)
	require.Equal(t, KindString, typ.Kind)
}
