package lightning

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{in: "1000", want: 1000},
		{in: "1000msat", want: 1000},
		{in: "1000sat", want: 1_000_000},
		{in: "1btc", want: 100_000_000_000},
		{in: "0sat", want: 0},
		{in: "", wantErr: true},
		{in: "sat", wantErr: true},
		{in: "-1sat", wantErr: true},
		{in: "1.5btc", wantErr: true},
		{in: "12 sat", wantErr: true},
		{in: "10usd", wantErr: true},
		{in: "18446744073709551615msat", want: 18446744073709551615},
		{in: "18446744073709551616", wantErr: true},
		{in: "18446744073709552sat", wantErr: true},
		{in: "184467440738btc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Msat)
		})
	}
}

func TestParseAmountUnitsAgree(t *testing.T) {
	sat, err := ParseAmount("1000sat")
	require.NoError(t, err)
	msat, err := ParseAmount("1000000msat")
	require.NoError(t, err)
	require.Equal(t, sat, msat)
}

func TestAmountJSON(t *testing.T) {
	b, err := json.Marshal(Sat(5))
	require.NoError(t, err)
	require.JSONEq(t, `"5000msat"`, string(b))

	all, err := ParseAmountOrAll("all")
	require.NoError(t, err)
	b, err = json.Marshal(all)
	require.NoError(t, err)
	require.JSONEq(t, `"all"`, string(b))

	anyAmt, err := ParseAmountOrAny("21sat")
	require.NoError(t, err)
	require.False(t, anyAmt.Any)
	require.Equal(t, "21000msat", anyAmt.String())

	_, err = ParseAmountOrAll("any")
	require.Error(t, err)
}

func TestParseFeerate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "urgent", want: "urgent"},
		{in: "minimum", want: "minimum"},
		{in: "1000", want: "1000perkb"},
		{in: "253perkw", want: "253perkw"},
		{in: "7500perkb", want: "7500perkb"},
		{in: "fast", wantErr: true},
		{in: "perkw", wantErr: true},
		{in: "99999999999perkb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFeerate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
		})
	}
}
