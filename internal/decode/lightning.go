package decode

import (
	"encoding/hex"

	"github.com/Kodylow/botimint/internal/lightning"
)

// textual adapts a string parser into a decoder that requires a string.
func textual[T any](name string, parse func(string) (T, error)) Func[T] {
	return func(v any) (T, error) {
		var zero T
		s, ok := v.(string)
		if !ok {
			return zero, mismatch(name, v)
		}
		out, err := parse(s)
		if err != nil {
			return zero, &Error{Expected: name, Err: err}
		}
		return out, nil
	}
}

func PublicKey(v any) (lightning.PublicKey, error) {
	return textual("public key", lightning.ParsePublicKey)(v)
}

func Hash(v any) (lightning.Hash, error) {
	return textual("sha256 hash", lightning.ParseHash)(v)
}

func Secret(v any) (lightning.Secret, error) {
	return textual("secret", lightning.ParseSecret)(v)
}

func ShortChannelID(v any) (lightning.ShortChannelID, error) {
	return textual("short channel id", lightning.ParseShortChannelID)(v)
}

// Amount decodes "<digits>[msat|sat|btc]"; no suffix means millisatoshi.
func Amount(v any) (lightning.Amount, error) {
	return textual("amount", lightning.ParseAmount)(v)
}

func AmountOrAll(v any) (lightning.AmountOrAll, error) {
	return textual("amount or \"all\"", lightning.ParseAmountOrAll)(v)
}

func AmountOrAny(v any) (lightning.AmountOrAny, error) {
	return textual("amount or \"any\"", lightning.ParseAmountOrAny)(v)
}

func Feerate(v any) (lightning.Feerate, error) {
	return textual("feerate", lightning.ParseFeerate)(v)
}

func Outpoint(v any) (lightning.Outpoint, error) {
	return textual("outpoint", lightning.ParseOutpoint)(v)
}

func OutputDesc(v any) (lightning.OutputDesc, error) {
	return textual("output", lightning.ParseOutputDesc)(v)
}

func ConnectionString(v any) (lightning.ConnectionString, error) {
	return textual("connection string", lightning.ParseConnectionString)(v)
}

// Hex decodes a hex string of any even length.
func Hex(v any) ([]byte, error) {
	return textual("hex", hex.DecodeString)(v)
}
