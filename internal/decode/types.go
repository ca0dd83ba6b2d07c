package decode

import "github.com/Kodylow/botimint/internal/lightning"

var (
	BoolType    = Type[bool]{Name: "boolean", Kind: KindBoolean, Decode: Bool}
	StringType  = Type[string]{Name: "string", Kind: KindString, Decode: String}
	Uint16Type  = Type[uint16]{Name: "u16", Kind: KindInteger, Decode: Uint16}
	Uint32Type  = Type[uint32]{Name: "u32", Kind: KindInteger, Decode: Uint32}
	Uint64Type  = Type[uint64]{Name: "u64", Kind: KindInteger, Decode: Uint64}
	Float64Type = Type[float64]{Name: "number", Kind: KindNumber, Decode: Float64}

	PublicKeyType        = Type[lightning.PublicKey]{Name: "public key", Kind: KindString, Decode: PublicKey}
	HashType             = Type[lightning.Hash]{Name: "sha256 hash", Kind: KindString, Decode: Hash}
	SecretType           = Type[lightning.Secret]{Name: "secret", Kind: KindString, Decode: Secret}
	ShortChannelIDType   = Type[lightning.ShortChannelID]{Name: "short channel id", Kind: KindString, Decode: ShortChannelID}
	AmountType           = Type[lightning.Amount]{Name: "amount", Kind: KindString, Decode: Amount}
	AmountOrAllType      = Type[lightning.AmountOrAll]{Name: "amount or \"all\"", Kind: KindString, Decode: AmountOrAll}
	AmountOrAnyType      = Type[lightning.AmountOrAny]{Name: "amount or \"any\"", Kind: KindString, Decode: AmountOrAny}
	FeerateType          = Type[lightning.Feerate]{Name: "feerate", Kind: KindString, Decode: Feerate}
	OutpointType         = Type[lightning.Outpoint]{Name: "outpoint", Kind: KindString, Decode: Outpoint}
	OutputDescType       = Type[lightning.OutputDesc]{Name: "output", Kind: KindString, Decode: OutputDesc}
	ConnectionStringType = Type[lightning.ConnectionString]{Name: "connection string", Kind: KindString, Decode: ConnectionString}

	FirstHopType      = Type[lightning.FirstHop]{Name: "first hop", Kind: KindString, Decode: FirstHop}
	RouteHintListType = Type[lightning.RouteHintList]{Name: "route hints", Kind: KindString, Decode: RouteHintList}
	TlvStreamType     = Type[lightning.TlvStream]{Name: "tlv stream", Kind: KindString, Decode: TlvStream}
)

// SequenceOf describes an array of t. Arrays are entered as JSON text.
func SequenceOf[T any](t Type[T]) Type[[]T] {
	return Type[[]T]{Name: "array of " + t.Name, Kind: KindString, Decode: Sequence(t.Decode)}
}

// RecordOf describes a record type entered as JSON text.
func RecordOf[T any](name string, dec Func[T]) Type[T] {
	return Type[T]{Name: name, Kind: KindString, Decode: dec}
}

// EnumOf describes a string enumeration.
func EnumOf[T ~string](name string, choices ...T) Type[T] {
	names := make([]string, len(choices))
	for i, c := range choices {
		names[i] = string(c)
	}
	return Type[T]{Name: name, Kind: KindString, Choices: names, Decode: Enum(name, choices...)}
}
