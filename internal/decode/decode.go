// Package decode converts dynamically typed option values into the semantic
// types node requests are made of.
//
// A dynamic value is whatever a JSON decoder produces: nil, bool, float64 or
// json.Number, string, []any or map[string]any. Go integer types are also
// accepted as numbers. Every decoder is a pure function of its input and
// either returns a complete value or an *Error.
package decode

import (
	"encoding/json"
	"fmt"
)

// Kind is the option kind a chat platform shows for a parameter.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindNumber
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Func decodes one dynamic value.
type Func[T any] func(v any) (T, error)

// Type pairs a decoder with the description published for its parameters.
type Type[T any] struct {
	// Name is the semantic type as shown in diagnostics, e.g. "amount".
	Name string
	Kind Kind
	// Choices lists the accepted values of an enumeration.
	Choices []string
	Decode  Func[T]
}

// Error reports a value that does not decode to the expected type.
type Error struct {
	Expected string
	Reason   string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("want %s: %v", e.Expected, e.Err)
	}
	return fmt.Sprintf("want %s: %s", e.Expected, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

func mismatch(expected string, v any) *Error {
	return &Error{Expected: expected, Reason: "got " + describe(v)}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, float32, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
