package decode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/tidwall/jsonc"
)

// structured returns v unchanged unless it is a string, in which case the
// string is parsed as JSON text. Comments and trailing commas are allowed.
// Chat platforms only carry scalars, so arrays and objects arrive this way.
func structured(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON([]byte(s))))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("parse JSON text: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("parse JSON text: trailing data after value")
	}
	return out, nil
}

// Sequence decodes an array element by element. The first failing element
// fails the whole sequence.
func Sequence[T any](elem Func[T]) Func[[]T] {
	return func(v any) ([]T, error) {
		parsed, err := structured(v)
		if err != nil {
			return nil, &Error{Expected: "array", Err: err}
		}
		arr, ok := parsed.([]any)
		if !ok {
			return nil, mismatch("array", parsed)
		}
		out := make([]T, 0, len(arr))
		for i, e := range arr {
			d, err := elem(e)
			if err != nil {
				return nil, &Error{Expected: "array", Err: fmt.Errorf("element %d: %w", i, err)}
			}
			out = append(out, d)
		}
		return out, nil
	}
}

// Enum accepts exactly one of choices.
func Enum[T ~string](name string, choices ...T) Func[T] {
	return func(v any) (T, error) {
		s, ok := v.(string)
		if !ok {
			return "", mismatch(name, v)
		}
		if !slices.Contains(choices, T(s)) {
			return "", &Error{Expected: name, Reason: fmt.Sprintf("%q is not one of %v", s, choices)}
		}
		return T(s), nil
	}
}

// Fields reads named fields of one JSON object. The first failure sticks and
// later reads return zero values.
type Fields struct {
	record string
	m      map[string]any
	err    error
}

// Field decodes the field called name with dec.
func Field[T any](f *Fields, name string, dec Func[T]) T {
	var zero T
	if f.err != nil {
		return zero
	}
	v, ok := f.m[name]
	if !ok || v == nil {
		f.err = &Error{Expected: f.record, Reason: fmt.Sprintf("missing field %q", name)}
		return zero
	}
	out, err := dec(v)
	if err != nil {
		f.err = &Error{Expected: f.record, Err: fmt.Errorf("field %q: %w", name, err)}
		return zero
	}
	return out
}

// Record decodes a JSON object into T using build to read its fields.
func Record[T any](name string, build func(f *Fields) T) Func[T] {
	return func(v any) (T, error) {
		var zero T
		parsed, err := structured(v)
		if err != nil {
			return zero, &Error{Expected: name, Err: err}
		}
		m, ok := parsed.(map[string]any)
		if !ok {
			return zero, mismatch(name, parsed)
		}
		f := &Fields{record: name, m: m}
		out := build(f)
		if f.err != nil {
			return zero, f.err
		}
		return out, nil
	}
}
