package decode

import (
	"encoding/json"
	"math"
	"strconv"
)

func Bool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, mismatch("boolean", v)
	}
	return b, nil
}

func String(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", mismatch("string", v)
	}
	return s, nil
}

func Uint16(v any) (uint16, error) {
	n, err := unsigned(v, 16, "u16")
	return uint16(n), err
}

func Uint32(v any) (uint32, error) {
	n, err := unsigned(v, 32, "u32")
	return uint32(n), err
}

func Uint64(v any) (uint64, error) {
	return unsigned(v, 64, "u64")
}

// Float64 accepts any finite number.
func Float64(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case json.Number:
		var err error
		if f, err = n.Float64(); err != nil {
			return 0, &Error{Expected: "number", Err: err}
		}
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return 0, mismatch("number", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &Error{Expected: "number", Reason: "not finite"}
	}
	return f, nil
}

// unsigned decodes a non-negative integer that fits in bits. Out of range
// and fractional values are rejected, never truncated.
func unsigned(v any, bits int, name string) (uint64, error) {
	outOfRange := &Error{Expected: name, Reason: "out of range"}
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, &Error{Expected: name, Reason: "not finite"}
		}
		if n != math.Trunc(n) {
			return 0, &Error{Expected: name, Reason: "not an integer"}
		}
		if n < 0 || n >= math.Ldexp(1, bits) {
			return 0, outOfRange
		}
		return uint64(n), nil
	case json.Number:
		if !IsNumberText(string(n)) {
			return 0, &Error{Expected: name, Reason: "not a number"}
		}
		u, err := strconv.ParseUint(string(n), 10, bits)
		if err != nil {
			if f, ferr := strconv.ParseFloat(string(n), 64); ferr == nil {
				return unsigned(f, bits, name)
			}
			return 0, &Error{Expected: name, Err: err}
		}
		return u, nil
	case int:
		return signed(int64(n), bits, outOfRange)
	case int8:
		return signed(int64(n), bits, outOfRange)
	case int16:
		return signed(int64(n), bits, outOfRange)
	case int32:
		return signed(int64(n), bits, outOfRange)
	case int64:
		return signed(n, bits, outOfRange)
	case uint:
		return fits(uint64(n), bits, outOfRange)
	case uint8:
		return fits(uint64(n), bits, outOfRange)
	case uint16:
		return fits(uint64(n), bits, outOfRange)
	case uint32:
		return fits(uint64(n), bits, outOfRange)
	case uint64:
		return fits(n, bits, outOfRange)
	}
	return 0, mismatch(name, v)
}

// IsNumberText reports whether s is a number in JSON syntax. It rejects the
// NaN and Inf spellings strconv accepts.
func IsNumberText(s string) bool {
	if s == "" {
		return false
	}
	first, last := s[0], s[len(s)-1]
	if first != '-' && (first < '0' || first > '9') {
		return false
	}
	if last < '0' || last > '9' {
		return false
	}
	return json.Valid([]byte(s))
}

func signed(n int64, bits int, outOfRange error) (uint64, error) {
	if n < 0 {
		return 0, outOfRange
	}
	return fits(uint64(n), bits, outOfRange)
}

func fits(n uint64, bits int, outOfRange error) (uint64, error) {
	if bits < 64 && n >= 1<<uint(bits) {
		return 0, outOfRange
	}
	return n, nil
}
