package command

import (
	"encoding/json"
	"strconv"

	"github.com/Kodylow/botimint/internal/decode"
)

// RawOption is one named argument of an invocation, before decoding.
type RawOption struct {
	Name  string
	Value any
}

// OptionMap looks up raw option values by name.
type OptionMap map[string]any

// BuildOptionMap indexes options by name. When a name repeats, the last
// value wins; the repeated names are returned so callers can report them.
func BuildOptionMap(options []RawOption) (OptionMap, []string) {
	m := make(OptionMap, len(options))
	var dups []string
	for _, opt := range options {
		if _, seen := m[opt.Name]; seen {
			dups = append(dups, opt.Name)
		}
		m[opt.Name] = opt.Value
	}
	return m, dups
}

// Lookup returns the value for name. A null value counts as absent.
func (m OptionMap) Lookup(name string) (any, bool) {
	v, ok := m[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// OptionsFromMap turns a decoded JSON object into an option list.
func OptionsFromMap(m map[string]any) []RawOption {
	out := make([]RawOption, 0, len(m))
	for name, v := range m {
		out = append(out, RawOption{Name: name, Value: v})
	}
	return out
}

// CoerceText converts string values typed on a command line to the kind
// each declared parameter is published with, the way a chat platform would
// have sent them. Values that do not parse, and options that are not
// declared, are left as they are for the decoders to judge.
func CoerceText(params []ParameterSpec, options []RawOption) []RawOption {
	kinds := make(map[string]decode.Kind, len(params))
	for _, p := range params {
		kinds[p.Name] = p.Kind
	}
	out := make([]RawOption, len(options))
	for i, opt := range options {
		out[i] = opt
		s, ok := opt.Value.(string)
		if !ok {
			continue
		}
		kind, declared := kinds[opt.Name]
		if !declared {
			continue
		}
		switch kind {
		case decode.KindInteger, decode.KindNumber:
			if decode.IsNumberText(s) {
				out[i].Value = json.Number(s)
			}
		case decode.KindBoolean:
			if b, err := strconv.ParseBool(s); err == nil {
				out[i].Value = b
			}
		}
	}
	return out
}
