package command

import (
	"fmt"

	"github.com/Kodylow/botimint/internal/decode"
)

// ParameterSpec describes one declared parameter of a command.
type ParameterSpec struct {
	Name        string
	Type        string
	Kind        decode.Kind
	Required    bool
	Description string
	// Default is the display form of the value used when the option is
	// absent; empty when there is none.
	Default string
	Choices []string
}

// Binder resolves declared parameters against one invocation's options.
//
// The same Build function runs in two modes. At registration the binder
// only records each parameter it is asked about; at dispatch it decodes
// values. The first failure is kept and every later read returns a zero
// value, so a builder never needs to check errors itself.
type Binder struct {
	options OptionMap
	collect bool
	params  []ParameterSpec
	err     error
}

func newBinder(options OptionMap) *Binder {
	return &Binder{options: options}
}

func newCollector() *Binder {
	return &Binder{collect: true}
}

// Err returns the first resolution failure.
func (b *Binder) Err() error { return b.err }

func bind[T any](b *Binder, spec ParameterSpec, t decode.Type[T]) (T, bool) {
	var zero T
	if b.collect {
		spec.Type, spec.Kind, spec.Choices = t.Name, t.Kind, t.Choices
		b.params = append(b.params, spec)
		return zero, false
	}
	if b.err != nil {
		return zero, false
	}
	v, ok := b.options.Lookup(spec.Name)
	if !ok {
		if spec.Required {
			b.err = &MissingParameterError{Name: spec.Name}
		}
		return zero, false
	}
	out, err := t.Decode(v)
	if err != nil {
		b.err = &MalformedValueError{Name: spec.Name, Expected: t.Name, Err: err}
		return zero, false
	}
	return out, true
}

// Required resolves a parameter that must be present.
func Required[T any](b *Binder, name string, t decode.Type[T], description string) T {
	v, _ := bind(b, ParameterSpec{Name: name, Required: true, Description: description}, t)
	return v
}

// Optional resolves a parameter that may be absent, returning nil if so.
func Optional[T any](b *Binder, name string, t decode.Type[T], description string) *T {
	v, ok := bind(b, ParameterSpec{Name: name, Description: description}, t)
	if !ok {
		return nil
	}
	return &v
}

// OptionalSlice resolves an optional array parameter.
func OptionalSlice[T any](b *Binder, name string, elem decode.Type[T], description string) []T {
	v, _ := bind(b, ParameterSpec{Name: name, Description: description}, decode.SequenceOf(elem))
	return v
}

// Default resolves a parameter that falls back to def when absent.
func Default[T any](b *Binder, name string, t decode.Type[T], def T, description string) T {
	v, ok := bind(b, ParameterSpec{Name: name, Description: description, Default: fmt.Sprint(def)}, t)
	if !ok {
		return def
	}
	return v
}

// DefaultFunc is Default with a value computed per invocation. shown is the
// display form of the default.
func DefaultFunc[T any](b *Binder, name string, t decode.Type[T], def func() T, shown, description string) T {
	v, ok := bind(b, ParameterSpec{Name: name, Description: description, Default: shown}, t)
	if ok || b.collect || b.err != nil {
		return v
	}
	return def()
}
