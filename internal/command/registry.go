package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Request is a typed node request. Method names the JSON-RPC method; the
// value itself marshals to the params object.
type Request interface {
	Method() string
}

// Spec declares one command.
//
// Exactly one of Build and Reply is set. Build reads parameters through the
// Binder and returns the request to send; Reply answers locally without
// contacting the node. Render turns the node result into reply text and
// defaults to FormatJSON.
type Spec struct {
	Name        string
	Description string
	Build       func(b *Binder) Request
	Render      func(result json.RawMessage) (string, error)
	Reply       func(ctx context.Context) string
}

// Descriptor is a registered command with its collected parameters.
type Descriptor struct {
	Spec
	Params []ParameterSpec
}

// Registry holds descriptors by name. It is immutable after construction
// and safe for concurrent use.
type Registry struct {
	byName map[string]*Descriptor
	order  []*Descriptor
}

// NewRegistry validates specs and collects their parameter schemas.
func NewRegistry(specs ...Spec) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Descriptor, len(specs))}
	for _, spec := range specs {
		d, err := describe(spec)
		if err != nil {
			return nil, err
		}
		if _, exists := r.byName[d.Name]; exists {
			return nil, fmt.Errorf("command %q registered twice", d.Name)
		}
		r.byName[d.Name] = d
		r.order = append(r.order, d)
	}
	return r, nil
}

func describe(spec Spec) (d *Descriptor, err error) {
	if spec.Name == "" {
		return nil, errors.New("command name is empty")
	}
	if (spec.Build == nil) == (spec.Reply == nil) {
		return nil, fmt.Errorf("command %q: exactly one of Build and Reply must be set", spec.Name)
	}
	d = &Descriptor{Spec: spec}
	if spec.Build == nil {
		return d, nil
	}

	defer func() {
		if p := recover(); p != nil {
			d, err = nil, fmt.Errorf("command %q: builder panicked: %v", spec.Name, p)
		}
	}()
	b := newCollector()
	if req := spec.Build(b); req == nil {
		return nil, fmt.Errorf("command %q: builder returned no request", spec.Name)
	}

	seen := make(map[string]bool, len(b.params))
	for _, p := range b.params {
		switch {
		case p.Name == "":
			return nil, fmt.Errorf("command %q: parameter with empty name", spec.Name)
		case seen[p.Name]:
			return nil, fmt.Errorf("command %q: parameter %q declared twice", spec.Name, p.Name)
		}
		seen[p.Name] = true
	}
	d.Params = b.params
	return d, nil
}

// Lookup returns the descriptor for name. Names match exactly.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Get is Lookup returning an UnsupportedCommandError for unknown names.
func (r *Registry) Get(name string) (*Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, &UnsupportedCommandError{Name: name}
	}
	return d, nil
}

// Descriptors returns every descriptor in registration order.
func (r *Registry) Descriptors() []*Descriptor {
	out := make([]*Descriptor, len(r.order))
	copy(out, r.order)
	return out
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of registered commands.
func (r *Registry) Len() int { return len(r.order) }
