// Package command binds declarative command specs to typed node requests.
//
// A Spec names a command and, through a Build function, the parameters it
// reads and the request it produces. The Registry collects every spec's
// parameter schema once at startup. The Dispatcher resolves a command name
// and raw options into a request, sends it through an Invoker, and always
// returns reply text.
package command

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Kodylow/botimint/internal/logging"
)

// Invoker sends one request to the node and returns the raw result.
type Invoker interface {
	Call(ctx context.Context, method string, params any) (json.RawMessage, error)
}

// Dispatcher resolves invocations against a Registry.
type Dispatcher struct {
	registry *Registry
	invoker  Invoker
	metrics  Metrics
}

type DispatcherOption func(*Dispatcher)

// WithMetrics records one DispatchMetric per Dispatch.
func WithMetrics(m Metrics) DispatcherOption {
	return func(d *Dispatcher) { d.metrics = m }
}

func NewDispatcher(registry *Registry, invoker Invoker, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{registry: registry, invoker: invoker}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) Registry() *Registry { return d.registry }

// Dispatch runs one command and returns the reply text. It never fails:
// unknown names produce UnsupportedReply and every other failure is
// rendered with FormatError. The invoker is not called unless every
// parameter resolved.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, options []RawOption) string {
	start := time.Now()
	text, err := d.run(ctx, name, options)
	outcome := classifyOutcome(err)
	if d.metrics != nil {
		d.metrics.ObserveDispatch(DispatchMetric{Command: metricName(d.registry, name), Outcome: outcome, Duration: time.Since(start)})
	}

	switch outcome {
	case OutcomeOK:
		logging.L().Debug("command handled", "command", name, "elapsed", time.Since(start))
		return text
	case OutcomeUnsupported:
		logging.L().Warn("unsupported command", "command", name)
		return UnsupportedReply
	default:
		logging.L().Warn("command failed", "command", name, "outcome", string(outcome), "err", err)
		return FormatError(err)
	}
}

// metricName maps unknown names to one label.
func metricName(r *Registry, name string) string {
	if _, ok := r.Lookup(name); ok {
		return name
	}
	return "unknown"
}

func (d *Dispatcher) run(ctx context.Context, name string, options []RawOption) (text string, err error) {
	desc, err := d.registry.Get(name)
	if err != nil {
		return "", err
	}
	if desc.Reply != nil {
		return desc.Reply(ctx), nil
	}

	opts, dups := BuildOptionMap(options)
	if len(dups) > 0 {
		logging.L().Warn("duplicate options, last value wins", "command", name, "options", dups)
	}

	req, err := build(desc, opts)
	if err != nil {
		return "", err
	}

	result, err := d.invoker.Call(ctx, req.Method(), req)
	if err != nil {
		return "", &RemoteCallError{Method: req.Method(), Err: err}
	}

	render := desc.Render
	if render == nil {
		render = FormatJSON
	}
	text, err = render(result)
	if err != nil {
		return "", &RenderError{Err: err}
	}
	return text, nil
}

func build(desc *Descriptor, opts OptionMap) (req Request, err error) {
	defer func() {
		if p := recover(); p != nil {
			req, err = nil, fmt.Errorf("build %s request: %v", desc.Name, p)
		}
	}()
	b := newBinder(opts)
	req = desc.Build(b)
	if err := b.Err(); err != nil {
		return nil, err
	}
	return req, nil
}
