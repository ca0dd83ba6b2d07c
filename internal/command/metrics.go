package command

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Kodylow/botimint/internal/lightning"
)

// Outcome classifies how a dispatch ended.
type Outcome string

const (
	OutcomeOK               Outcome = "ok"
	OutcomeUnsupported      Outcome = "unsupported"
	OutcomeMissingParameter Outcome = "missing_parameter"
	OutcomeMalformedValue   Outcome = "malformed_value"
	OutcomeRemoteError      Outcome = "remote_error"
	OutcomeRenderError      Outcome = "render_error"
	OutcomeInternalError    Outcome = "internal_error"
)

// CallStatus classifies one node call.
type CallStatus string

const (
	CallOK             CallStatus = "ok"
	CallRPCError       CallStatus = "rpc_error"
	CallTransportError CallStatus = "transport_error"
)

type DispatchMetric struct {
	Command  string
	Outcome  Outcome
	Duration time.Duration
}

type CallMetric struct {
	Method   string
	Status   CallStatus
	Duration time.Duration
}

// Metrics receives dispatch and call observations.
type Metrics interface {
	ObserveDispatch(DispatchMetric)
	ObserveCall(CallMetric)
}

func classifyOutcome(err error) Outcome {
	var (
		missing     *MissingParameterError
		malformed   *MalformedValueError
		unsupported *UnsupportedCommandError
		remote      *RemoteCallError
		render      *RenderError
	)
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &missing):
		return OutcomeMissingParameter
	case errors.As(err, &malformed):
		return OutcomeMalformedValue
	case errors.As(err, &unsupported):
		return OutcomeUnsupported
	case errors.As(err, &remote):
		return OutcomeRemoteError
	case errors.As(err, &render):
		return OutcomeRenderError
	default:
		return OutcomeInternalError
	}
}

// MetricInvoker wraps an Invoker and observes every call.
type MetricInvoker struct {
	inner   Invoker
	metrics Metrics
}

func NewMetricInvoker(inner Invoker, metrics Metrics) *MetricInvoker {
	return &MetricInvoker{inner: inner, metrics: metrics}
}

func (i *MetricInvoker) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	start := time.Now()
	resp, err := i.inner.Call(ctx, method, params)
	if i.metrics != nil {
		i.metrics.ObserveCall(CallMetric{
			Method:   method,
			Status:   classifyCall(err),
			Duration: time.Since(start),
		})
	}
	return resp, err
}

func classifyCall(err error) CallStatus {
	var rpcErr *lightning.RPCError
	switch {
	case err == nil:
		return CallOK
	case errors.As(err, &rpcErr):
		return CallRPCError
	default:
		return CallTransportError
	}
}
