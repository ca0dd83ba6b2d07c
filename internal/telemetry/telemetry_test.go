package telemetry

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/Kodylow/botimint/internal/command"
)

func TestObserveDispatch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)

	m.ObserveDispatch(command.DispatchMetric{Command: "cln_pay", Outcome: command.OutcomeOK, Duration: time.Millisecond})
	m.ObserveDispatch(command.DispatchMetric{Command: "cln_pay", Outcome: command.OutcomeOK, Duration: time.Millisecond})
	m.ObserveDispatch(command.DispatchMetric{Command: "cln_pay", Outcome: command.OutcomeMalformedValue})

	require.Equal(t, 2.0, testutil.ToFloat64(m.dispatchTotal.WithLabelValues("cln_pay", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.dispatchTotal.WithLabelValues("cln_pay", "malformed_value")))
	require.Equal(t, 1, testutil.CollectAndCount(m.dispatchDuration))
}

func TestObserveCallAndPublished(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)

	m.ObserveCall(command.CallMetric{Method: "getinfo", Status: command.CallOK})
	m.ObserveCall(command.CallMetric{Method: "pay", Status: command.CallRPCError})
	m.SetPublished(56)

	require.Equal(t, 2, testutil.CollectAndCount(m.callDuration))
	require.Equal(t, 56.0, testutil.ToFloat64(m.publishedTotal))
}

func TestServeListener(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)
	m.SetPublished(3)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ServeListener(ctx, ln, reg) }()

	base := "http://" + ln.Addr().String()
	resp, err := http.Get(base + "/healthz")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(base + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), "botimint_published_commands 3"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
