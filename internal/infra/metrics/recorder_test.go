//go:build unit

package metrics_test

import (
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/payment"
	"storefront/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.NewRecorder(reg)

	r.ObserveCheckout("ok")
	r.ObserveCheckout("ok")
	r.ObserveCheckout("out_of_stock")
	r.ObserveAction("reserve")
	r.ObserveResolution(payment.OutcomeConfirmed)
	r.ObserveResolution(payment.OutcomeNotFound)
	r.ObserveSweep(1500*time.Millisecond, 3, 1, 2)
	r.ObserveVerification(payment.OutcomeTransient, 20*time.Millisecond)

	tests := []struct {
		name   string
		series int
	}{
		{"storefront_checkout_reconciliations_total", 2},
		{"storefront_checkout_actions_total", 1},
		{"storefront_sweeper_resolutions_total", 2},
		{"storefront_sweeper_failures_total", 1},
		{"storefront_sweeper_sessions_cleaned_total", 1},
		{"storefront_sweeper_stuck_references", 1},
		{"storefront_sweeper_run_duration_seconds", 1},
		{"storefront_gateway_verify_duration_seconds", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := testutil.GatherAndCount(reg, tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.series, count)
		})
	}

	expected := `
# HELP storefront_checkout_reconciliations_total Checkout reconciliations by result.
# TYPE storefront_checkout_reconciliations_total counter
storefront_checkout_reconciliations_total{result="ok"} 2
storefront_checkout_reconciliations_total{result="out_of_stock"} 1
# HELP storefront_sweeper_sessions_cleaned_total Expired sessions removed with their cart items.
# TYPE storefront_sweeper_sessions_cleaned_total counter
storefront_sweeper_sessions_cleaned_total 3
# HELP storefront_sweeper_stuck_references References left unresolved for several consecutive sweeps in the last run.
# TYPE storefront_sweeper_stuck_references gauge
storefront_sweeper_stuck_references 2
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"storefront_checkout_reconciliations_total",
		"storefront_sweeper_sessions_cleaned_total",
		"storefront_sweeper_stuck_references",
	)
	assert.NoError(t, err)
}

func TestNewRecorder_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg)

	assert.Panics(t, func() { metrics.NewRecorder(reg) })
}
