//go:build unit

package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/payment"
	"storefront/internal/infra/gateway"
	"storefront/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []payment.Outcome
}

func (r *recordingObserver) ObserveVerification(outcome payment.Outcome, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

func newClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) (*gateway.Client, *recordingObserver) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	obs := &recordingObserver{}
	client := gateway.NewClient(config.GatewayConfig{
		BaseURL:   srv.URL + "/",
		SecretKey: "sk_test_secret",
		Timeout:   timeout,
	}, noop.NewTracerProvider().Tracer("test"), obs)
	return client, obs
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestClient_Verify_Outcomes(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		want    payment.Outcome
		wantErr bool
	}{
		{
			name:   "success is confirmed",
			status: http.StatusOK,
			body:   `{"status":true,"message":"Verification successful","data":{"status":"success","reference":"chk_1","amount":10750,"currency":"NGN","paid_at":"2026-03-01T12:05:00Z","customer":{"email":"buyer@example.com"},"metadata":""}}`,
			want:   payment.OutcomeConfirmed,
		},
		{
			name:   "failed charge is rejected",
			status: http.StatusOK,
			body:   `{"status":true,"data":{"status":"failed","reference":"chk_1"}}`,
			want:   payment.OutcomeFailed,
		},
		{
			name:   "abandoned charge is not final",
			status: http.StatusOK,
			body:   `{"status":true,"data":{"status":"abandoned","reference":"chk_1"}}`,
			want:   payment.OutcomeAbandoned,
		},
		{
			name:   "reversed charge is rejected",
			status: http.StatusOK,
			body:   `{"status":true,"data":{"status":"reversed","reference":"chk_1"}}`,
			want:   payment.OutcomeFailed,
		},
		{
			name:    "pending charge is deferred",
			status:  http.StatusOK,
			body:    `{"status":true,"data":{"status":"ongoing","reference":"chk_1"}}`,
			want:    payment.OutcomeTransient,
			wantErr: true,
		},
		{
			name:   "unknown reference",
			status: http.StatusNotFound,
			body:   `{"status":false,"message":"Transaction reference not found"}`,
			want:   payment.OutcomeNotFound,
		},
		{
			name:   "bad request",
			status: http.StatusBadRequest,
			body:   `{"status":false,"message":"Invalid reference"}`,
			want:   payment.OutcomeBadRequest,
		},
		{
			name:    "server error is transient",
			status:  http.StatusBadGateway,
			body:    `upstream down`,
			want:    payment.OutcomeTransient,
			wantErr: true,
		},
		{
			name:    "rate limit is transient",
			status:  http.StatusTooManyRequests,
			body:    `{}`,
			want:    payment.OutcomeTransient,
			wantErr: true,
		},
		{
			name:    "garbage body is transient",
			status:  http.StatusOK,
			body:    `<html>`,
			want:    payment.OutcomeTransient,
			wantErr: true,
		},
		{
			name:    "answer for another reference is transient",
			status:  http.StatusOK,
			body:    `{"status":true,"data":{"status":"success","reference":"chk_other"}}`,
			want:    payment.OutcomeTransient,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, obs := newClient(t, respond(tc.status, tc.body), time.Second)

			v := client.Verify(context.Background(), "chk_1")

			assert.Equal(t, tc.want, v.Outcome)
			assert.Equal(t, "chk_1", v.Reference.String())
			if tc.wantErr {
				assert.Error(t, v.Err)
			} else {
				assert.NoError(t, v.Err)
			}
			assert.Equal(t, []payment.Outcome{tc.want}, obs.outcomes)
		})
	}
}

func TestClient_Verify_ConfirmedPayload(t *testing.T) {
	sku := uuid.New()
	var gotAuth, gotPath string
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		respond(http.StatusOK, `{"status":true,"data":{"status":"success","reference":"chk_1","amount":10750,"currency":"NGN",
			"paid_at":"2026-03-01T13:05:00+01:00","customer":{"email":"buyer@example.com"},
			"metadata":{"items":[{"sku_id":"`+sku.String()+`","quantity":2}]}}}`)(w, r)
	}, time.Second)

	v := client.Verify(context.Background(), "chk_1")
	require.Equal(t, payment.OutcomeConfirmed, v.Outcome)

	assert.Equal(t, "Bearer sk_test_secret", gotAuth)
	assert.Equal(t, "/transaction/verify/chk_1", gotPath)
	assert.Equal(t, "buyer@example.com", v.CustomerEmail)
	assert.True(t, decimal.RequireFromString("107.50").Equal(v.Amount))
	assert.Equal(t, "NGN", v.Currency)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 5, 0, 0, time.UTC), v.PaidAt)
	assert.Equal(t, []payment.Line{{SKUID: sku, Quantity: 2}}, v.Lines)
}

func TestClient_Verify_UnusableMetadataIsIgnored(t *testing.T) {
	client, _ := newClient(t, respond(http.StatusOK,
		`{"status":true,"data":{"status":"success","reference":"chk_1","amount":100,"customer":{"email":"a@b.c"},"metadata":{"items":[{"sku_id":"nope","quantity":1}]}}}`,
	), time.Second)

	v := client.Verify(context.Background(), "chk_1")
	require.Equal(t, payment.OutcomeConfirmed, v.Outcome)
	assert.Nil(t, v.Lines)
}

func TestClient_Verify_TimeoutIsTransient(t *testing.T) {
	release := make(chan struct{})
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, 50*time.Millisecond)
	defer close(release)

	start := time.Now()
	v := client.Verify(context.Background(), "chk_slow")

	assert.Equal(t, payment.OutcomeTransient, v.Outcome)
	assert.ErrorIs(t, v.Err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}
