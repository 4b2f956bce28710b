package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/internal/domain/payment"
	"storefront/internal/domain/reservation"
	"storefront/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const maxBodyBytes = 1 << 20

var (
	ErrUnexpectedStatus     = errors.New("gateway: unexpected response status")
	ErrMalformedResponse    = errors.New("gateway: malformed response body")
	ErrReferenceMismatch    = errors.New("gateway: response is for another reference")
	ErrTransactionUnsettled = errors.New("gateway: transaction not settled yet")
)

// Observer receives one call per verification. Optional.
type Observer interface {
	ObserveVerification(outcome payment.Outcome, elapsed time.Duration)
}

// Client verifies payment references against the gateway's
// GET /transaction/verify/{reference} endpoint.
type Client struct {
	baseURL    string
	secretKey  string
	timeout    time.Duration
	HTTPClient *http.Client
	Tracer     trace.Tracer
	observer   Observer
}

func NewClient(cfg config.GatewayConfig, tracer trace.Tracer, observer Observer) *Client {
	// No client-level Timeout: each call is bounded by its own context.
	httpClient := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:  cfg.SecretKey,
		timeout:    cfg.Timeout,
		HTTPClient: httpClient,
		Tracer:     tracer,
		observer:   observer,
	}
}

type verifyResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    *verifyData `json:"data"`
}

type verifyData struct {
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
	Amount    int64           `json:"amount"`
	Currency  string          `json:"currency"`
	PaidAt    *time.Time      `json:"paid_at"`
	Customer  verifyCustomer  `json:"customer"`
	Metadata  json.RawMessage `json:"metadata"`
}

type verifyCustomer struct {
	Email string `json:"email"`
}

type verifyMetadata struct {
	Items []struct {
		SKUID    string `json:"sku_id"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
}

// Verify never returns an error: every failure is folded into the outcome,
// and anything that is not a definitive answer is OutcomeTransient.
func (c *Client) Verify(ctx context.Context, ref reservation.Reference) payment.Verification {
	start := time.Now()
	v := c.verify(ctx, ref)
	if c.observer != nil {
		c.observer.ObserveVerification(v.Outcome, time.Since(start))
	}
	return v
}

func (c *Client) verify(ctx context.Context, ref reservation.Reference) payment.Verification {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	ctx, span := c.Tracer.Start(ctx, "gateway.verify", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	endpoint := c.baseURL + "/transaction/verify/" + url.PathEscape(ref.String())
	span.SetAttributes(
		attribute.String("http.url", endpoint),
		attribute.String("http.method", http.MethodGet),
		attribute.String("payment.reference", ref.String()),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return c.fail(span, ref, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return c.fail(span, ref, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		span.SetAttributes(attribute.String("payment.outcome", payment.OutcomeNotFound.String()))
		return payment.Rejected(ref, payment.OutcomeNotFound)
	case resp.StatusCode == http.StatusBadRequest:
		span.SetAttributes(attribute.String("payment.outcome", payment.OutcomeBadRequest.String()))
		return payment.Rejected(ref, payment.OutcomeBadRequest)
	case resp.StatusCode != http.StatusOK:
		return c.fail(span, ref, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return c.fail(span, ref, err)
	}

	var parsed verifyResponse
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Data == nil {
		return c.fail(span, ref, fmt.Errorf("%w: %v", ErrMalformedResponse, err))
	}

	v := classify(ref, parsed.Data)
	if v.Outcome == payment.OutcomeTransient {
		return c.fail(span, ref, v.Err)
	}
	span.SetAttributes(attribute.String("payment.outcome", v.Outcome.String()))
	return v
}

func (c *Client) fail(span trace.Span, ref reservation.Reference, err error) payment.Verification {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(attribute.String("payment.outcome", payment.OutcomeTransient.String()))
	return payment.Transient(ref, err)
}

func classify(ref reservation.Reference, data *verifyData) payment.Verification {
	if data.Reference != "" && data.Reference != ref.String() {
		return payment.Transient(ref, fmt.Errorf("%w: %s", ErrReferenceMismatch, data.Reference))
	}

	switch strings.ToLower(data.Status) {
	case "success":
		v := payment.Verification{
			Reference:     ref,
			Outcome:       payment.OutcomeConfirmed,
			CustomerEmail: data.Customer.Email,
			Amount:        decimal.New(data.Amount, -2),
			Currency:      data.Currency,
			Lines:         parseLines(data.Metadata),
		}
		if data.PaidAt != nil {
			v.PaidAt = data.PaidAt.UTC()
		}
		return v
	case "failed", "reversed":
		return payment.Rejected(ref, payment.OutcomeFailed)
	case "abandoned":
		// Started but unpaid; the shopper may still complete it.
		return payment.Verification{Reference: ref, Outcome: payment.OutcomeAbandoned}
	default:
		return payment.Transient(ref, fmt.Errorf("%w: %q", ErrTransactionUnsettled, data.Status))
	}
}

// parseLines tolerates missing or foreign metadata; unusable lines mean the
// finalizer falls back to the held reservations.
func parseLines(raw json.RawMessage) []payment.Line {
	if len(raw) == 0 {
		return nil
	}
	var meta verifyMetadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil
	}

	lines := make([]payment.Line, 0, len(meta.Items))
	for _, item := range meta.Items {
		id, err := uuid.Parse(item.SKUID)
		if err != nil || item.Quantity <= 0 {
			return nil
		}
		lines = append(lines, payment.Line{SKUID: id, Quantity: item.Quantity})
	}
	return lines
}
