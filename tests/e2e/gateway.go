//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

// FakeGateway answers GET /transaction/verify/{reference} from canned
// outcomes. Unknown references get a 404.
type FakeGateway struct {
	srv *httptest.Server

	mu        sync.Mutex
	responses map[string]fakeResponse
	calls     map[string]int
}

type fakeResponse struct {
	status int
	body   []byte
}

type PaidLine struct {
	SKUID    uuid.UUID
	Quantity int
}

func NewFakeGateway(t *testing.T) *FakeGateway {
	t.Helper()
	g := &FakeGateway{
		responses: map[string]fakeResponse{},
		calls:     map[string]int{},
	}
	g.srv = httptest.NewServer(http.HandlerFunc(g.serve))
	t.Cleanup(g.srv.Close)
	return g
}

func (g *FakeGateway) URL() string {
	return g.srv.URL
}

func (g *FakeGateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.responses = map[string]fakeResponse{}
	g.calls = map[string]int{}
}

func (g *FakeGateway) Calls(reference string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[reference]
}

// Paid marks the reference as settled by email for amountMinor (kobo).
func (g *FakeGateway) Paid(reference, email string, amountMinor int64, lines ...PaidLine) {
	items := make([]map[string]any, len(lines))
	for i, l := range lines {
		items[i] = map[string]any{"sku_id": l.SKUID.String(), "quantity": l.Quantity}
	}
	g.set(reference, http.StatusOK, map[string]any{
		"status":  true,
		"message": "Verification successful",
		"data": map[string]any{
			"status":    "success",
			"reference": reference,
			"amount":    amountMinor,
			"currency":  "NGN",
			"paid_at":   time.Now().UTC().Format(time.RFC3339),
			"customer":  map[string]any{"email": email},
			"metadata":  map[string]any{"items": items},
		},
	})
}

func (g *FakeGateway) Failed(reference string) {
	g.set(reference, http.StatusOK, map[string]any{
		"status": true,
		"data":   map[string]any{"status": "failed", "reference": reference},
	})
}

func (g *FakeGateway) Pending(reference string) {
	g.set(reference, http.StatusOK, map[string]any{
		"status": true,
		"data":   map[string]any{"status": "ongoing", "reference": reference},
	})
}

func (g *FakeGateway) Unavailable(reference string) {
	g.set(reference, http.StatusBadGateway, map[string]any{"status": false, "message": "upstream error"})
}

func (g *FakeGateway) set(reference string, status int, body any) {
	raw, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.responses[reference] = fakeResponse{status: status, body: raw}
}

func (g *FakeGateway) serve(w http.ResponseWriter, r *http.Request) {
	reference := strings.TrimPrefix(r.URL.Path, "/transaction/verify/")

	g.mu.Lock()
	g.calls[reference]++
	resp, ok := g.responses[reference]
	g.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
		return
	}
	w.WriteHeader(resp.status)
	_, _ = w.Write(resp.body)
}
