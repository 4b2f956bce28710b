package reservation

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrInvalidHoldWindow = errors.New("reservation: hold window must be positive")

const referencePrefix = "chk_"

// Reference is the opaque payment reference handed to the gateway.
type Reference string

func (r Reference) String() string {
	return string(r)
}

// NewReference returns a gateway-safe alphanumeric reference.
func NewReference() Reference {
	return Reference(referencePrefix + strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// Hold is the reference and expiry issued to every reservation touched by one
// reconciliation pass.
type Hold struct {
	Reference Reference
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type Services struct {
	Clock        clock.Clock
	NewReference func() Reference
}

func NewServices(clk clock.Clock) *Services {
	return &Services{
		Clock:        clk,
		NewReference: NewReference,
	}
}

func (s *Services) IssueHold(window time.Duration) (Hold, error) {
	if window <= 0 {
		return Hold{}, ErrInvalidHoldWindow
	}
	now := s.Clock.Now()
	return Hold{
		Reference: s.NewReference(),
		IssuedAt:  now,
		ExpiresAt: now.Add(window),
	}, nil
}
