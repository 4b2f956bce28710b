package payment

import (
	"time"

	"storefront/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Outcome classifies a gateway verification.
type Outcome string

const (
	OutcomeConfirmed  Outcome = "confirmed"
	OutcomeNotFound   Outcome = "not_found"
	OutcomeBadRequest Outcome = "bad_request"
	OutcomeFailed     Outcome = "failed"
	OutcomeAbandoned  Outcome = "abandoned"
	OutcomeTransient  Outcome = "transient_error"
)

// IsRejected reports whether the held stock should go back to inventory.
func (o Outcome) IsRejected() bool {
	switch o {
	case OutcomeNotFound, OutcomeBadRequest, OutcomeFailed:
		return true
	default:
		return false
	}
}

// ReleasesHold reports whether a hold answered with this outcome goes back
// to inventory. An abandoned attempt can still be paid, so it only releases
// a hold whose expiry has passed.
func (o Outcome) ReleasesHold(expired bool) bool {
	if o == OutcomeAbandoned {
		return expired
	}
	return o.IsRejected()
}

func (o Outcome) String() string {
	return string(o)
}

// Line is one SKU and quantity reported by the gateway metadata.
type Line struct {
	SKUID    uuid.UUID
	Quantity int
}

// Verification is the gateway's answer for one payment reference. Err is set
// for transient outcomes only.
type Verification struct {
	Reference     reservation.Reference
	Outcome       Outcome
	CustomerEmail string
	Amount        decimal.Decimal
	Currency      string
	PaidAt        time.Time
	Lines         []Line
	Err           error
}

func Transient(ref reservation.Reference, err error) Verification {
	return Verification{Reference: ref, Outcome: OutcomeTransient, Err: err}
}

func Rejected(ref reservation.Reference, outcome Outcome) Verification {
	return Verification{Reference: ref, Outcome: outcome}
}
