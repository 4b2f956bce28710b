package reservation

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

var (
	ErrDuplicateDemand      = errors.New("reservation: sku appears more than once in the cart")
	ErrDuplicateReservation = errors.New("reservation: sku has more than one pending reservation")
)

type ActionKind int

const (
	// ActionReserve creates a new hold for a SKU with no reservation.
	ActionReserve ActionKind = iota + 1
	// ActionGrow takes Delta more units and reissues the hold.
	ActionGrow
	// ActionShrink returns Delta units and reissues the hold.
	ActionShrink
	// ActionRefresh reissues reference and expiry only.
	ActionRefresh
	// ActionRelease returns the whole hold and deletes it.
	ActionRelease
)

func (k ActionKind) String() string {
	switch k {
	case ActionReserve:
		return "reserve"
	case ActionGrow:
		return "grow"
	case ActionShrink:
		return "shrink"
	case ActionRefresh:
		return "refresh"
	case ActionRelease:
		return "release"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Demand is the desired quantity of one SKU.
type Demand struct {
	SKUID    uuid.UUID
	Quantity int
}

// Action is one step of a reconciliation. Existing is nil for ActionReserve.
// Delta is the number of units taken from (Reserve, Grow) or returned to
// (Shrink, Release) inventory.
type Action struct {
	Kind     ActionKind
	SKUID    uuid.UUID
	Desired  int
	Delta    int
	Existing *Reservation
}

// TakesStock reports whether the action decrements inventory.
func (a Action) TakesStock() bool {
	return a.Kind == ActionReserve || a.Kind == ActionGrow
}

// ReturnsStock reports whether the action increments inventory.
func (a Action) ReturnsStock() bool {
	return a.Kind == ActionShrink || a.Kind == ActionRelease
}

// Plan diffs the desired cart quantities against the session's pending
// reservations and returns the minimal set of actions, ordered by SKU id so
// concurrent reconciliations lock SKU rows in the same order.
func Plan(demands []Demand, existing []*Reservation) ([]Action, error) {
	held := make(map[uuid.UUID]*Reservation, len(existing))
	for _, r := range existing {
		if _, dup := held[r.SKUID()]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateReservation, r.SKUID())
		}
		held[r.SKUID()] = r
	}

	wanted := make(map[uuid.UUID]struct{}, len(demands))
	actions := make([]Action, 0, len(demands)+len(existing))

	for _, d := range demands {
		if d.Quantity <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidQuantity, d.SKUID)
		}
		if _, dup := wanted[d.SKUID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDemand, d.SKUID)
		}
		wanted[d.SKUID] = struct{}{}

		r, ok := held[d.SKUID]
		if !ok {
			actions = append(actions, Action{Kind: ActionReserve, SKUID: d.SKUID, Desired: d.Quantity, Delta: d.Quantity})
			continue
		}

		current := r.Quantity()
		switch {
		case d.Quantity > current:
			actions = append(actions, Action{Kind: ActionGrow, SKUID: d.SKUID, Desired: d.Quantity, Delta: d.Quantity - current, Existing: r})
		case d.Quantity < current:
			actions = append(actions, Action{Kind: ActionShrink, SKUID: d.SKUID, Desired: d.Quantity, Delta: current - d.Quantity, Existing: r})
		default:
			actions = append(actions, Action{Kind: ActionRefresh, SKUID: d.SKUID, Desired: d.Quantity, Existing: r})
		}
	}

	for _, r := range existing {
		if _, ok := wanted[r.SKUID()]; ok {
			continue
		}
		actions = append(actions, Action{Kind: ActionRelease, SKUID: r.SKUID(), Delta: r.Quantity(), Existing: r})
	}

	slices.SortFunc(actions, func(a, b Action) int {
		return bytes.Compare(a.SKUID[:], b.SKUID[:])
	})

	return actions, nil
}
