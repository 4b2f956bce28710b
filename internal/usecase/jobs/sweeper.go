package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/payment"
	"storefront/internal/domain/reservation"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Verifier interface {
	Verify(ctx context.Context, ref reservation.Reference) payment.Verification
}

type SweepMetrics interface {
	ObserveResolution(outcome payment.Outcome)
	ObserveSweep(elapsed time.Duration, sessionsCleaned, failures, stuck int)
}

const defaultStuckAfter = 4

// SweepReport summarises one run of both passes.
type SweepReport struct {
	StartedAt       time.Time
	Elapsed         time.Duration
	SessionsCleaned int
	Scanned         int
	References      int
	Confirmed       int
	Released        int
	Deferred        int
	Failed          int
	OrdersCreated   int
	UnitsReleased   int
	Stuck           int // references unresolved for StuckAfter runs or more
}

type Sweeper struct {
	uow         shared.UnitOfWork
	verifier    Verifier
	finalizer   *OrderFinalizer
	metrics     SweepMetrics
	clock       clock.Clock
	lookahead   time.Duration
	batchSize   int
	concurrency int
	stuckAfter  int

	mu         sync.Mutex
	unresolved map[reservation.Reference]int
}

func NewSweeper(
	uow shared.UnitOfWork,
	verifier Verifier,
	finalizer *OrderFinalizer,
	metrics SweepMetrics,
	clk clock.Clock,
	cfg config.SweeperConfig,
) *Sweeper {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	stuckAfter := cfg.StuckAfter
	if stuckAfter <= 0 {
		stuckAfter = defaultStuckAfter
	}
	return &Sweeper{
		uow:         uow,
		verifier:    verifier,
		finalizer:   finalizer,
		metrics:     metrics,
		clock:       clk,
		lookahead:   cfg.Lookahead,
		batchSize:   cfg.BatchSize,
		concurrency: concurrency,
		stuckAfter:  stuckAfter,
		unresolved:  make(map[reservation.Reference]int),
	}
}

// heldGroup is every ledger row issued under one payment reference.
type heldGroup struct {
	reference reservation.Reference
	rows      []*reservation.Reservation
}

// Run cleans expired sessions, then resolves reservations that expire
// within the lookahead. Failures are contained per session and per
// reference; only a failure to read the ledger aborts the run.
func (s *Sweeper) Run(ctx context.Context) (*SweepReport, error) {
	report := &SweepReport{StartedAt: s.clock.Now()}
	start := time.Now()

	s.cleanSessions(ctx, report)

	if err := s.resolveReservations(ctx, report); err != nil {
		return nil, err
	}

	report.Elapsed = time.Since(start)
	s.metrics.ObserveSweep(report.Elapsed, report.SessionsCleaned, report.Failed, report.Stuck)

	slog.InfoContext(ctx, "sweep finished",
		"sessions_cleaned", report.SessionsCleaned,
		"scanned", report.Scanned,
		"references", report.References,
		"confirmed", report.Confirmed,
		"released", report.Released,
		"deferred", report.Deferred,
		"failed", report.Failed,
		"stuck", report.Stuck,
		"elapsed_ms", report.Elapsed.Milliseconds())
	return report, nil
}

func (s *Sweeper) cleanSessions(ctx context.Context, report *SweepReport) {
	var ids []uuid.UUID
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Sessions().ListExpired(ctx, s.clock.Now(), s.batchSize)
		return err
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to list expired sessions", "error", err.Error())
		return
	}

	for _, id := range ids {
		if ctx.Err() != nil {
			return
		}
		err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Cart().DeleteBySession(ctx, id); err != nil {
				return err
			}
			return tx.Sessions().Delete(ctx, id)
		})
		switch {
		case err == nil:
			report.SessionsCleaned++
		case infra.IsKind(err, infra.KindNotFound):
			// removed by another replica
		default:
			// A checkout that slipped in before expiry keeps the session
			// alive until its reservations are resolved.
			slog.WarnContext(ctx, "failed to clean expired session",
				"session_id", id.String(),
				"error", err.Error())
		}
	}
}

func (s *Sweeper) resolveReservations(ctx context.Context, report *SweepReport) error {
	now := s.clock.Now()
	var due []*reservation.Reservation
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		due, err = tx.Reservations().ListExpiring(ctx, now.Add(s.lookahead), s.batchSize)
		return err
	})
	if err != nil {
		return errs.Wrap(err, "failed to load expiring reservations")
	}
	report.Scanned = len(due)

	groups := groupByReference(due)
	report.References = len(groups)
	if len(groups) == 0 {
		s.trackUnresolved(ctx, nil, report)
		return nil
	}

	verifications := s.verifyAll(ctx, groups)

	var pending []reservation.Reference
	for i, g := range groups {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !s.apply(ctx, g, verifications[i], now, report) {
			pending = append(pending, g.reference)
		}
	}
	s.trackUnresolved(ctx, pending, report)
	return nil
}

// trackUnresolved counts consecutive runs that left each reference in the
// ledger and reports the ones that keep coming back. A reference missing
// from this run starts over.
func (s *Sweeper) trackUnresolved(ctx context.Context, pending []reservation.Reference, report *SweepReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[reservation.Reference]int, len(pending))
	for _, ref := range pending {
		runs := s.unresolved[ref] + 1
		next[ref] = runs
		if runs < s.stuckAfter {
			continue
		}
		report.Stuck++
		if runs%s.stuckAfter == 0 {
			slog.ErrorContext(ctx, "payment reference unresolved after repeated sweeps",
				"reference", ref.String(),
				"runs", runs)
		}
	}
	s.unresolved = next
}

// verifyAll asks the gateway about every reference and joins all answers
// before anything is mutated. Verify never fails; errors come back as
// transient outcomes.
func (s *Sweeper) verifyAll(ctx context.Context, groups []heldGroup) []payment.Verification {
	results := make([]payment.Verification, len(groups))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, grp := range groups {
		g.Go(func() error {
			results[i] = s.verifier.Verify(gctx, grp.reference)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// apply resolves one reference and reports whether it left the ledger.
func (s *Sweeper) apply(ctx context.Context, g heldGroup, v payment.Verification, now time.Time, report *SweepReport) bool {
	s.metrics.ObserveResolution(v.Outcome)
	logger := slog.With("reference", g.reference.String(), "outcome", v.Outcome.String())

	switch {
	case v.Outcome == payment.OutcomeConfirmed:
		created, err := s.confirm(ctx, g, v)
		if err != nil {
			report.Failed++
			logger.ErrorContext(ctx, "failed to finalize confirmed payment", "error", err.Error())
			return false
		}
		report.Confirmed++
		if created {
			report.OrdersCreated++
		}
		return true

	case v.Outcome.ReleasesHold(g.expired(now)):
		units, err := s.release(ctx, g)
		if err != nil {
			report.Failed++
			logger.ErrorContext(ctx, "failed to release rejected hold", "error", err.Error())
			return false
		}
		report.Released++
		report.UnitsReleased += units
		return true

	default:
		report.Deferred++
		if v.Err != nil {
			logger.WarnContext(ctx, "payment verification deferred", "error", v.Err.Error())
		}
		return false
	}
}

// confirm finalizes the order and drops the held rows; the stock they took
// stays consumed.
func (s *Sweeper) confirm(ctx context.Context, g heldGroup, v payment.Verification) (bool, error) {
	var created bool
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if _, created, err = s.finalizer.Finalize(ctx, tx, v, g.rows); err != nil {
			return err
		}
		for _, r := range g.rows {
			if _, _, err := tx.Reservations().DeleteHeld(ctx, r.ID(), g.reference); err != nil {
				return err
			}
		}
		return nil
	})
	return created, err
}

// release deletes the rows still held under the reference and returns
// exactly what each deleted row had taken. Rows reissued by a concurrent
// checkout are left alone.
func (s *Sweeper) release(ctx context.Context, g heldGroup) (int, error) {
	var units int
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		units = 0
		for _, r := range g.rows {
			released, deleted, err := tx.Reservations().DeleteHeld(ctx, r.ID(), g.reference)
			if err != nil {
				return err
			}
			if !deleted {
				continue
			}
			if _, err := tx.Inventory().Increment(ctx, released.SKUID, released.Quantity); err != nil {
				return err
			}
			units += released.Quantity
		}
		return nil
	})
	return units, err
}

// expired reports whether every row under the reference is past its hold.
func (g heldGroup) expired(now time.Time) bool {
	for _, r := range g.rows {
		if r.ExpiresAt().After(now) {
			return false
		}
	}
	return true
}

func groupByReference(rows []*reservation.Reservation) []heldGroup {
	index := make(map[reservation.Reference]int)
	groups := make([]heldGroup, 0)
	for _, r := range rows {
		i, ok := index[r.Reference()]
		if !ok {
			i = len(groups)
			index[r.Reference()] = i
			groups = append(groups, heldGroup{reference: r.Reference()})
		}
		groups[i].rows = append(groups[i].rows, r)
	}
	return groups
}
