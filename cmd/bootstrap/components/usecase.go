package components

import (
	"context"
	"log/slog"

	"storefront/internal/domain/pricing"
	"storefront/internal/domain/reservation"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/jobs"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseJobsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewServices,
	fx.Annotate(
		NewRates,
		fx.As(new(pricing.RatesProvider)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewCartCommands,
		NewCheckoutCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewCartQueries,
		queries.NewReservationQueries,
	),
)

var usecaseJobsModule = fx.Module("usecase/jobs",
	fx.Provide(
		jobs.NewOrderFinalizer,
		NewSweeper,
		NewScheduler,
		fx.Annotate(
			func(s *jobs.Scheduler) *jobs.Scheduler { return s },
			fx.As(new(jobs.SweepTrigger)),
		),
	),
	fx.Invoke(startScheduler),
)

func NewRates(cfg config.Config) (*pricing.StaticRates, error) {
	taxRate, shippingFee, err := cfg.Checkout.ParseRates()
	if err != nil {
		return nil, err
	}
	return pricing.NewStaticRates(taxRate, shippingFee), nil
}

func NewCartCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.CartCommands {
	return commands.NewCartUseCase(uow, clk, cfg.Session.TTL)
}

func NewCheckoutCommands(
	uow shared.UnitOfWork,
	services *reservation.Services,
	rates pricing.RatesProvider,
	metrics commands.CheckoutMetrics,
	cfg config.Config,
) commands.CheckoutCommands {
	return commands.NewCheckoutUseCase(uow, services, rates, metrics, cfg.Checkout.HoldWindow, cfg.Checkout.Currency)
}

func NewCartQueries(
	sessions queries.SessionViewRepo,
	items queries.CartViewRepo,
	rates pricing.RatesProvider,
	clk clock.Clock,
	cfg config.Config,
) queries.CartQueries {
	return queries.NewCartQueries(sessions, items, rates, cfg.Checkout.Currency, clk)
}

func NewSweeper(
	uow shared.UnitOfWork,
	verifier jobs.Verifier,
	finalizer *jobs.OrderFinalizer,
	metrics jobs.SweepMetrics,
	clk clock.Clock,
	cfg config.Config,
) *jobs.Sweeper {
	return jobs.NewSweeper(uow, verifier, finalizer, metrics, clk, cfg.Sweeper)
}

func NewScheduler(sweeper *jobs.Sweeper, lock jobs.RunLock, cfg config.Config) *jobs.Scheduler {
	return jobs.NewScheduler(sweeper, lock, cfg.Sweeper.Interval)
}

// startScheduler runs the periodic sweep only when enabled; the admin
// trigger works either way.
func startScheduler(lc fx.Lifecycle, scheduler *jobs.Scheduler, cfg config.Config, logger *slog.Logger) {
	if !cfg.Sweeper.Enabled {
		logger.Info("periodic sweeper disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			logger.Info("periodic sweeper started", "interval", cfg.Sweeper.Interval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Stop(ctx)
		},
	})
}
