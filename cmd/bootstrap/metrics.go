package bootstrap

import (
	"storefront/internal/infra/gateway"
	"storefront/internal/infra/metrics"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		fx.Annotate(
			func(r *prometheus.Registry) *prometheus.Registry { return r },
			fx.As(new(prometheus.Registerer)),
			fx.As(new(prometheus.Gatherer)),
		),
		fx.Annotate(
			metrics.NewRecorder,
			fx.As(new(commands.CheckoutMetrics)),
			fx.As(new(jobs.SweepMetrics)),
			fx.As(new(gateway.Observer)),
		),
	),
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
