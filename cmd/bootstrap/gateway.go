package bootstrap

import (
	"storefront/internal/infra/gateway"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/jobs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewGatewayTracer,
		fx.Annotate(
			NewGatewayClient,
			fx.As(new(jobs.Verifier)),
		),
	),
)

// NewGatewayTracer uses the global provider, a no-op until an exporter
// registers one.
func NewGatewayTracer() trace.Tracer {
	return otel.Tracer("storefront/gateway")
}

func NewGatewayClient(cfg config.Config, tracer trace.Tracer, observer gateway.Observer) *gateway.Client {
	return gateway.NewClient(cfg.Gateway, tracer, observer)
}
