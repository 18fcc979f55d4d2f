package bootstrap

import (
	"context"

	"organic-storefront/internal/infra/events"
	"organic-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher wires Kafka when brokers are configured and a no-op
// publisher otherwise, so single-node deployments need no broker.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) events.Publisher {
	if len(cfg.Kafka.Brokers) == 0 {
		return events.NewNopPublisher()
	}

	publisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
