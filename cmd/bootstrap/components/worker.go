package components

import (
	"context"

	"organic-storefront/internal/pkg/config"
	"organic-storefront/internal/usecase/commands"
	"organic-storefront/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(sweeperCommands commands.SweeperCommands, cfg config.Config) *worker.Sweeper {
			return worker.NewSweeper(sweeperCommands, cfg.Reservation.SweepInterval)
		},
	),
	fx.Invoke(startSweeper),
)

func startSweeper(lc fx.Lifecycle, sweeper *worker.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.Stop(ctx)
		},
	})
}
