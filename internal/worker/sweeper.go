package worker

import (
	"context"
	"log/slog"
	"time"

	"organic-storefront/internal/usecase/commands"
)

// Sweeper runs the expiry sweep on a fixed interval so correctness never
// depends on buyers' client-side countdowns firing.
type Sweeper struct {
	commands commands.SweeperCommands
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewSweeper(sweeperCommands commands.SweeperCommands, interval time.Duration) *Sweeper {
	return &Sweeper{
		commands: sweeperCommands,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	go s.run()
}

func (s *Sweeper) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("expiry sweeper started", "interval", s.interval.String())
	for {
		select {
		case <-s.stop:
			slog.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := s.commands.ReleaseExpired(ctx, "scheduler"); err != nil {
		slog.Error("expiry sweep failed", "error", err.Error())
	}
}

func (s *Sweeper) Stop(ctx context.Context) error {
	close(s.stop)
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
