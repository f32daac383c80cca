package jobs

import (
	"context"
	"log/slog"
	"time"

	"dinner/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const staleOrderCancellationSchedule = "0 * * * * *"

type staleOrderCanceller interface {
	Handle(ctx context.Context, cmd commands.CancelStalePendingOrdersCommand) (int, error)
}

// StaleOrderCancellationJob cancels pending orders that stayed unconfirmed longer than maxAge.
type StaleOrderCancellationJob struct {
	handler staleOrderCanceller
	maxAge  time.Duration
	now     func() time.Time
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewStaleOrderCancellationJob(
	handler staleOrderCanceller,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		handler: handler,
		maxAge:  maxAge,
		now:     time.Now,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_cancellation_job"),
	}
}

// Start schedules the job at the top of every minute.
func (j *StaleOrderCancellationJob) Start() error {
	if _, err := j.cron.AddFunc(staleOrderCancellationSchedule, func() {
		j.run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job started",
		"schedule", staleOrderCancellationSchedule, "max_age", j.maxAge.String())
	return nil
}

func (j *StaleOrderCancellationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}

func (j *StaleOrderCancellationJob) run(ctx context.Context) {
	cmd, err := commands.NewCancelStalePendingOrdersCommand(j.now().UTC().Add(-j.maxAge))
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order cancellation job failed", "error", err)
		return
	}

	cancelled, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order cancellation job failed", "error", err)
		return
	}
	if cancelled > 0 {
		j.logger.InfoContext(ctx, "Cancelled stale pending orders",
			"count", cancelled, "cutoff", cmd.Cutoff())
	}
}
