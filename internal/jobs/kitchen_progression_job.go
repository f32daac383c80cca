package jobs

import (
	"context"
	"log/slog"
	"time"

	"dinner/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const kitchenProgressionSchedule = "*/10 * * * * *"

type kitchenAdvancer interface {
	Handle(ctx context.Context, cmd commands.AdvanceKitchenOrdersCommand) (int, error)
}

// KitchenProgressionJob simulates the kitchen: confirmed orders start preparing and
// preparing orders become ready once their preparation time has elapsed.
type KitchenProgressionJob struct {
	handler kitchenAdvancer
	now     func() time.Time
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewKitchenProgressionJob(handler kitchenAdvancer, logger *slog.Logger) *KitchenProgressionJob {
	return &KitchenProgressionJob{
		handler: handler,
		now:     time.Now,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "kitchen_progression_job"),
	}
}

// Start schedules the job every 10 seconds.
func (j *KitchenProgressionJob) Start() error {
	if _, err := j.cron.AddFunc(kitchenProgressionSchedule, func() {
		j.run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen progression job started",
		"schedule", kitchenProgressionSchedule)
	return nil
}

func (j *KitchenProgressionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Kitchen progression job stopped")
}

func (j *KitchenProgressionJob) run(ctx context.Context) {
	cmd, err := commands.NewAdvanceKitchenOrdersCommand(j.now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Kitchen progression job failed", "error", err)
		return
	}

	advanced, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Kitchen progression job failed", "error", err)
		return
	}
	if advanced > 0 {
		j.logger.DebugContext(ctx, "Advanced kitchen orders", "count", advanced)
	}
}
