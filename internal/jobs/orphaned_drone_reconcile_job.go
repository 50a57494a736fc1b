package jobs

import (
	"context"
	"log/slog"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultReconcileSchedule runs the reconciler every 30 seconds.
const DefaultReconcileSchedule = "*/30 * * * * *"

// OrphanedDroneReleaser returns stranded Busy drones to service.
type OrphanedDroneReleaser interface {
	Handle(ctx context.Context, cmd commands.ReleaseOrphanedDronesCommand) (int, error)
}

// OrphanedDroneReconcileJob periodically releases Busy drones that no Delivering
// order references, such as the drone of a simulation that died before completion.
type OrphanedDroneReconcileJob struct {
	handler  OrphanedDroneReleaser
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrphanedDroneReconcileJob creates the job. An empty schedule selects
// DefaultReconcileSchedule; schedules use the six-field cron format with seconds.
func NewOrphanedDroneReconcileJob(
	handler OrphanedDroneReleaser,
	schedule string,
	logger *slog.Logger,
) *OrphanedDroneReconcileJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	return &OrphanedDroneReconcileJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "orphaned_drone_reconcile_job"),
	}
}

// Start begins the reconciliation on its schedule.
func (j *OrphanedDroneReconcileJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.RunOnce); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Orphaned drone reconcile job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single reconciliation pass.
func (j *OrphanedDroneReconcileJob) RunOnce() {
	ctx := context.Background()

	released, err := j.handler.Handle(ctx, commands.NewReleaseOrphanedDronesCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Orphaned drone reconcile job failed", "error", err)
		return
	}

	metrics.OrphanedDronesReleased(released)
	if released > 0 {
		j.logger.WarnContext(ctx, "Released orphaned drones", "count", released)
	}
}

// Stop stops the schedule and waits for a running pass to finish.
func (j *OrphanedDroneReconcileJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Orphaned drone reconcile job stopped")
}
