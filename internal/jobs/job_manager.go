package jobs

import (
	"fmt"
)

// JobManager coordinates all background work of the application.
// Provides a unified interface to start and stop it.
type JobManager struct {
	simulator    *DeliverySimulator
	reconcileJob *OrphanedDroneReconcileJob
}

// NewJobManager creates a job manager over the delivery simulator and the
// orphaned drone reconciler.
func NewJobManager(simulator *DeliverySimulator, reconcileJob *OrphanedDroneReconcileJob) *JobManager {
	return &JobManager{
		simulator:    simulator,
		reconcileJob: reconcileJob,
	}
}

// StartAll starts all scheduled jobs.
// The simulator needs no start: it runs deliveries on demand.
func (jm *JobManager) StartAll() error {
	if err := jm.reconcileJob.Start(); err != nil {
		return fmt.Errorf("failed to start orphaned drone reconcile job: %w", err)
	}

	return nil
}

// StopAll stops the scheduled jobs and cancels every running delivery simulation,
// waiting for them to return.
func (jm *JobManager) StopAll() {
	jm.reconcileJob.Stop()
	jm.simulator.Shutdown()
}
