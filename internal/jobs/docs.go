// Package jobs provides the background work of the delivery system.
//
// # Available Jobs
//
// 1. DeliverySimulator - on demand, flies each assigned drone to its customer in
// DeliverySteps moves and then completes the order
// 2. OrphanedDroneReconcileJob - cron based (github.com/robfig/cron/v3), releases
// Busy drones that no Delivering order references
//
// # Usage
//
//	simulator := jobs.NewDeliverySimulator(advanceHandler, completeHandler, interval, logger)
//	reconciler := jobs.NewOrphanedDroneReconcileJob(releaseHandler, jobs.DefaultReconcileSchedule, logger)
//	jobManager := jobs.NewJobManager(simulator, reconciler)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs are best-effort. A failed simulation step is logged and ends that
// simulation; the reconciler later frees a drone left Busy by it. Reconciler
// failures are logged and retried on the next tick.
package jobs
