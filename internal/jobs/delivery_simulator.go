package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/metrics"
)

const (
	// DeliverySteps is the number of moves a drone makes before the order completes.
	DeliverySteps = 20

	// DefaultStepInterval is the pause before each move.
	DefaultStepInterval = 2 * time.Second
)

// DeliveryAdvancer moves the drone of a delivering order one step.
type DeliveryAdvancer interface {
	Handle(ctx context.Context, cmd commands.AdvanceDeliveryCommand) (bool, error)
}

// DeliveryCompleter completes a delivered order and releases its drone.
type DeliveryCompleter interface {
	Handle(ctx context.Context, cmd commands.CompleteDeliveryCommand) error
}

// simulation is one running delivery. Its pointer identifies it in the registry.
type simulation struct {
	cancel context.CancelFunc
}

// DeliverySimulator flies assigned drones to their customers in fixed steps.
// It implements ports.DeliveryScheduler: every started order runs in its own
// goroutine, registered by order id until it finishes or is cancelled.
//
// Each step waits the interval and then advances the delivery in its own
// transaction. The simulation stops early, without writing, as soon as the order
// is no longer Delivering; a failed step aborts the rest. After the last step the
// order is completed and the drone released together.
//
// Example:
//
//	simulator := jobs.NewDeliverySimulator(advanceHandler, completeHandler, 2*time.Second, logger)
//	defer simulator.Shutdown()
//
//	simulator.Start(orderID)  // returns immediately
//	simulator.Cancel(orderID) // e.g. when the order was delivered by hand
type DeliverySimulator struct {
	advancer  DeliveryAdvancer
	completer DeliveryCompleter
	interval  time.Duration
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	running map[kernel.UUID]*simulation
	closed  bool
	wg      sync.WaitGroup
}

var _ ports.DeliveryScheduler = (*DeliverySimulator)(nil)

// NewDeliverySimulator creates an idle simulator. A non-positive interval selects
// DefaultStepInterval.
func NewDeliverySimulator(
	advancer DeliveryAdvancer,
	completer DeliveryCompleter,
	interval time.Duration,
	logger *slog.Logger,
) *DeliverySimulator {
	if interval <= 0 {
		interval = DefaultStepInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &DeliverySimulator{
		advancer:  advancer,
		completer: completer,
		interval:  interval,
		logger:    logger.With("component", "delivery_simulator"),
		ctx:       ctx,
		cancel:    cancel,
		running:   make(map[kernel.UUID]*simulation),
	}
}

// Start launches the simulation of orderID. It does nothing if that order is
// already simulated or the simulator was shut down.
func (s *DeliverySimulator) Start(orderID kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if _, ok := s.running[orderID]; ok {
		return
	}

	ctx, cancel := context.WithCancel(s.ctx)
	sim := &simulation{cancel: cancel}
	s.running[orderID] = sim
	s.wg.Add(1)
	metrics.SimulationStarted()

	go s.run(ctx, orderID, sim)
}

// Cancel stops the simulation of orderID if one is running.
func (s *DeliverySimulator) Cancel(orderID kernel.UUID) {
	s.mu.Lock()
	sim, ok := s.running[orderID]
	if ok {
		delete(s.running, orderID)
	}
	s.mu.Unlock()

	if ok {
		sim.cancel()
	}
}

// Running reports how many simulations are in flight.
func (s *DeliverySimulator) Running() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.running)
}

// Shutdown cancels every simulation, refuses new ones and waits for all goroutines.
func (s *DeliverySimulator) Shutdown() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.Wait()
}

// Wait blocks until every started simulation has returned.
func (s *DeliverySimulator) Wait() {
	s.wg.Wait()
}

func (s *DeliverySimulator) run(ctx context.Context, orderID kernel.UUID, sim *simulation) {
	defer s.wg.Done()
	defer metrics.SimulationStopped()
	defer s.forget(orderID, sim)

	logger := s.logger.With("order_id", orderID.String())
	logger.InfoContext(ctx, "Delivery simulation started", "steps", DeliverySteps, "interval", s.interval)

	advanceCmd, err := commands.NewAdvanceDeliveryCommand(orderID)
	if err != nil {
		logger.ErrorContext(ctx, "Delivery simulation aborted", "error", err)
		return
	}

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for step := 1; step <= DeliverySteps; step++ {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "Delivery simulation cancelled", "step", step)
			return
		case <-timer.C:
		}

		advanced, advanceErr := s.advancer.Handle(ctx, advanceCmd)
		if advanceErr != nil {
			if ctx.Err() != nil {
				return
			}
			logger.ErrorContext(ctx, "Delivery simulation step failed", "step", step, "error", advanceErr)
			return
		}
		if !advanced {
			logger.InfoContext(ctx, "Order left delivery, simulation stopped", "step", step)
			return
		}

		if step < DeliverySteps {
			timer.Reset(s.interval)
		}
	}

	completeCmd, err := commands.NewCompleteDeliveryCommand(orderID)
	if err != nil {
		logger.ErrorContext(ctx, "Delivery completion failed", "error", err)
		return
	}
	if err = s.completer.Handle(ctx, completeCmd); err != nil {
		logger.ErrorContext(ctx, "Delivery completion failed", "error", err)
		return
	}

	logger.InfoContext(ctx, "Delivery simulation completed the order")
}

// forget removes sim from the registry unless a newer simulation replaced it.
func (s *DeliverySimulator) forget(orderID kernel.UUID, sim *simulation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.running[orderID]; ok && current == sim {
		delete(s.running, orderID)
	}
	sim.cancel()
}
