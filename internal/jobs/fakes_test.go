package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"dronedelivery/internal/core/application/usecases/commands"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAdvancer answers AdvanceDelivery. stopAt and failAt are 1-based call numbers.
type fakeAdvancer struct {
	mu     sync.Mutex
	calls  int
	stopAt int
	failAt int
	block  bool

	entered chan struct{}
}

func (f *fakeAdvancer) Handle(ctx context.Context, _ commands.AdvanceDeliveryCommand) (bool, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.mu.Unlock()

	if f.entered != nil {
		select {
		case f.entered <- struct{}{}:
		default:
		}
	}
	if f.block {
		<-ctx.Done()
		return false, ctx.Err()
	}
	if call == f.failAt {
		return false, errors.New("connection reset")
	}
	if call == f.stopAt {
		return false, nil
	}
	return true, nil
}

func (f *fakeAdvancer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeCompleter struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeCompleter) Handle(_ context.Context, _ commands.CompleteDeliveryCommand) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func (f *fakeCompleter) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeReleaser struct {
	mu       sync.Mutex
	calls    int
	released int
	err      error
}

func (f *fakeReleaser) Handle(_ context.Context, _ commands.ReleaseOrphanedDronesCommand) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.released, f.err
}

func (f *fakeReleaser) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
