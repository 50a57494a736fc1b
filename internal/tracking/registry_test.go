package tracking_test

import (
	"errors"
	"sync"
	"testing"

	"dronedelivery/internal/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubscriber struct {
	mu       sync.Mutex
	payloads []any
	err      error
}

func (s *recordingSubscriber) WriteJSON(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.payloads = append(s.payloads, v)
	return nil
}

func (s *recordingSubscriber) Received() []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]any(nil), s.payloads...)
}

func TestRegistry(t *testing.T) {
	t.Run("should broadcast only to subscribers of the order", func(t *testing.T) {
		registry := tracking.NewRegistry()
		first, second, other := &recordingSubscriber{}, &recordingSubscriber{}, &recordingSubscriber{}
		require.NoError(t, registry.Subscribe("o1", first))
		require.NoError(t, registry.Subscribe("o1", second))
		require.NoError(t, registry.Subscribe("o2", other))

		delivered := registry.Broadcast("o1", "snapshot")

		assert.Equal(t, 2, delivered)
		assert.Equal(t, []any{"snapshot"}, first.Received())
		assert.Equal(t, []any{"snapshot"}, second.Received())
		assert.Empty(t, other.Received())
	})

	t.Run("should drop a subscriber whose send fails", func(t *testing.T) {
		registry := tracking.NewRegistry()
		healthy := &recordingSubscriber{}
		broken := &recordingSubscriber{err: errors.New("broken pipe")}
		require.NoError(t, registry.Subscribe("o1", healthy))
		require.NoError(t, registry.Subscribe("o1", broken))

		delivered := registry.Broadcast("o1", "snapshot")

		assert.Equal(t, 1, delivered)
		assert.False(t, registry.IsSubscribed("o1", broken))
		assert.True(t, registry.IsSubscribed("o1", healthy))
		assert.Equal(t, 1, registry.Count("o1"))
	})

	t.Run("should count a repeated subscription once", func(t *testing.T) {
		registry := tracking.NewRegistry()
		sub := &recordingSubscriber{}
		require.NoError(t, registry.Subscribe("o1", sub))
		require.NoError(t, registry.Subscribe("o1", sub))

		assert.Equal(t, 1, registry.Count("o1"))

		registry.Unsubscribe("o1", sub)
		registry.Unsubscribe("o1", sub)
		assert.Zero(t, registry.Count("o1"))
	})

	t.Run("should send nothing for an order without subscribers", func(t *testing.T) {
		assert.Zero(t, tracking.NewRegistry().Broadcast("nobody", "snapshot"))
	})

	t.Run("should refuse subscribers once closed", func(t *testing.T) {
		registry := tracking.NewRegistry()
		sub := &recordingSubscriber{}
		require.NoError(t, registry.Subscribe("o1", sub))

		assert.False(t, registry.IsClosed())
		registry.Close()

		assert.True(t, registry.IsClosed())
		assert.False(t, registry.IsSubscribed("o1", sub))
		require.ErrorIs(t, registry.Subscribe("o1", sub), tracking.ErrRegistryClosed)
	})

	t.Run("should tolerate concurrent use", func(t *testing.T) {
		registry := tracking.NewRegistry()
		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sub := &recordingSubscriber{}
				_ = registry.Subscribe("o1", sub)
				registry.Broadcast("o1", "snapshot")
				registry.Unsubscribe("o1", sub)
			}()
		}
		wg.Wait()

		assert.Zero(t, registry.Count("o1"))
	})
}
