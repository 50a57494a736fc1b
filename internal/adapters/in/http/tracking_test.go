package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "dronedelivery/internal/adapters/in/http"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/tracking"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTracking(t *testing.T, server *httptest.Server, orderID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/orders/" + orderID
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestTrackOrder_StreamsSnapshots(t *testing.T) {
	orderID := kernel.NewUUID()
	tracker := trackFunc(func(_ context.Context, id kernel.UUID, sub tracking.Subscriber) error {
		for i := 0; i < 2; i++ {
			if err := sub.WriteJSON(map[string]any{"id": id.String(), "tick": i}); err != nil {
				return err
			}
		}
		return nil
	})
	server := httptest.NewServer(newTestRouter(httpin.Handlers{}, tracker))
	defer server.Close()

	conn := dialTracking(t, server, orderID.String())
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	for i := 0; i < 2; i++ {
		var msg struct {
			ID   string `json:"id"`
			Tick int    `json:"tick"`
		}
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, orderID.String(), msg.ID)
		assert.Equal(t, i, msg.Tick)
	}

	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestTrackOrder_ClientDisconnectEndsTracking(t *testing.T) {
	done := make(chan struct{})
	tracker := trackFunc(func(ctx context.Context, _ kernel.UUID, _ tracking.Subscriber) error {
		<-ctx.Done()
		close(done)
		return nil
	})
	server := httptest.NewServer(newTestRouter(httpin.Handlers{}, tracker))
	defer server.Close()

	conn := dialTracking(t, server, kernel.NewUUID().String())
	require.NoError(t, conn.Close())

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("tracking did not stop after the client disconnected")
	}
}

func TestTrackOrder_ClosedRegistry(t *testing.T) {
	tracker := trackFunc(func(context.Context, kernel.UUID, tracking.Subscriber) error {
		return tracking.ErrRegistryClosed
	})
	server := httptest.NewServer(newTestRouter(httpin.Handlers{}, tracker))
	defer server.Close()

	conn := dialTracking(t, server, kernel.NewUUID().String())
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}

func TestTrackOrder_ShutdownDuringStreamClosesWithGoingAway(t *testing.T) {
	registry := tracking.NewRegistry()
	snapshots := getOrderFunc(func(_ context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
		return queries.OrderView{ID: query.OrderID().String(), Status: "DELIVERING"}, nil
	})
	broadcaster := tracking.NewBroadcaster(
		registry, snapshots, 10*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	server := httptest.NewServer(newTestRouter(httpin.Handlers{}, broadcaster))
	defer server.Close()

	orderID := kernel.NewUUID()
	conn := dialTracking(t, server, orderID.String())
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var view queries.OrderView
	require.NoError(t, conn.ReadJSON(&view))
	assert.Equal(t, orderID.String(), view.ID)

	registry.Close()

	for {
		_, _, err := conn.ReadMessage()
		if err == nil {
			continue
		}
		assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
		return
	}
}

func TestTrackOrder_InvalidIDIsRejectedBeforeUpgrade(t *testing.T) {
	server := httptest.NewServer(newTestRouter(httpin.Handlers{}, nil))
	defer server.Close()

	resp, err := http.Get(server.URL + "/ws/orders/not-a-uuid")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
