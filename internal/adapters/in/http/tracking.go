package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/tracking"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const wsWriteTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(*http.Request) bool {
		return true
	},
}

// wsSubscriber serializes writes to one connection; gorilla allows a single writer.
type wsSubscriber struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *wsSubscriber) WriteJSON(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
		return err
	}
	return w.conn.WriteJSON(v)
}

func (w *wsSubscriber) close(code int, reason string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	deadline := time.Now().Add(wsWriteTimeout)
	_ = w.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), deadline)
	_ = w.conn.Close()
}

// TrackOrder handles WS /ws/orders/:id. The client receives the order snapshot
// periodically until it disconnects or the server shuts down. Frames sent by the
// client are read and ignored.
func (s *Server) TrackOrder(ctx echo.Context) error {
	orderID, err := kernel.ParseReference("order_id", ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// the upgrader has already answered the client
		s.logger.WarnContext(ctx.Request().Context(), "WebSocket upgrade failed",
			"order_id", orderID.String(), "error", err)
		return nil
	}

	sub := &wsSubscriber{conn: conn}
	trackCtx, cancel := context.WithCancel(ctx.Request().Context())
	defer cancel()

	go func() {
		defer cancel()
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	err = s.tracker.Track(trackCtx, orderID, sub)
	switch {
	case errors.Is(err, tracking.ErrRegistryClosed):
		sub.close(websocket.CloseGoingAway, "server shutting down")
	case err != nil:
		s.logger.WarnContext(ctx.Request().Context(), "Order tracking ended with error",
			"order_id", orderID.String(), "error", err)
		sub.close(websocket.CloseInternalServerErr, "tracking failed")
	default:
		sub.close(websocket.CloseNormalClosure, "")
	}

	return nil
}
