// Package http is the echo gateway of the delivery service. It translates HTTP and
// WebSocket requests into commands and queries and maps their errors to status codes.
package http

import (
	"context"
	"log/slog"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/tracking"
)

// Use case contracts the gateway depends on. The concrete handlers from the
// commands and queries packages satisfy them.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	AcceptOrderHandler interface {
		Handle(ctx context.Context, cmd commands.AcceptOrderCommand) (*order.Order, error)
	}
	AdvanceOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) (*order.Order, error)
	}
	MarkOrderDeliveredHandler interface {
		Handle(ctx context.Context, cmd commands.MarkOrderDeliveredCommand) (commands.MarkOrderDeliveredResult, error)
	}
	AssignDroneHandler interface {
		Handle(ctx context.Context, cmd commands.AssignDroneCommand) (commands.AssignDroneResult, error)
	}
	MockPaymentHandler interface {
		Handle(ctx context.Context, cmd commands.MockPaymentCommand) (commands.PaymentResult, error)
	}
	CreateDroneHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDroneCommand) (*drone.Drone, error)
	}
	AttachDroneHandler interface {
		Handle(ctx context.Context, cmd commands.AttachDroneToRestaurantCommand) (*drone.Drone, error)
	}
	SetDroneStatusHandler interface {
		Handle(ctx context.Context, cmd commands.SetDroneStatusCommand) (*drone.Drone, error)
	}
	RegisterRestaurantHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterRestaurantCommand) error
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	ListCustomerOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomerOrdersQuery) ([]queries.OrderView, error)
	}
	ListRestaurantOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListRestaurantOrdersQuery) ([]queries.OrderView, error)
	}
	GetDroneHandler interface {
		Handle(ctx context.Context, query queries.GetDroneQuery) (queries.DroneView, error)
	}
	ListDronesHandler interface {
		Handle(ctx context.Context, query queries.ListDronesQuery) ([]queries.DroneView, error)
	}
	ListAvailableDronesHandler interface {
		Handle(ctx context.Context, query queries.ListAvailableDronesQuery) ([]queries.DroneView, error)
	}

	// OrderTracker streams order snapshots to a subscriber until ctx ends.
	OrderTracker interface {
		Track(ctx context.Context, orderID kernel.UUID, sub tracking.Subscriber) error
	}
)

// Handlers groups every use case served over HTTP.
type Handlers struct {
	// Command handlers
	CreateOrder        CreateOrderHandler
	AcceptOrder        AcceptOrderHandler
	AdvanceOrderStatus AdvanceOrderStatusHandler
	MarkOrderDelivered MarkOrderDeliveredHandler
	AssignDrone        AssignDroneHandler
	MockPayment        MockPaymentHandler
	CreateDrone        CreateDroneHandler
	AttachDrone        AttachDroneHandler
	SetDroneStatus     SetDroneStatusHandler
	RegisterRestaurant RegisterRestaurantHandler

	// Query handlers
	GetOrder             GetOrderHandler
	ListCustomerOrders   ListCustomerOrdersHandler
	ListRestaurantOrders ListRestaurantOrdersHandler
	GetDrone             GetDroneHandler
	ListDrones           ListDronesHandler
	ListAvailableDrones  ListAvailableDronesHandler
}

// Server serves the REST and tracking endpoints.
type Server struct {
	handlers Handlers
	tracker  OrderTracker
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, tracker OrderTracker, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		tracker:  tracker,
		logger:   logger.With("component", "http_server"),
	}
}
