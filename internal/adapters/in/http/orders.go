package http

import (
	"net/http"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// IdempotencyKeyHeader carries the client key of a payment request.
const IdempotencyKeyHeader = "Idempotency-Key"

type orderItemRequest struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type createOrderRequest struct {
	CustomerID      string             `json:"customer_id"`
	RestaurantID    string             `json:"restaurant_id"`
	Items           []orderItemRequest `json:"items"`
	TotalPrice      float64            `json:"total_price"`
	DeliveryAddress string             `json:"delivery_address"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type assignDroneRequest struct {
	DroneID string `json:"drone_id"`
}

type orderResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Order   queries.OrderView `json:"order"`
}

type assignDroneResponse struct {
	Success bool              `json:"success"`
	Order   queries.OrderView `json:"order"`
	Drone   queries.DroneView `json:"drone"`
	Message string            `json:"message"`
}

type paymentView struct {
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id"`
}

type paymentResponse struct {
	Success bool        `json:"success"`
	Payment paymentView `json:"payment"`
}

// CreateOrder handles POST /orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	restaurantID, err := kernel.ParseReference("restaurant_id", req.RestaurantID)
	if err != nil {
		return s.fail(ctx, err)
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, commands.OrderLine{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerID, restaurantID, lines, req.TotalPrice, req.DeliveryAddress,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	metrics.RecordOrderOperation("create", err == nil)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse{
		Success: true,
		Order:   queries.NewOrderView(o),
	})
}

// GetOrder handles GET /orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.ParseReference("order_id", ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// ListCustomerOrders handles GET /customer/:customerId/orders.
func (s *Server) ListCustomerOrders(ctx echo.Context) error {
	query, err := queries.NewListCustomerOrdersQuery(ctx.Param("customerId"))
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.handlers.ListCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// ListRestaurantOrders handles GET /restaurant/:restaurantId/orders.
func (s *Server) ListRestaurantOrders(ctx echo.Context) error {
	restaurantID, err := kernel.ParseReference("restaurant_id", ctx.Param("restaurantId"))
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListRestaurantOrdersQuery(restaurantID)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.handlers.ListRestaurantOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// AcceptOrder handles POST /restaurant/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.ParseReference("order_id", ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd)
	metrics.RecordOrderOperation("accept", err == nil)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse{
		Success: true,
		Order:   queries.NewOrderView(o),
	})
}

// UpdateOrderStatus handles POST /restaurant/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.ParseReference("order_id", ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	var req updateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.AdvanceOrderStatus.Handle(ctx.Request().Context(), cmd)
	metrics.RecordOrderOperation("update_status", err == nil)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse{
		Success: true,
		Order:   queries.NewOrderView(o),
	})
}

// CompleteOrder handles POST /orders/:id/complete - the customer confirms receipt.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.ParseReference("order_id", ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMarkOrderDeliveredCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.MarkOrderDelivered.Handle(ctx.Request().Context(), cmd)
	metrics.RecordOrderOperation("complete", err == nil)
	if err != nil {
		return s.fail(ctx, err)
	}

	message := "Order marked as delivered"
	if result.AlreadyCompleted {
		message = "Order already completed"
	}

	return ctx.JSON(http.StatusOK, orderResponse{
		Success: true,
		Message: message,
		Order:   queries.NewOrderView(result.Order),
	})
}

// AssignDrone handles POST /orders/:id/assign-drone with a JSON body and the
// restaurant alias that passes the drone as the drone_id query parameter.
func (s *Server) AssignDrone(ctx echo.Context) error {
	orderID, err := kernel.ParseReference("order_id", ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	rawDroneID := ctx.QueryParam("drone_id")
	if rawDroneID == "" {
		var req assignDroneRequest
		if err = ctx.Bind(&req); err != nil {
			return badRequest(ctx, "Invalid request body")
		}
		rawDroneID = req.DroneID
	}

	droneID, err := kernel.ParseReference("drone_id", rawDroneID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignDroneCommand(orderID, droneID)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.AssignDrone.Handle(ctx.Request().Context(), cmd)
	metrics.RecordOrderOperation("assign_drone", err == nil)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignDroneResponse{
		Success: true,
		Order:   queries.NewOrderView(result.Order),
		Drone:   queries.NewDroneView(result.Drone),
		Message: "Drone assigned and delivery started",
	})
}

// MockPayment handles POST /payments/mock/:id.
func (s *Server) MockPayment(ctx echo.Context) error {
	orderID, err := kernel.ParseReference("order_id", ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMockPaymentCommand(orderID, ctx.Request().Header.Get(IdempotencyKeyHeader))
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.MockPayment.Handle(ctx.Request().Context(), cmd)
	metrics.RecordOrderOperation("payment", err == nil)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentResponse{
		Success: true,
		Payment: paymentView{
			OrderID:       result.OrderID,
			Status:        result.Status,
			Message:       result.Message,
			TransactionID: result.TransactionID,
		},
	})
}
