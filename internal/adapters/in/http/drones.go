package http

import (
	"net/http"
	"strings"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type createDroneRequest struct {
	Name         string `json:"name"`
	RestaurantID string `json:"restaurant_id"`
}

type attachDroneRequest struct {
	DroneID      string `json:"drone_id"`
	RestaurantID string `json:"restaurant_id"`
}

type registerRestaurantRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type droneCreatedResponse struct {
	Message string            `json:"message"`
	Drone   queries.DroneView `json:"drone"`
}

type droneResponse struct {
	Success bool              `json:"success"`
	Drone   queries.DroneView `json:"drone"`
}

type restaurantView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type restaurantResponse struct {
	Success    bool           `json:"success"`
	Restaurant restaurantView `json:"restaurant"`
}

// ListAvailableDrones handles GET /restaurant/:restaurantId/drones.
func (s *Server) ListAvailableDrones(ctx echo.Context) error {
	restaurantID, err := kernel.ParseReference("restaurant_id", ctx.Param("restaurantId"))
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListAvailableDronesQuery(restaurantID)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.handlers.ListAvailableDrones.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// ListDrones handles GET /admin/drones.
func (s *Server) ListDrones(ctx echo.Context) error {
	views, err := s.handlers.ListDrones.Handle(ctx.Request().Context(), queries.NewListDronesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

// GetDrone handles GET /admin/drones/:id.
func (s *Server) GetDrone(ctx echo.Context) error {
	droneID, err := kernel.ParseReference("drone_id", ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetDroneQuery(droneID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetDrone.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// CreateDrone handles POST /admin/drones. The restaurant is optional.
func (s *Server) CreateDrone(ctx echo.Context) error {
	var req createDroneRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var restaurantID *kernel.UUID
	if raw := strings.TrimSpace(req.RestaurantID); raw != "" {
		id, err := kernel.ParseReference("restaurant_id", raw)
		if err != nil {
			return s.fail(ctx, err)
		}
		restaurantID = &id
	}

	cmd, err := commands.NewCreateDroneCommand(req.Name, restaurantID)
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.handlers.CreateDrone.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, droneCreatedResponse{
		Message: "Drone created",
		Drone:   queries.NewDroneView(d),
	})
}

// AttachDrone handles POST /admin/assign-drone - binds a drone to a restaurant fleet.
func (s *Server) AttachDrone(ctx echo.Context) error {
	var req attachDroneRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	droneID, err := kernel.ParseReference("drone_id", req.DroneID)
	if err != nil {
		return s.fail(ctx, err)
	}
	restaurantID, err := kernel.ParseReference("restaurant_id", req.RestaurantID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAttachDroneToRestaurantCommand(droneID, restaurantID)
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.handlers.AttachDrone.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, droneResponse{
		Success: true,
		Drone:   queries.NewDroneView(d),
	})
}

// SetDroneStatus handles POST /admin/drones/:id/status.
func (s *Server) SetDroneStatus(ctx echo.Context) error {
	droneID, err := kernel.ParseReference("drone_id", ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}

	var req updateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetDroneStatusCommand(droneID, req.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.handlers.SetDroneStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, droneResponse{
		Success: true,
		Drone:   queries.NewDroneView(d),
	})
}

// RegisterRestaurant handles POST /admin/restaurants. A missing id gets a fresh one.
func (s *Server) RegisterRestaurant(ctx echo.Context) error {
	var req registerRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	restaurantID := kernel.NewUUID()
	if raw := strings.TrimSpace(req.ID); raw != "" {
		id, err := kernel.ParseReference("restaurant_id", raw)
		if err != nil {
			return s.fail(ctx, err)
		}
		restaurantID = id
	}

	cmd, err := commands.NewRegisterRestaurantCommand(restaurantID, req.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.RegisterRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, restaurantResponse{
		Success: true,
		Restaurant: restaurantView{
			ID:   restaurantID.String(),
			Name: strings.TrimSpace(req.Name),
		},
	})
}
