// Package queries contains read operations for retrieving system state.
// Queries never change the store; they return read models shaped for the API
// and the live tracking stream.
package queries

import (
	"time"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/order"
)

// OrderItemView is one line of an order in the read model.
type OrderItemView struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// OrderView is the read model of an order, also used as the tracking snapshot.
//
// Example:
//
//	{
//	  "id": "6f1c...", "status": "DELIVERING", "drone_id": "a2e4...",
//	  "drone_lat": 10.763622, "drone_lon": 106.661172, ...
//	}
type OrderView struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	RestaurantID    string          `json:"restaurant_id"`
	DroneID         *string         `json:"drone_id"`
	DroneName       string          `json:"drone_name,omitempty"`
	Items           []OrderItemView `json:"items"`
	TotalPrice      float64         `json:"total_price"`
	DeliveryAddress string          `json:"delivery_address"`
	Status          string          `json:"status"`
	DeliveryLat     float64         `json:"delivery_lat"`
	DeliveryLon     float64         `json:"delivery_lon"`
	DroneLat        float64         `json:"drone_lat"`
	DroneLon        float64         `json:"drone_lon"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewOrderView flattens o into its read model.
func NewOrderView(o *order.Order) OrderView {
	items := o.Items()
	itemViews := make([]OrderItemView, 0, len(items))
	for _, item := range items {
		itemViews = append(itemViews, OrderItemView{
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			Price:      item.Price().Float64(),
			Quantity:   item.Quantity(),
		})
	}

	view := OrderView{
		ID:              o.ID().String(),
		CustomerID:      o.CustomerID(),
		RestaurantID:    o.RestaurantID().String(),
		DroneName:       o.DroneName(),
		Items:           itemViews,
		TotalPrice:      o.TotalPrice().Float64(),
		DeliveryAddress: o.DeliveryAddress(),
		Status:          o.Status().String(),
		DeliveryLat:     o.DeliveryLocation().Latitude(),
		DeliveryLon:     o.DeliveryLocation().Longitude(),
		DroneLat:        o.DroneLocation().Latitude(),
		DroneLon:        o.DroneLocation().Longitude(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
	if droneID := o.Drone(); droneID != nil {
		id := droneID.String()
		view.DroneID = &id
	}
	return view
}

// NewOrderViews maps a list of orders, keeping their order.
func NewOrderViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	return views
}

// DroneView is the read model of a drone.
type DroneView struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	RestaurantID *string   `json:"restaurant_id"`
	Status       string    `json:"status"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewDroneView flattens d into its read model.
func NewDroneView(d *drone.Drone) DroneView {
	view := DroneView{
		ID:        d.ID().String(),
		Name:      d.Name(),
		Status:    d.Status().String(),
		Latitude:  d.Location().Latitude(),
		Longitude: d.Location().Longitude(),
		CreatedAt: d.CreatedAt(),
	}
	if restaurantID := d.Restaurant(); restaurantID != nil {
		id := restaurantID.String()
		view.RestaurantID = &id
	}
	return view
}

// NewDroneViews maps a list of drones, keeping their order.
func NewDroneViews(drones []*drone.Drone) []DroneView {
	views := make([]DroneView, 0, len(drones))
	for _, d := range drones {
		views = append(views, NewDroneView(d))
	}
	return views
}
