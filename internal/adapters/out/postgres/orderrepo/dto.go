// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items are stored as one JSONB document; the remaining attributes are columns
// indexed for the customer, restaurant and drone lookups.
type OrderDTO struct {
	ID              uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	CustomerID      string                       `gorm:"type:varchar(128);not null;index"`
	RestaurantID    uuid.UUID                    `gorm:"type:uuid;not null;index"`
	Items           datatypes.JSONSlice[ItemDTO] `gorm:"not null"`
	TotalPrice      decimal.Decimal              `gorm:"type:numeric(12,2);not null"`
	DeliveryAddress string                       `gorm:"not null"`
	Status          string                       `gorm:"type:varchar(32);not null;index"`
	DroneID         *uuid.UUID                   `gorm:"type:uuid;index"`
	DroneName       string                       `gorm:"type:varchar(128)"`
	Delivery        LocationDTO                  `gorm:"embedded;embeddedPrefix:delivery_"`
	Drone           LocationDTO                  `gorm:"embedded;embeddedPrefix:drone_"`
	CreatedAt       time.Time                    `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt       time.Time                    `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one element of the items document.
type ItemDTO struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

// LocationDTO represents a pair of coordinate columns within the order table.
type LocationDTO struct {
	Lat float64 `gorm:"column:lat;not null"`
	Lon float64 `gorm:"column:lon;not null"`
}

func locationFromDomain(l kernel.Location) LocationDTO {
	return LocationDTO{Lat: l.Latitude(), Lon: l.Longitude()}
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional drone assignment.
func fromDomain(o *order.Order) OrderDTO {
	var droneID *uuid.UUID
	if id := o.Drone(); id != nil {
		raw := id.Bytes()
		droneID = &raw
	}

	items := o.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			Price:      item.Price().Decimal(),
			Quantity:   item.Quantity(),
		})
	}

	return OrderDTO{
		ID:              o.ID().Bytes(),
		CustomerID:      o.CustomerID(),
		RestaurantID:    o.RestaurantID().Bytes(),
		Items:           itemDTOs,
		TotalPrice:      o.TotalPrice().Decimal(),
		DeliveryAddress: o.DeliveryAddress(),
		Status:          o.Status().String(),
		DroneID:         droneID,
		DroneName:       o.DroneName(),
		Delivery:        locationFromDomain(o.DeliveryLocation()),
		Drone:           locationFromDomain(o.DroneLocation()),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and drone assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var droneID *kernel.UUID
	if dto.DroneID != nil {
		dID, droneErr := kernel.UUIDFromBytes((*dto.DroneID)[:])
		if droneErr != nil {
			return nil, droneErr
		}

		droneID = &dID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewItem(itemDTO.MenuItemID, itemDTO.Name, price, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	delivery, err := kernel.NewLocation(dto.Delivery.Lat, dto.Delivery.Lon)
	if err != nil {
		return nil, err
	}

	droneLocation, err := kernel.NewLocation(dto.Drone.Lat, dto.Drone.Lon)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:               id,
		CustomerID:       dto.CustomerID,
		RestaurantID:     restaurantID,
		Items:            items,
		TotalPrice:       total,
		DeliveryAddress:  dto.DeliveryAddress,
		Status:           status,
		DroneID:          droneID,
		DroneName:        dto.DroneName,
		DeliveryLocation: delivery,
		DroneLocation:    droneLocation,
		CreatedAt:        dto.CreatedAt.UTC(),
		UpdatedAt:        dto.UpdatedAt.UTC(),
	})
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
