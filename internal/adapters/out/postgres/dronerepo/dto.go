// Package dronerepo persists drone aggregates with GORM.
// Status is stored as its string form; rows written by older releases with the
// status IDLE are read back as Available.
package dronerepo

import (
	"time"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DroneDTO represents the database structure for persisting drone aggregates.
type DroneDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name         string     `gorm:"type:varchar(128);not null"`
	RestaurantID *uuid.UUID `gorm:"type:uuid;index"`
	Status       string     `gorm:"type:varchar(16);not null;index"`
	Latitude     float64    `gorm:"not null"`
	Longitude    float64    `gorm:"not null"`
	CreatedAt    time.Time  `gorm:"not null;autoCreateTime:false"`
}

// TableName specifies the database table name for drone entities.
func (DroneDTO) TableName() string {
	return "drones"
}

func fromDomain(d *drone.Drone) DroneDTO {
	var restaurantID *uuid.UUID
	if id := d.Restaurant(); id != nil {
		raw := id.Bytes()
		restaurantID = &raw
	}

	return DroneDTO{
		ID:           d.ID().Bytes(),
		Name:         d.Name(),
		RestaurantID: restaurantID,
		Status:       d.Status().String(),
		Latitude:     d.Location().Latitude(),
		Longitude:    d.Location().Longitude(),
		CreatedAt:    d.CreatedAt(),
	}
}

func toDomain(dto DroneDTO) (*drone.Drone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var restaurantID *kernel.UUID
	if dto.RestaurantID != nil {
		rID, restaurantErr := kernel.UUIDFromBytes((*dto.RestaurantID)[:])
		if restaurantErr != nil {
			return nil, restaurantErr
		}
		restaurantID = &rID
	}

	status, err := drone.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return drone.RestoreDrone(id, dto.Name, restaurantID, status, location, dto.CreatedAt.UTC())
}

func toDomainList(dtos []DroneDTO) ([]*drone.Drone, error) {
	drones := make([]*drone.Drone, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drones = append(drones, d)
	}
	return drones, nil
}
