package dronerepo

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDroneRepository implements DroneRepository using GORM.
type GormDroneRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDroneRepository creates a new GORM drone repository.
// tracker may be nil for a read-only repository used outside a unit of work.
func NewGormDroneRepository(db *gorm.DB, tracker aggregateTracker) *GormDroneRepository {
	return &GormDroneRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new drone to the database.
func (r *GormDroneRepository) Add(ctx context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Update saves an existing drone to the database.
func (r *GormDroneRepository) Update(ctx context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DroneDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("ID", "CreatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("drone", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	r.track(aggregate)
	return nil
}

// Get retrieves a drone by ID.
func (r *GormDroneRepository) Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves a drone by ID with SELECT ... FOR UPDATE.
// Two transactions assigning the same drone are serialised on this lock.
func (r *GormDroneRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*drone.Drone, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// List retrieves every drone ordered by name.
func (r *GormDroneRepository) List(ctx context.Context) ([]*drone.Drone, error) {
	var dtos []DroneDTO
	if err := r.db.WithContext(ctx).Order("name").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// ListAvailableByRestaurant retrieves the restaurant's assignable drones ordered by name.
func (r *GormDroneRepository) ListAvailableByRestaurant(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]*drone.Drone, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DroneDTO
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND status IN ?", restaurantID.Bytes(), drone.LegacyAvailableValues()).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// GetAllBusyWithoutActiveOrder retrieves Busy drones that no Delivering order references
// and locks the drone rows, so a concurrent assignment cannot slip in between the
// read and the release.
//
// Example:
//
//	stranded, err := repo.GetAllBusyWithoutActiveOrder(ctx)
//	if err != nil {
//		return fmt.Errorf("failed to find stranded drones: %w", err)
//	}
//	for _, d := range stranded {
//		d.Release()
//	}
func (r *GormDroneRepository) GetAllBusyWithoutActiveOrder(ctx context.Context) ([]*drone.Drone, error) {
	var dtos []DroneDTO
	if err := r.db.WithContext(ctx).
		Table("drones").
		Select("drones.*").
		Joins("LEFT JOIN orders ON orders.drone_id = drones.id AND orders.status = ?", order.Delivering.String()).
		Where("drones.status = ? AND orders.id IS NULL", drone.Busy.String()).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "drones"}}).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormDroneRepository) get(db *gorm.DB, id kernel.UUID) (*drone.Drone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DroneDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("drone", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDroneRepository) track(aggregate *drone.Drone) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
