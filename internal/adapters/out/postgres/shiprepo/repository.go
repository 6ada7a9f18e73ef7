package shiprepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ship"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipRepository implements ShipRepository using GORM.
type GormShipRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	factory *container.Factory
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipRepository creates a new GORM ship repository.
// The container factory is needed to restore the cargo when loading ships.
func NewGormShipRepository(db *gorm.DB, tracker aggregateTracker, factory *container.Factory) *GormShipRepository {
	return &GormShipRepository{
		db:      db,
		tracker: tracker,
		factory: factory,
	}
}

// Add saves a new ship to the database.
func (r *GormShipRepository) Add(ctx context.Context, aggregate *ship.Ship) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Containers").Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing ship to the database, including the containers
// currently on board. Container rows are upserted with their ship assignment
// and position; containers that left the ship are handled by the container
// repository.
func (r *GormShipRepository) Update(ctx context.Context, aggregate *ship.Ship) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a ship by ID with its cargo in loading order.
func (r *GormShipRepository) Get(ctx context.Context, id kernel.UUID) (*ship.Ship, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipDTO
	if err := r.db.WithContext(ctx).
		Preload("Containers", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipId", id.String())
		}
		return nil, err
	}

	return toDomain(dto, r.factory)
}

// GetAll retrieves every ship in the fleet with its cargo.
func (r *GormShipRepository) GetAll(ctx context.Context) ([]*ship.Ship, error) {
	var dtos []ShipDTO
	if err := r.db.WithContext(ctx).
		Preload("Containers", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	ships := make([]*ship.Ship, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto, r.factory)
		if err != nil {
			return nil, err
		}
		ships = append(ships, s)
	}

	return ships, nil
}
