package containerrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormContainerRepository implements ContainerRepository using GORM.
type GormContainerRepository struct {
	db      *gorm.DB
	factory *container.Factory
}

// NewGormContainerRepository creates a new GORM container repository.
// The container factory is needed to restore the kind-specific variants.
func NewGormContainerRepository(db *gorm.DB, factory *container.Factory) *GormContainerRepository {
	return &GormContainerRepository{
		db:      db,
		factory: factory,
	}
}

// Add saves a freshly commissioned container to the database.
// The container starts in the yard with no ship assignment.
func (r *GormContainerRepository) Add(ctx context.Context, c container.Container) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := FromDomain(c, nil, nil)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists changes to an existing container's own state.
// The ship assignment is owned by the ship side of the mapping and is left
// untouched here; use MoveToYard to clear it.
func (r *GormContainerRepository) Update(ctx context.Context, c container.Container) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := FromDomain(c, nil, nil)
	result := r.db.WithContext(ctx).
		Model(&ContainerDTO{}).
		Where("serial_number = ?", dto.SerialNumber).
		Select("load_mass", "hazardous", "pressure", "product", "temperature").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("serialNumber", c.SerialNumber())
	}

	return nil
}

// Get retrieves a container by its serial number.
func (r *GormContainerRepository) Get(
	ctx context.Context,
	serialNumber kernel.SerialNumber,
) (container.Container, error) {
	if err := serialNumber.Validate(); err != nil {
		return nil, err
	}

	var dto ContainerDTO
	err := r.db.WithContext(ctx).First(&dto, "serial_number = ?", serialNumber.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("serialNumber", serialNumber)
	}
	if err != nil {
		return nil, err
	}

	return ToDomain(dto, r.factory)
}

// GetAllInYard retrieves all containers without a ship assignment,
// oldest serial numbers first.
func (r *GormContainerRepository) GetAllInYard(ctx context.Context) ([]container.Container, error) {
	var dtos []ContainerDTO
	if err := r.db.WithContext(ctx).
		Where("ship_id IS NULL").
		Order("sequence").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	containers := make([]container.Container, 0, len(dtos))
	for _, dto := range dtos {
		c, err := ToDomain(dto, r.factory)
		if err != nil {
			return nil, err
		}
		containers = append(containers, c)
	}

	return containers, nil
}

// MoveToYard clears the ship assignment of a container.
func (r *GormContainerRepository) MoveToYard(ctx context.Context, serialNumber kernel.SerialNumber) error {
	if err := serialNumber.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ContainerDTO{}).
		Where("serial_number = ?", serialNumber.String()).
		Updates(map[string]any{"ship_id": nil, "position": nil})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("serialNumber", serialNumber)
	}

	return nil
}

// GetLastSequence returns the highest serial number sequence ever issued,
// or zero when no containers exist.
func (r *GormContainerRepository) GetLastSequence(ctx context.Context) (uint64, error) {
	var last uint64
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(MAX(sequence), 0) FROM containers").
		Scan(&last).Error
	if err != nil {
		return 0, err
	}

	return last, nil
}
