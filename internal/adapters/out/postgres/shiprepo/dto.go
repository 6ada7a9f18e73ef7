// Package shiprepo provides data transfer objects and mapping functions for ship persistence.
// This package implements the repository pattern for the ship aggregate, handling the
// conversion between the aggregate with its cargo and the relational representation.
package shiprepo

import (
	"sort"

	"freight/internal/adapters/out/postgres/containerrepo"
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ship"

	"github.com/google/uuid"
)

// ShipDTO represents the database structure for persisting ship aggregates.
// The containers on board are mapped through the shared containers table via
// the ShipID foreign key; Position preserves the loading order.
type ShipDTO struct {
	ID                uuid.UUID                     `gorm:"type:uuid;primaryKey"`
	Name              string                        `gorm:"type:varchar(255);not null"`
	MaxSpeed          int                           `gorm:"type:int;not null"`
	MaxContainerCount int                           `gorm:"type:int;not null"`
	MaxTotalWeight    float64                       `gorm:"not null"`
	Containers        []containerrepo.ContainerDTO `gorm:"foreignKey:ShipID"`
}

// TableName specifies the database table name for ship entities.
// Overrides GORM's default naming convention to use "ships" instead of "ship_dtos".
func (ShipDTO) TableName() string {
	return "ships"
}

// fromDomain converts a ship aggregate to its database representation.
// Each container on board is mapped with the ship's ID and its position in
// the loading order.
func fromDomain(s *ship.Ship) ShipDTO {
	shipID := s.ID().Bytes()
	cargo := s.Containers()

	containers := make([]containerrepo.ContainerDTO, 0, len(cargo))
	for i, c := range cargo {
		position := i
		containers = append(containers, containerrepo.FromDomain(c, &shipID, &position))
	}

	return ShipDTO{
		ID:                shipID,
		Name:              s.Name(),
		MaxSpeed:          s.MaxSpeed(),
		MaxContainerCount: s.MaxContainerCount(),
		MaxTotalWeight:    s.MaxTotalWeight(),
		Containers:        containers,
	}
}

// toDomain converts a database DTO to a ship aggregate.
// Containers are restored in loading order and pass through RestoreShip,
// which re-applies the count and weight invariants.
func toDomain(dto ShipDTO, factory *container.Factory) (*ship.Ship, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Containers, func(i, j int) bool {
		return position(dto.Containers[i]) < position(dto.Containers[j])
	})

	containers := make([]container.Container, 0, len(dto.Containers))
	for _, containerDTO := range dto.Containers {
		c, containerErr := containerrepo.ToDomain(containerDTO, factory)
		if containerErr != nil {
			return nil, containerErr
		}
		containers = append(containers, c)
	}

	return ship.RestoreShip(
		id,
		dto.Name,
		dto.MaxSpeed,
		dto.MaxContainerCount,
		dto.MaxTotalWeight,
		containers,
	)
}

func position(dto containerrepo.ContainerDTO) int {
	if dto.Position == nil {
		return 0
	}
	return *dto.Position
}
