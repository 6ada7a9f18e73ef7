// Package containerrepo provides data transfer objects and mapping functions for container persistence.
// This package implements the repository pattern for cargo containers, handling the conversion
// between the container variants and their single-table database representation.
package containerrepo

import (
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
)

// ContainerDTO represents the database structure for persisting cargo containers.
// All container kinds share one table; the Kind column discriminates the variant
// and the variant-specific columns are nullable. A NULL ShipID means the
// container is waiting in the yard; Position records its place in the ship's
// cargo when assigned.
type ContainerDTO struct {
	SerialNumber string  `gorm:"type:varchar(32);primaryKey"`
	TypeCode     string  `gorm:"type:varchar(8);not null"`
	Sequence     uint64  `gorm:"not null;index"`
	Kind         int     `gorm:"type:int;not null"`
	Height       float64 `gorm:"not null"`
	Depth        float64 `gorm:"not null"`
	MaxPayload   float64 `gorm:"not null"`
	TareWeight   float64 `gorm:"not null"`
	LoadMass     float64 `gorm:"not null"`

	Hazardous   *bool
	Pressure    *float64
	Product     *int
	Temperature *float64

	ShipID   *uuid.UUID `gorm:"type:uuid;index"`
	Position *int
}

// TableName specifies the database table name for container entities.
// Overrides GORM's default naming convention to use "containers" instead of "container_dtos".
func (ContainerDTO) TableName() string {
	return "containers"
}

// FromDomain converts a container to its database representation.
// The ship assignment is passed in by the caller: nil values place the
// container in the yard, non-nil values bind it to a ship slot.
func FromDomain(c container.Container, shipID *uuid.UUID, position *int) ContainerDTO {
	dto := ContainerDTO{
		SerialNumber: c.SerialNumber().String(),
		TypeCode:     c.SerialNumber().TypeCode(),
		Sequence:     c.SerialNumber().Sequence(),
		Kind:         int(c.Kind()),
		Height:       c.Height(),
		Depth:        c.Depth(),
		MaxPayload:   c.MaxPayload(),
		TareWeight:   c.TareWeight(),
		LoadMass:     c.LoadMass(),
		ShipID:       shipID,
		Position:     position,
	}

	switch v := c.(type) {
	case *container.LiquidContainer:
		hazardous := v.Hazardous()
		dto.Hazardous = &hazardous
	case *container.GasContainer:
		pressure := v.Pressure()
		dto.Pressure = &pressure
	case *container.RefrigeratedContainer:
		product := int(v.Product())
		temperature := v.Temperature()
		dto.Product = &product
		dto.Temperature = &temperature
	}

	return dto
}

// ToDomain converts a database DTO back into the matching container variant.
// Restoration goes through the container factory so the persisted state is
// validated the same way as freshly built containers.
func ToDomain(dto ContainerDTO, factory *container.Factory) (container.Container, error) {
	serial, err := kernel.NewSerialNumber(dto.TypeCode, dto.Sequence)
	if err != nil {
		return nil, err
	}

	switch container.Kind(dto.Kind) {
	case container.Liquid:
		hazardous := dto.Hazardous != nil && *dto.Hazardous
		return factory.RestoreLiquidContainer(
			serial, dto.Height, dto.Depth, dto.MaxPayload, dto.TareWeight, dto.LoadMass, hazardous,
		)
	case container.Gas:
		if dto.Pressure == nil {
			return nil, errs.NewValueIsRequiredError("pressure")
		}
		return factory.RestoreGasContainer(
			serial, dto.Height, dto.Depth, dto.MaxPayload, dto.TareWeight, dto.LoadMass, *dto.Pressure,
		)
	case container.Refrigerated:
		if dto.Product == nil || dto.Temperature == nil {
			return nil, errs.NewValueIsRequiredError("product")
		}
		return factory.RestoreRefrigeratedContainer(
			serial, dto.Height, dto.Depth, dto.MaxPayload, dto.TareWeight, dto.LoadMass,
			container.Product(*dto.Product), *dto.Temperature,
		)
	case container.UnknownKind:
	}

	return nil, errs.NewValueIsInvalidError("kind")
}
