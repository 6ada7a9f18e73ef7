// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrGetAllShipsQueryIsNotConstructed = errors.New(
		"GetAllShipsQuery must be created via NewGetAllShipsQuery constructor",
	)
)

// GetAllShipsQuery retrieves information about all ships in the fleet.
// Returns ship identities, limits, and current cargo load for monitoring
// and planning.
//
// Example:
//
//	query := NewGetAllShipsQuery()
//	handler := NewGetAllShipsQueryHandler(db)
//
//	ships, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve ships: %w", err)
//	}
//
//	for _, s := range ships {
//	    fmt.Printf("Ship %s carries %d containers (%.2f kg)\n",
//	        s.Name, s.ContainerCount, s.TotalWeight)
//	}
type GetAllShipsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllShipsQuery creates a query to retrieve all ships.
// This is a parameterless query that fetches the complete fleet list.
func NewGetAllShipsQuery() GetAllShipsQuery {
	return GetAllShipsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllShipsQueryIsNotConstructed if validation fails.
func (q GetAllShipsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipsQueryIsNotConstructed)
}

// GetAllShipsQueryResponse represents ship information in the read model.
// Contains the ship's limits together with the aggregated cargo state.
// TotalWeight is in kilograms.
type GetAllShipsQueryResponse struct {
	ID                kernel.UUID
	Name              string
	MaxSpeed          int
	MaxContainerCount int
	MaxTotalWeight    float64
	ContainerCount    int
	TotalWeight       float64
}
