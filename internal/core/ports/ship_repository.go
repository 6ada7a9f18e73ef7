// Package ports defines repository interfaces for the freight domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ship"
)

// ShipRepository defines the persistence contract for ship aggregates.
// Provides methods for storing, retrieving, and querying ship entities
// with their complete state including the containers on board.
type ShipRepository interface {
	// Add persists a new ship aggregate to storage.
	// The ship must be valid and not already exist in the repository.
	Add(ctx context.Context, ship *ship.Ship) error

	// Update persists changes to an existing ship aggregate,
	// including containers loaded onto or unloaded from it.
	// The ship must exist in the repository and be valid.
	Update(ctx context.Context, ship *ship.Ship) error

	// Get retrieves a ship aggregate by its unique identifier.
	// Returns the complete ship with its cargo in loading order.
	Get(ctx context.Context, id kernel.UUID) (*ship.Ship, error)

	// GetAll retrieves every ship in the fleet with its cargo.
	GetAll(ctx context.Context) ([]*ship.Ship, error)
}
