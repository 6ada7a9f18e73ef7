package ports

import (
	"context"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
)

// ContainerRepository defines the persistence contract for cargo containers.
// It covers both containers on board a ship and containers waiting in the
// yard (not assigned to any ship yet).
type ContainerRepository interface {
	// Add persists a new container to storage. A freshly commissioned
	// container starts in the yard.
	Add(ctx context.Context, container container.Container) error

	// Update persists changes to an existing container, including its
	// load mass and its yard/ship assignment.
	Update(ctx context.Context, container container.Container) error

	// Get retrieves a container by its serial number.
	Get(ctx context.Context, serialNumber kernel.SerialNumber) (container.Container, error)

	// GetAllInYard retrieves all containers not assigned to any ship,
	// oldest first.
	GetAllInYard(ctx context.Context) ([]container.Container, error)

	// MoveToYard clears the ship assignment of a container, returning it
	// to the yard. Used after a container is unloaded from a ship.
	MoveToYard(ctx context.Context, serialNumber kernel.SerialNumber) error

	// GetLastSequence returns the highest serial number sequence ever
	// issued, or zero when no containers exist. Used to seed the serial
	// number generator on startup.
	GetLastSequence(ctx context.Context) (uint64, error)
}
