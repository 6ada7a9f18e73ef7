package commands

import (
	"context"
	"errors"

	"freight/internal/pkg/errs"
)

// ErrShipNotFound is returned when the ship referenced by a command does not exist.
var ErrShipNotFound = errors.New("ship not found")

// UnloadContainerCommandHandler handles unloading a container from a ship.
// The released container returns to the yard and becomes available for
// reassignment. Ship state and container assignment are updated within a
// single transaction.
//
// Example:
//
//	handler := NewUnloadContainerCommandHandler(uowFactory)
//	cmd, _ := NewUnloadContainerCommand(shipID, serial)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("unload failed: %w", err)
//	}
type UnloadContainerCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewUnloadContainerCommandHandler creates a handler for container unloading.
// Requires a FleetUoWFactory since the operation touches both the ship and
// the container assignment.
func NewUnloadContainerCommandHandler(uowFactory FleetUoWFactory) UnloadContainerCommandHandler {
	return UnloadContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unload command.
// Loads the ship, releases the container from its cargo, persists the ship,
// and moves the container back to the yard. Rolls back on any error so a
// failed unload leaves the ship and the yard unchanged.
func (h UnloadContainerCommandHandler) Handle(ctx context.Context, command UnloadContainerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipRepo := uow.ShipRepository()

	shipEntity, err := shipRepo.Get(ctx, command.ShipID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrShipNotFound
	}
	if err != nil {
		return err
	}

	released, err := shipEntity.UnloadContainer(command.SerialNumber())
	if err != nil {
		return err
	}

	if err = shipRepo.Update(ctx, shipEntity); err != nil {
		return err
	}

	if err = uow.ContainerRepository().MoveToYard(ctx, released.SerialNumber()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
