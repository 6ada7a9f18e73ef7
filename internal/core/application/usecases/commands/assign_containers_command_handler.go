package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/services"
)

var (
	ErrNoContainersInYard = errors.New("no containers waiting in the yard")
	ErrNoSuitableShip     = errors.New("no ship can take the container")
)

// AssignContainersCommandHandler orchestrates the container assignment process.
// Finds containers waiting in the yard and matches them with ships using the
// cargo planner. Ensures transactional consistency when updating both the
// ship and the container assignment.
//
// Example:
//
//	handler := NewAssignContainersCommandHandler(uowFactory)
//	cmd := NewAssignContainersCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoContainersInYard):
//	    log.Println("Yard is empty")
//	case errors.Is(err, ErrNoSuitableShip):
//	    log.Println("Fleet has no capacity")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Container assigned successfully")
//	}
type AssignContainersCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewAssignContainersCommandHandler creates a handler for container assignment operations.
// Requires a FleetUoWFactory for coordinating transactional updates across repositories.
func NewAssignContainersCommandHandler(uowFactory FleetUoWFactory) AssignContainersCommandHandler {
	return AssignContainersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the container assignment command.
// Retrieves the oldest yard container, loads the fleet, and uses CargoPlanner
// to pick the ship with the most remaining weight capacity. The ship update
// persists the new assignment within a single transaction.
// Returns specific errors for an empty yard (ErrNoContainersInYard) or a
// fleet without capacity (ErrNoSuitableShip).
func (h AssignContainersCommandHandler) Handle(ctx context.Context, command AssignContainersCommand) error {
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
	containerRepo := uow.ContainerRepository()

	waiting, err := containerRepo.GetAllInYard(ctx)
	if err != nil {
		return err
	}
	if len(waiting) == 0 {
		return ErrNoContainersInYard
	}
	cargo := waiting[0]

	ships, err := shipRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	loadedShip, err := services.NewCargoPlanner().Plan(cargo, ships)
	if errors.Is(err, services.ErrShipNotFound) {
		return ErrNoSuitableShip
	}
	if err != nil {
		return err
	}

	if err = shipRepo.Update(ctx, loadedShip); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
