package commands

import (
	"context"

	"freight/internal/core/domain/model/ship"
)

// CommissionShipCommandHandler handles the business logic for ship commissioning.
// Creates and persists new ship entities with their cargo limits.
//
// Example:
//
//	handler := NewCommissionShipCommandHandler(uowFactory)
//	cmd, _ := NewCommissionShipCommand("Evergreen", 18, 24, 300)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("ship commissioning failed: %w", err)
//	}
type CommissionShipCommandHandler struct {
	uowFactory ShipUoWFactory
}

// NewCommissionShipCommandHandler creates a handler for ship commissioning.
// Requires a ShipUoWFactory for transactional persistence operations.
func NewCommissionShipCommandHandler(uowFactory ShipUoWFactory) CommissionShipCommandHandler {
	return CommissionShipCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the ship commissioning command.
// Creates a new ship entity and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CommissionShipCommandHandler) Handle(ctx context.Context, cmd CommissionShipCommand) error {
	if err := cmd.Validate(); err != nil {
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
	shipEntity, err := ship.NewShip(
		cmd.ShipID(),
		cmd.Name(),
		cmd.MaxSpeed(),
		cmd.MaxContainerCount(),
		cmd.MaxTotalWeight(),
	)
	if err != nil {
		return err
	}

	if err = shipRepo.Add(ctx, shipEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
