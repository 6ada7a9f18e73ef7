package commands

import (
	"context"
	"errors"

	"freight/internal/pkg/errs"
)

// TransferContainerCommandHandler handles moving a container between ships.
// The transfer is atomic at the domain level: the target ship's limits are
// checked before the container leaves the source, and both ships are
// persisted in the same transaction.
//
// Example:
//
//	handler := NewTransferContainerCommandHandler(uowFactory)
//	cmd, _ := NewTransferContainerCommand(sourceID, targetID, serial)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transfer failed: %w", err)
//	}
type TransferContainerCommandHandler struct {
	uowFactory ShipUoWFactory
}

// NewTransferContainerCommandHandler creates a handler for ship-to-ship transfers.
// Requires a ShipUoWFactory; only ship aggregates are modified.
func NewTransferContainerCommandHandler(uowFactory ShipUoWFactory) TransferContainerCommandHandler {
	return TransferContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transfer command.
// Loads both ships, performs the domain-level transfer, and persists both
// within one transaction. A failed transfer rolls back and leaves both
// ships unchanged.
func (h TransferContainerCommandHandler) Handle(ctx context.Context, command TransferContainerCommand) error {
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

	source, err := shipRepo.Get(ctx, command.SourceShipID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrShipNotFound
	}
	if err != nil {
		return err
	}

	target, err := shipRepo.Get(ctx, command.TargetShipID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrShipNotFound
	}
	if err != nil {
		return err
	}

	if err = source.TransferContainer(command.SerialNumber(), target); err != nil {
		return err
	}

	if err = shipRepo.Update(ctx, source); err != nil {
		return err
	}

	if err = shipRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
