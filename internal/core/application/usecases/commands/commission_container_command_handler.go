package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/container"
	"freight/internal/pkg/errs"
)

// ErrContainerFactoryIsRequired is returned when constructing the handler without a factory.
var ErrContainerFactoryIsRequired = errors.New("container factory is required")

// CommissionContainerCommandHandler handles the business logic for container
// commissioning. The container factory assigns the serial number; the new
// container is persisted into the yard.
//
// Example:
//
//	handler, _ := NewCommissionContainerCommandHandler(uowFactory, factory)
//	cmd, _ := NewCommissionContainerCommand(
//	    container.Liquid, 2.6, 6.0, 20_000, 4_000,
//	    true, 0, container.UnknownProduct, 0,
//	)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("container commissioning failed: %w", err)
//	}
type CommissionContainerCommandHandler struct {
	uowFactory       ContainerUoWFactory
	containerFactory *container.Factory
}

// NewCommissionContainerCommandHandler creates a handler for container commissioning.
// Requires a ContainerUoWFactory for transactional persistence and the
// container factory that issues serial numbers.
func NewCommissionContainerCommandHandler(
	uowFactory ContainerUoWFactory,
	containerFactory *container.Factory,
) (CommissionContainerCommandHandler, error) {
	if containerFactory == nil {
		return CommissionContainerCommandHandler{}, ErrContainerFactoryIsRequired
	}

	return CommissionContainerCommandHandler{
		uowFactory:       uowFactory,
		containerFactory: containerFactory,
	}, nil
}

// Handle processes the container commissioning command.
// Builds the kind-specific container through the factory and persists it
// within a transaction. Automatically rolls back on any error.
func (h *CommissionContainerCommandHandler) Handle(ctx context.Context, cmd CommissionContainerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newContainer, err := h.buildContainer(cmd)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ContainerRepository().Add(ctx, newContainer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// buildContainer dispatches to the kind-specific factory constructor.
func (h *CommissionContainerCommandHandler) buildContainer(cmd CommissionContainerCommand) (container.Container, error) {
	switch cmd.Kind() {
	case container.Liquid:
		return h.containerFactory.NewLiquidContainer(
			cmd.Height(), cmd.Depth(), cmd.MaxPayload(), cmd.TareWeight(), cmd.Hazardous(),
		)
	case container.Gas:
		return h.containerFactory.NewGasContainer(
			cmd.Height(), cmd.Depth(), cmd.MaxPayload(), cmd.TareWeight(), cmd.Pressure(),
		)
	case container.Refrigerated:
		return h.containerFactory.NewRefrigeratedContainer(
			cmd.Height(), cmd.Depth(), cmd.MaxPayload(), cmd.TareWeight(), cmd.Product(), cmd.Temperature(),
		)
	case container.UnknownKind:
	}

	return nil, errs.NewValueIsInvalidError("kind")
}
