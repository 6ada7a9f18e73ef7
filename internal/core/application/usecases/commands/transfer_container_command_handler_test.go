package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/ship"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransferContainerCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	factory := newTestContainerFactory(t)
	cargo := newYardContainer(t, factory)
	source := newTestShip(t, "Source", 10, 100)
	target := newTestShip(t, "Target", 10, 100)
	require.NoError(t, source.LoadContainer(cargo))

	cmd, err := commands.NewTransferContainerCommand(source.ID(), target.ID(), cargo.SerialNumber())
	require.NoError(t, err)

	mockRepo := new(MockShipRepository)
	mockUoW := new(MockShipUoW)
	mockFactory := new(MockShipUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, source.ID()).Return(source, nil).Once()
	mockRepo.On("Get", ctx, target.ID()).Return(target, nil).Once()
	mockRepo.On("Update", ctx, source).Return(nil).Once()
	mockRepo.On("Update", ctx, target).Return(nil).Once()
	mockUoW.On("Commit", ctx).Return(nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewTransferContainerCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Zero(t, source.ContainerCount())
	assert.Equal(t, 1, target.ContainerCount())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestTransferContainerCommandHandler_Handle_SourceShipNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	factory := newTestContainerFactory(t)
	cargo := newYardContainer(t, factory)
	source := newTestShip(t, "Source", 10, 100)
	target := newTestShip(t, "Target", 10, 100)
	require.NoError(t, source.LoadContainer(cargo))

	cmd, err := commands.NewTransferContainerCommand(source.ID(), target.ID(), cargo.SerialNumber())
	require.NoError(t, err)

	mockRepo := new(MockShipRepository)
	mockUoW := new(MockShipUoW)
	mockFactory := new(MockShipUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, source.ID()).
		Return(nil, errs.NewObjectNotFoundError("shipId", source.ID())).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewTransferContainerCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrShipNotFound)
	assert.Equal(t, 1, source.ContainerCount())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestTransferContainerCommandHandler_Handle_TargetCannotTakeContainer(t *testing.T) {
	// Arrange
	ctx := t.Context()
	factory := newTestContainerFactory(t)
	cargo := newYardContainer(t, factory)
	source := newTestShip(t, "Source", 10, 100)
	// 1 tonne limit cannot take a 3.5 tonne container.
	target := newTestShip(t, "Tiny", 10, 1)
	require.NoError(t, source.LoadContainer(cargo))

	cmd, err := commands.NewTransferContainerCommand(source.ID(), target.ID(), cargo.SerialNumber())
	require.NoError(t, err)

	mockRepo := new(MockShipRepository)
	mockUoW := new(MockShipUoW)
	mockFactory := new(MockShipUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("ShipRepository").Return(mockRepo).Once()
	mockRepo.On("Get", ctx, mock.Anything).Return(source, nil).Once()
	mockRepo.On("Get", ctx, mock.Anything).Return(target, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewTransferContainerCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	// The failed transfer leaves both ships unchanged and nothing is persisted.
	require.Error(t, err)
	assert.ErrorIs(t, err, ship.ErrWeightLimitExceeded)
	assert.Equal(t, 1, source.ContainerCount())
	assert.Zero(t, target.ContainerCount())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
