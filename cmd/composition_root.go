package cmd

import (
	"context"
	"log/slog"

	"freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/containerrepo"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB           *gorm.DB
	containerFactory *container.Factory
	uowFactory       postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	// The serial sequence continues from the highest serial ever issued,
	// so restarts never hand out duplicates.
	seedRepo := containerrepo.NewGormContainerRepository(gormDB, nil)
	lastSequence, err := seedRepo.GetLastSequence(context.Background())
	if err != nil {
		return CompositionRoot{}, err
	}

	containerFactory, err := container.NewFactory(
		kernel.NewSerialSequenceFrom(lastSequence),
		container.NewLogNotifier(logger),
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:           gormDB,
		containerFactory: containerFactory,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB, containerFactory),
	}, nil
}

func (c *CompositionRoot) CreateCommissionShipCommandHandler() commands.CommissionShipCommandHandler {
	var f commands.ShipUoWFactory = FuncShipUoWFactory(func() commands.ShipUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCommissionShipCommandHandler(f)
}

func (c *CompositionRoot) CreateCommissionContainerCommandHandler() (commands.CommissionContainerCommandHandler, error) {
	var f commands.ContainerUoWFactory = FuncContainerUoWFactory(func() commands.ContainerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCommissionContainerCommandHandler(f, c.containerFactory)
}

func (c *CompositionRoot) CreateUnloadContainerCommandHandler() commands.UnloadContainerCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnloadContainerCommandHandler(f)
}

func (c *CompositionRoot) CreateTransferContainerCommandHandler() commands.TransferContainerCommandHandler {
	var f commands.ShipUoWFactory = FuncShipUoWFactory(func() commands.ShipUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransferContainerCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignContainersCommandHandler() commands.AssignContainersCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignContainersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllShipsQueryHandler() queries.GetAllShipsQueryHandler {
	return queries.NewGetAllShipsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipManifestQueryHandler() queries.GetShipManifestQueryHandler {
	return queries.NewGetShipManifestQueryHandler(c.gormDB)
}

type FuncShipUoWFactory func() commands.ShipUoW

func (f FuncShipUoWFactory) Create() commands.ShipUoW {
	return f()
}

type FuncContainerUoWFactory func() commands.ContainerUoW

func (f FuncContainerUoWFactory) Create() commands.ContainerUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}
