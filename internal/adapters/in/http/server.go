package http

import (
	"errors"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ship"
	"freight/internal/generated/servers"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	commissionShipHandler      commands.CommissionShipCommandHandler
	commissionContainerHandler commands.CommissionContainerCommandHandler
	unloadContainerHandler     commands.UnloadContainerCommandHandler
	transferContainerHandler   commands.TransferContainerCommandHandler

	// Query handlers
	getAllShipsHandler     queries.GetAllShipsQueryHandler
	getShipManifestHandler queries.GetShipManifestQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	commissionShipHandler commands.CommissionShipCommandHandler,
	commissionContainerHandler commands.CommissionContainerCommandHandler,
	unloadContainerHandler commands.UnloadContainerCommandHandler,
	transferContainerHandler commands.TransferContainerCommandHandler,
	getAllShipsHandler queries.GetAllShipsQueryHandler,
	getShipManifestHandler queries.GetShipManifestQueryHandler,
) *Server {
	return &Server{
		commissionShipHandler:      commissionShipHandler,
		commissionContainerHandler: commissionContainerHandler,
		unloadContainerHandler:     unloadContainerHandler,
		transferContainerHandler:   transferContainerHandler,
		getAllShipsHandler:         getAllShipsHandler,
		getShipManifestHandler:     getShipManifestHandler,
	}
}

// GetShips handles GET /api/v1/ships - retrieves the fleet.
func (s *Server) GetShips(ctx echo.Context) error {
	query := queries.NewGetAllShipsQuery()

	ships, err := s.getAllShipsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve ships",
		})
	}

	response := make([]servers.Ship, len(ships))
	for i, sh := range ships {
		response[i] = servers.Ship{
			Id:                sh.ID.Bytes(),
			Name:              sh.Name,
			MaxSpeed:          sh.MaxSpeed,
			MaxContainerCount: sh.MaxContainerCount,
			MaxTotalWeight:    float32(sh.MaxTotalWeight),
			ContainerCount:    sh.ContainerCount,
			TotalWeight:       float32(sh.TotalWeight),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateShip handles POST /api/v1/ships - commissions a new ship.
func (s *Server) CreateShip(ctx echo.Context) error {
	var newShip servers.NewShip
	if err := ctx.Bind(&newShip); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCommissionShipCommand(
		newShip.Name,
		newShip.MaxSpeed,
		newShip.MaxContainerCount,
		float64(newShip.MaxTotalWeight),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid ship data: " + err.Error(),
		})
	}

	if handleErr := s.commissionShipHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Failed to commission ship",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetShipManifest handles GET /api/v1/ships/{shipId}/manifest - retrieves one ship's cargo.
func (s *Server) GetShipManifest(ctx echo.Context, shipID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(shipID[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid ship identifier",
		})
	}

	query, err := queries.NewGetShipManifestQuery(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid ship identifier",
		})
	}

	manifest, err := s.getShipManifestHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFoundErr *errs.ObjectNotFoundError
		if errors.As(err, &notFoundErr) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Ship not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve manifest",
		})
	}

	containers := make([]servers.ManifestContainer, len(manifest.Containers))
	for i, c := range manifest.Containers {
		containers[i] = servers.ManifestContainer{
			SerialNumber: c.SerialNumber.String(),
			Kind:         servers.ContainerKind(c.Kind.String()),
			LoadMass:     float32(c.LoadMass),
			TotalWeight:  float32(c.TotalWeight),
		}
	}

	return ctx.JSON(http.StatusOK, servers.ShipManifest{
		Id:                manifest.ID.Bytes(),
		Name:              manifest.Name,
		MaxSpeed:          manifest.MaxSpeed,
		MaxContainerCount: manifest.MaxContainerCount,
		MaxTotalWeight:    float32(manifest.MaxTotalWeight),
		TotalWeight:       float32(manifest.TotalWeight),
		Containers:        containers,
	})
}

// CreateContainer handles POST /api/v1/containers - commissions a container into the yard.
func (s *Server) CreateContainer(ctx echo.Context) error {
	var newContainer servers.NewContainer
	if err := ctx.Bind(&newContainer); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	hazardous := false
	if newContainer.Hazardous != nil {
		hazardous = *newContainer.Hazardous
	}
	pressure := 0.0
	if newContainer.Pressure != nil {
		pressure = float64(*newContainer.Pressure)
	}
	product := container.UnknownProduct
	if newContainer.Product != nil {
		product = toDomainProduct(*newContainer.Product)
	}
	temperature := 0.0
	if newContainer.Temperature != nil {
		temperature = float64(*newContainer.Temperature)
	}

	cmd, err := commands.NewCommissionContainerCommand(
		toDomainKind(newContainer.Kind),
		float64(newContainer.Height),
		float64(newContainer.Depth),
		float64(newContainer.MaxPayload),
		float64(newContainer.TareWeight),
		hazardous,
		pressure,
		product,
		temperature,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid container data: " + err.Error(),
		})
	}

	if handleErr := s.commissionContainerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Failed to commission container: " + handleErr.Error(),
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// UnloadContainer handles POST /api/v1/ships/{shipId}/unload - moves a container to the yard.
func (s *Server) UnloadContainer(ctx echo.Context, shipID openapi_types.UUID) error {
	var request servers.UnloadRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := kernel.UUIDFromBytes(shipID[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid ship identifier",
		})
	}

	serialNumber, err := kernel.SerialNumberFromString(request.SerialNumber)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid serial number: " + err.Error(),
		})
	}

	cmd, err := commands.NewUnloadContainerCommand(id, serialNumber)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid unload request: " + err.Error(),
		})
	}

	if handleErr := s.unloadContainerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeShipOperationError(ctx, handleErr, "Failed to unload container")
	}

	return ctx.NoContent(http.StatusOK)
}

// TransferContainer handles POST /api/v1/transfers - moves a container between ships.
func (s *Server) TransferContainer(ctx echo.Context) error {
	var request servers.TransferRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	sourceID, err := kernel.UUIDFromBytes(request.SourceShipId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid source ship identifier",
		})
	}

	targetID, err := kernel.UUIDFromBytes(request.TargetShipId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid target ship identifier",
		})
	}

	serialNumber, err := kernel.SerialNumberFromString(request.SerialNumber)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid serial number: " + err.Error(),
		})
	}

	cmd, err := commands.NewTransferContainerCommand(sourceID, targetID, serialNumber)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid transfer request: " + err.Error(),
		})
	}

	if handleErr := s.transferContainerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeShipOperationError(ctx, handleErr, "Failed to transfer container")
	}

	return ctx.NoContent(http.StatusOK)
}

// writeShipOperationError maps ship operation failures onto HTTP statuses:
// missing ships and containers are 404, violated loading constraints are 409.
func (s *Server) writeShipOperationError(ctx echo.Context, err error, message string) error {
	var notFoundErr *errs.ObjectNotFoundError
	switch {
	case errors.Is(err, commands.ErrShipNotFound), errors.As(err, &notFoundErr):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: message + ": " + err.Error(),
		})
	case errors.Is(err, ship.ErrShipIsFull),
		errors.Is(err, ship.ErrWeightLimitExceeded),
		errors.Is(err, ship.ErrDuplicateSerialNumber):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: message + ": " + err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}

// toDomainKind maps the API container kind onto the domain kind.
func toDomainKind(kind servers.ContainerKind) container.Kind {
	switch kind {
	case servers.Liquid:
		return container.Liquid
	case servers.Gas:
		return container.Gas
	case servers.Refrigerated:
		return container.Refrigerated
	default:
		return container.UnknownKind
	}
}

// toDomainProduct maps the API product kind onto the domain product.
func toDomainProduct(product servers.ProductKind) container.Product {
	switch product {
	case servers.Fruit:
		return container.Fruit
	case servers.Meat:
		return container.Meat
	case servers.Dairy:
		return container.Dairy
	default:
		return container.UnknownProduct
	}
}
