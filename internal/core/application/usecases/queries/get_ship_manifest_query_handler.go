package queries

import (
	"context"
	"database/sql"
	"errors"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipManifestQueryHandler retrieves a single ship's cargo manifest.
// Reads the ship row and its container rows directly, bypassing the domain
// aggregate for read performance.
type GetShipManifestQueryHandler struct {
	db *gorm.DB
}

// NewGetShipManifestQueryHandler creates a handler for manifest queries.
// Requires a GORM database connection for query execution.
func NewGetShipManifestQueryHandler(db *gorm.DB) GetShipManifestQueryHandler {
	return GetShipManifestQueryHandler{db: db}
}

// Handle executes the manifest query.
// Returns the ship's limits and its containers in loading order, or an
// object-not-found error when the ship does not exist.
func (h GetShipManifestQueryHandler) Handle(
	ctx context.Context,
	query GetShipManifestQuery,
) (GetShipManifestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipManifestQueryResponse{}, err
	}

	response, err := h.readShip(ctx, query.ShipID())
	if err != nil {
		return GetShipManifestQueryResponse{}, err
	}

	containers, err := h.readContainers(ctx, query.ShipID())
	if err != nil {
		return GetShipManifestQueryResponse{}, err
	}

	response.Containers = containers
	for _, c := range containers {
		response.TotalWeight += c.TotalWeight
	}

	return response, nil
}

func (h *GetShipManifestQueryHandler) readShip(
	ctx context.Context,
	shipID kernel.UUID,
) (GetShipManifestQueryResponse, error) {
	var response GetShipManifestQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			max_speed,
			max_container_count,
			max_total_weight
		FROM ships
		WHERE id = ?
	`, shipID.Bytes()).Row()

	err := row.Scan(
		&id,
		&response.Name,
		&response.MaxSpeed,
		&response.MaxContainerCount,
		&response.MaxTotalWeight,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return response, errs.NewObjectNotFoundError("shipId", shipID.String())
	}
	if err != nil {
		return response, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	return response, err
}

func (h *GetShipManifestQueryHandler) readContainers(
	ctx context.Context,
	shipID kernel.UUID,
) ([]ManifestContainer, error) {
	containers := make([]ManifestContainer, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			serial_number,
			kind,
			load_mass,
			tare_weight + load_mass
		FROM containers
		WHERE ship_id = ?
		ORDER BY position
	`, shipID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry ManifestContainer
		var serialNumber string
		var kind int

		err = rows.Scan(
			&serialNumber,
			&kind,
			&entry.LoadMass,
			&entry.TotalWeight,
		)
		if err != nil {
			return nil, err
		}

		serial, serialErr := kernel.SerialNumberFromString(serialNumber)
		if serialErr != nil {
			return nil, serialErr
		}
		entry.SerialNumber = serial
		entry.Kind = container.Kind(kind)
		containers = append(containers, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return containers, nil
}
