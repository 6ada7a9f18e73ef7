package queries

import (
	"errors"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetShipManifestQueryIsNotConstructed = errors.New(
	"GetShipManifestQuery must be created via NewGetShipManifestQuery constructor",
)

// GetShipManifestQuery retrieves the cargo manifest of a single ship:
// the ship's limits plus every container on board in loading order.
//
// Example:
//
//	query, err := NewGetShipManifestQuery(shipID)
//	if err != nil {
//	    return err
//	}
//
//	manifest, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve manifest: %w", err)
//	}
//
//	for _, c := range manifest.Containers {
//	    fmt.Printf("%s: %.2f kg\n", c.SerialNumber, c.TotalWeight)
//	}
type GetShipManifestQuery struct { //nolint:recvcheck //using for validation
	shipID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipManifestQuery creates a query for a single ship's manifest.
// Validates that the ship ID is properly constructed.
func NewGetShipManifestQuery(shipID kernel.UUID) (GetShipManifestQuery, error) {
	query := GetShipManifestQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setShipID(shipID); err != nil {
		return GetShipManifestQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipManifestQueryIsNotConstructed if validation fails.
func (q GetShipManifestQuery) Validate() error {
	return q.guard.Validate(ErrGetShipManifestQueryIsNotConstructed)
}

// ShipID returns the ship whose manifest is requested.
func (q GetShipManifestQuery) ShipID() kernel.UUID {
	return q.shipID
}

func (q *GetShipManifestQuery) setShipID(shipID kernel.UUID) error {
	if err := shipID.Validate(); err != nil {
		return err
	}

	q.shipID = shipID
	return nil
}

// GetShipManifestQueryResponse is the read model for a ship's manifest.
// TotalWeight is in kilograms; MaxTotalWeight is in tonnes.
type GetShipManifestQueryResponse struct {
	ID                kernel.UUID
	Name              string
	MaxSpeed          int
	MaxContainerCount int
	MaxTotalWeight    float64
	TotalWeight       float64
	Containers        []ManifestContainer
}

// ManifestContainer describes one container on the manifest.
// TotalWeight is the tare weight plus the current load mass, in kilograms.
type ManifestContainer struct {
	SerialNumber kernel.SerialNumber
	Kind         container.Kind
	LoadMass     float64
	TotalWeight  float64
}
