package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllShipsQueryHandler retrieves fleet information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAllShipsQueryHandler(db)
//	query := NewGetAllShipsQuery()
//
//	ships, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get ships: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Fleet size: %d\n", len(ships))
type GetAllShipsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllShipsQueryHandler creates a handler for fleet retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllShipsQueryHandler(db *gorm.DB) GetAllShipsQueryHandler {
	return GetAllShipsQueryHandler{db: db}
}

// Handle executes the query to retrieve all ships with their cargo totals.
// Returns a slice of ship read models sorted by name. Container count and
// total weight are aggregated in the database rather than loading cargo rows.
func (h GetAllShipsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipsQuery,
) ([]GetAllShipsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ships := make([]GetAllShipsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			s.max_speed,
			s.max_container_count,
			s.max_total_weight,
			COUNT(c.serial_number),
			COALESCE(SUM(c.tare_weight + c.load_mass), 0)
		FROM ships s
		LEFT JOIN containers c ON c.ship_id = s.id
		GROUP BY s.id, s.name, s.max_speed, s.max_container_count, s.max_total_weight
		ORDER BY s.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var shipRow GetAllShipsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&shipRow.Name,
			&shipRow.MaxSpeed,
			&shipRow.MaxContainerCount,
			&shipRow.MaxTotalWeight,
			&shipRow.ContainerCount,
			&shipRow.TotalWeight,
		)
		if err != nil {
			return nil, err
		}

		shipID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		shipRow.ID = shipID
		ships = append(ships, shipRow)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ships, nil
}
