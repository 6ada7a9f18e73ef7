package services

import (
	"errors"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/ship"
)

// ErrShipNotFound is returned when no suitable ship is available for a container.
// This occurs when either no ships are provided or none of the provided ships
// can take the container without breaking its count or weight limits.
var ErrShipNotFound = errors.New("ship not found")

// CargoPlanner is a domain service responsible for finding and loading the
// optimal ship for a cargo container based on remaining weight capacity.
//
// Key responsibilities:
//   - Validating containers before planning
//   - Selecting a ship using weight-headroom optimization
//   - Ensuring atomic container assignment workflow
//
// Business rules:
//   - Containers must be valid before planning
//   - Ships must have a free slot and enough weight headroom
//   - Selection prioritizes maximum remaining weight capacity, so cargo spreads
//     across the fleet instead of piling onto one ship
//   - Container loading is atomic
//
// Example usage:
//
//	planner := NewCargoPlanner()
//	ships := []*ship.Ship{ship1, ship2, ship3}
//
//	loadedShip, err := planner.Plan(cargo, ships)
//	if errors.Is(err, ErrShipNotFound) {
//	    // No ship can take this container
//	    return
//	}
//	if err != nil {
//	    // Handle planning failure
//	    return
//	}
//	// Container successfully loaded onto loadedShip
type CargoPlanner struct{}

// NewCargoPlanner creates a new CargoPlanner instance.
//
// Returns:
//   - CargoPlanner: A new instance ready for planning operations
func NewCargoPlanner() CargoPlanner {
	return CargoPlanner{}
}

// Plan finds the optimal ship for a given container and loads it.
//
// Parameters:
//   - cargo: The container to be placed (must be valid)
//   - ships: Slice of candidate ships to consider
//
// Returns:
//   - *ship.Ship: The ship the container was loaded onto
//   - error: ErrShipNotFound if no suitable ship exists, or other validation/loading errors
//
// Selection algorithm:
//   - Validates the container and each ship
//   - Skips ships that cannot take the container
//   - Selects the ship with the most remaining weight capacity
//   - Loads the container onto the selected ship atomically
func (p CargoPlanner) Plan(cargo container.Container, ships []*ship.Ship) (*ship.Ship, error) {
	if cargo == nil {
		return nil, ErrShipNotFound
	}
	if err := cargo.Validate(); err != nil {
		return nil, err
	}

	bestShip, err := p.findBestShip(cargo, ships)
	if err != nil {
		return nil, err
	}

	if err = bestShip.LoadContainer(cargo); err != nil {
		return nil, err
	}

	return bestShip, nil
}

// findBestShip searches through the provided ships to find the optimal one
// for the given container.
//
// Selection criteria:
//   - Validates ship construction
//   - Checks count, weight, and serial uniqueness constraints
//   - Optimizes for maximum remaining weight capacity
//   - Returns the first ship in case of ties
func (p CargoPlanner) findBestShip(cargo container.Container, ships []*ship.Ship) (*ship.Ship, error) {
	var (
		bestShip     *ship.Ship
		bestHeadroom = -1.0
	)

	for _, s := range ships {
		if err := s.Validate(); err != nil {
			return nil, err
		}

		if !s.CanLoad(cargo) {
			continue
		}

		if headroom := s.RemainingWeight(); headroom > bestHeadroom {
			bestHeadroom = headroom
			bestShip = s
		}
	}

	if bestShip == nil {
		return nil, ErrShipNotFound
	}

	return bestShip, nil
}
