package ship

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// kilogramsPerTonne converts the ship's weight limit (tonnes) into the
// unit containers are weighed in (kilograms).
const kilogramsPerTonne = 1000.0

// Domain errors for ship operations.
var (
	// ErrNameIsRequired is returned when attempting to create a ship without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMaxSpeedIsRequired is returned when attempting to create a ship with invalid maximum speed (≤0).
	ErrMaxSpeedIsRequired = errs.NewValueIsRequiredError("maxSpeed")
	// ErrMaxContainerCountIsRequired is returned when attempting to create a ship with invalid container capacity (≤0).
	ErrMaxContainerCountIsRequired = errs.NewValueIsRequiredError("maxContainerCount")
	// ErrMaxTotalWeightIsRequired is returned when attempting to create a ship with invalid weight limit (≤0).
	ErrMaxTotalWeightIsRequired = errs.NewValueIsRequiredError("maxTotalWeight")
	// ErrShipIsNotConstructed is returned when using an improperly initialized Ship.
	ErrShipIsNotConstructed = errors.New("Ship must be created via NewShip constructor")
	// ErrShipIsFull is returned when loading a container onto a ship that already
	// carries its maximum number of containers.
	ErrShipIsFull = errors.New("ship is already carrying its maximum number of containers")
	// ErrWeightLimitExceeded is returned when loading a container would push the
	// combined total weight of the cargo above the ship's maximum total weight.
	ErrWeightLimitExceeded = errors.New("loading the container would exceed the ship's maximum total weight")
	// ErrContainerNotFound is returned when a container with the requested serial
	// number is not on board.
	ErrContainerNotFound = errors.New("container not found on board")
	// ErrDuplicateSerialNumber is returned when loading a container whose serial
	// number matches one already on board.
	ErrDuplicateSerialNumber = errors.New("a container with this serial number is already on board")
	// ErrTargetShipIsRequired is returned when transferring a container to a nil ship.
	ErrTargetShipIsRequired = errs.NewValueIsRequiredError("target ship")
)

// Ship represents a container ship in the freight system.
// It is an aggregate root that manages ship identity and the collection of
// cargo containers on board.
//
// Key responsibilities:
//   - Managing ship identity (ID, name, maximum speed)
//   - Enforcing the container count limit on every loading operation
//   - Enforcing the total weight limit on every loading operation
//   - Addressing containers on board by serial number
//   - Moving containers between ships atomically
//
// Business rules:
//   - Ship must have a valid UUID, non-empty name, and positive speed and limits
//   - The number of containers on board never exceeds maxContainerCount
//   - The combined total weight never exceeds maxTotalWeight tonnes
//   - Loading at exactly the weight limit succeeds
//   - Serial numbers on board are unique
//   - Containers keep the order in which they were loaded
//
// Example usage:
//
//	ship, err := NewShip(kernel.NewUUID(), "Titanic", 21, 10, 120)
//	if err != nil {
//	    // Handle construction error
//	}
//	// Ship is ready to load containers
type Ship struct {
	// id uniquely identifies the ship
	id kernel.UUID
	// name is the human-readable name of the ship
	name string
	// maxSpeed is the ship's maximum speed in knots
	maxSpeed int
	// maxContainerCount limits the number of containers on board
	maxContainerCount int
	// maxTotalWeight limits the combined cargo weight, in tonnes
	maxTotalWeight float64
	// containers holds the cargo in loading order
	containers []container.Container
	// index maps a serial number to the container's position in containers
	index map[string]int
	// guard ensures the ship was properly constructed
	guard guard.ConstructorGuard
}

// NewShip creates a new empty Ship with the specified parameters.
//
// Parameters:
//   - id: Unique identifier for the ship (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - maxSpeed: Maximum speed in knots (must be positive)
//   - maxContainerCount: Maximum number of containers on board (must be positive)
//   - maxTotalWeight: Maximum combined cargo weight in tonnes (must be positive)
//
// Returns:
//   - *Ship: A fully initialized ship with no cargo
//   - error: Validation error if any parameter is invalid (aggregated errors for multiple issues)
//
// Example:
//
//	ship, err := NewShip(kernel.NewUUID(), "Evergreen", 18, 24, 300)
//	if err != nil {
//	    log.Fatal("Failed to create ship:", err)
//	}
//	fmt.Println(ship.Info())
func NewShip(
	id kernel.UUID,
	name string,
	maxSpeed int,
	maxContainerCount int,
	maxTotalWeight float64,
) (*Ship, error) {
	ship := &Ship{
		guard: guard.NewConstructorGuard(),
		index: make(map[string]int),
	}

	if err := errors.Join(
		ship.setID(id),
		ship.setName(name),
		ship.setMaxSpeed(maxSpeed),
		ship.setMaxContainerCount(maxContainerCount),
		ship.setMaxTotalWeight(maxTotalWeight),
	); err != nil {
		return nil, err
	}

	return ship, nil
}

// RestoreShip reconstructs a Ship aggregate from persistent storage.
// Unlike NewShip which creates empty ships, this constructor restores a ship
// together with the containers it was carrying at the time of persistence.
//
// The restored cargo passes through the same loading checks as live
// operations, so a persisted state that violates the count or weight
// invariants fails restoration instead of producing an invalid aggregate.
//
// Parameters:
//   - id: Unique identifier for the ship
//   - name: Human-readable ship name
//   - maxSpeed: Maximum speed in knots
//   - maxContainerCount: Maximum number of containers on board
//   - maxTotalWeight: Maximum combined cargo weight in tonnes
//   - containers: Cargo on board, in loading order
//
// Returns:
//   - *Ship: Restored ship aggregate
//   - error: Validation error if any parameter or container is invalid
func RestoreShip(
	id kernel.UUID,
	name string,
	maxSpeed int,
	maxContainerCount int,
	maxTotalWeight float64,
	containers []container.Container,
) (*Ship, error) {
	ship, err := NewShip(id, name, maxSpeed, maxContainerCount, maxTotalWeight)
	if err != nil {
		return nil, err
	}

	if err := ship.LoadContainers(containers); err != nil {
		return nil, err
	}

	return ship, nil
}

// IsEqual compares two ships for equality based on their unique identifiers.
// Two ships are considered equal if they have the same ID, regardless of
// other attributes.
func (s *Ship) IsEqual(other *Ship) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}

// Validate checks if the Ship was properly constructed using the NewShip constructor.
// The zero value of Ship is invalid and will fail this validation.
//
// Returns:
//   - error: ErrShipIsNotConstructed if improperly initialized, nil if valid
func (s *Ship) Validate() error {
	if s == nil {
		return ErrShipIsNotConstructed
	}
	return s.guard.Validate(ErrShipIsNotConstructed)
}

// ID returns the unique identifier of the ship.
func (s *Ship) ID() kernel.UUID {
	return s.id
}

// Name returns the human-readable name of the ship.
func (s *Ship) Name() string {
	return s.name
}

// MaxSpeed returns the maximum speed of the ship in knots.
func (s *Ship) MaxSpeed() int {
	return s.maxSpeed
}

// MaxContainerCount returns the maximum number of containers the ship can carry.
func (s *Ship) MaxContainerCount() int {
	return s.maxContainerCount
}

// MaxTotalWeight returns the ship's cargo weight limit in tonnes.
func (s *Ship) MaxTotalWeight() float64 {
	return s.maxTotalWeight
}

// Containers returns the cargo on board in loading order.
// The returned slice is a copy to prevent external modification of the
// collection itself; the containers are shared references.
func (s *Ship) Containers() []container.Container {
	out := make([]container.Container, len(s.containers))
	copy(out, s.containers)
	return out
}

// ContainerCount returns the number of containers currently on board.
func (s *Ship) ContainerCount() int {
	return len(s.containers)
}

// TotalWeight returns the combined total weight of all containers on board,
// in kilograms.
func (s *Ship) TotalWeight() float64 {
	var total float64
	for _, c := range s.containers {
		total += c.TotalWeight()
	}
	return total
}

// RemainingWeight returns how many kilograms of cargo the ship can still
// take before reaching its weight limit.
func (s *Ship) RemainingWeight() float64 {
	return s.maxTotalWeight*kilogramsPerTonne - s.TotalWeight()
}

// FindContainer returns the container with the given serial number,
// or ErrContainerNotFound if it is not on board.
func (s *Ship) FindContainer(serialNumber kernel.SerialNumber) (container.Container, error) {
	idx, ok := s.index[serialNumber.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrContainerNotFound, errs.NewObjectNotFoundError("serialNumber", serialNumber))
	}
	return s.containers[idx], nil
}

// CanLoad reports whether the given container can be loaded onto the ship
// without violating the count, weight, or serial uniqueness rules.
// It never mutates the ship.
func (s *Ship) CanLoad(c container.Container) bool {
	return s.canAccept(c) == nil
}

// LoadContainer loads a container onto the ship.
//
// The count limit is checked before the weight limit, so an overfull ship
// reports ErrShipIsFull even when the container would also break the weight
// limit. Loading a container that lands exactly on the weight limit succeeds.
//
// Returns:
//   - error: container validation error, ErrDuplicateSerialNumber,
//     ErrShipIsFull, or ErrWeightLimitExceeded; nil on success
//
// State changes:
//   - The container is appended to the cargo in loading order
//
// Example:
//
//	if err := ship.LoadContainer(cargo); err != nil {
//	    if errors.Is(err, ship.ErrShipIsFull) {
//	        // find another ship
//	    }
//	}
func (s *Ship) LoadContainer(c container.Container) error {
	if err := s.canAccept(c); err != nil {
		return err
	}

	s.index[c.SerialNumber().String()] = len(s.containers)
	s.containers = append(s.containers, c)
	return nil
}

// LoadContainers loads a batch of containers in order.
// Loading stops at the first failure; containers loaded before the failure
// remain on board.
func (s *Ship) LoadContainers(containers []container.Container) error {
	for _, c := range containers {
		if err := s.LoadContainer(c); err != nil {
			return err
		}
	}
	return nil
}

// UnloadContainer removes the container with the given serial number from
// the ship and returns it. The remaining containers keep their relative order.
//
// Returns:
//   - container.Container: the released container
//   - error: ErrContainerNotFound (wrapped) if the serial number is not on board
func (s *Ship) UnloadContainer(serialNumber kernel.SerialNumber) (container.Container, error) {
	idx, ok := s.index[serialNumber.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrContainerNotFound, errs.NewObjectNotFoundError("serialNumber", serialNumber))
	}

	released := s.containers[idx]
	s.removeAt(idx)
	return released, nil
}

// ReplaceContainer swaps the container with the given serial number for a new
// one, keeping its position in the cargo. The replacement is validated as if
// it were being loaded: the new container's serial number must not collide
// with any other container on board, and the total weight with the old
// container excluded and the new one included must stay within the limit.
//
// Returns:
//   - container.Container: the displaced container
//   - error: ErrContainerNotFound, ErrDuplicateSerialNumber, or
//     ErrWeightLimitExceeded; nil on success
func (s *Ship) ReplaceContainer(
	serialNumber kernel.SerialNumber,
	replacement container.Container,
) (container.Container, error) {
	if replacement == nil {
		return nil, errs.NewValueIsRequiredError("replacement")
	}
	if err := replacement.Validate(); err != nil {
		return nil, err
	}

	idx, ok := s.index[serialNumber.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrContainerNotFound, errs.NewObjectNotFoundError("serialNumber", serialNumber))
	}

	newSerial := replacement.SerialNumber().String()
	if existing, taken := s.index[newSerial]; taken && existing != idx {
		return nil, ErrDuplicateSerialNumber
	}

	displaced := s.containers[idx]
	projected := s.TotalWeight() - displaced.TotalWeight() + replacement.TotalWeight()
	if projected > s.maxTotalWeight*kilogramsPerTonne {
		return nil, ErrWeightLimitExceeded
	}

	s.containers[idx] = replacement
	delete(s.index, serialNumber.String())
	s.index[newSerial] = idx
	return displaced, nil
}

// TransferContainer moves the container with the given serial number from
// this ship onto the target ship.
//
// The transfer is atomic: the target's count, weight, and serial uniqueness
// rules are checked before the container leaves the source, so a failed
// transfer leaves both ships unchanged.
//
// Returns:
//   - error: ErrTargetShipIsRequired, ErrContainerNotFound, or any loading
//     error from the target ship; nil on success
func (s *Ship) TransferContainer(serialNumber kernel.SerialNumber, target *Ship) error {
	if target == nil {
		return ErrTargetShipIsRequired
	}
	if err := target.Validate(); err != nil {
		return err
	}

	idx, ok := s.index[serialNumber.String()]
	if !ok {
		return fmt.Errorf("%w: %w", ErrContainerNotFound, errs.NewObjectNotFoundError("serialNumber", serialNumber))
	}

	c := s.containers[idx]
	if err := target.canAccept(c); err != nil {
		return err
	}

	s.removeAt(idx)
	return target.LoadContainer(c)
}

// Info returns a one-line summary of the ship and its cargo load.
//
// Example output:
//
//	Ship Evergreen: speed=18 knots, containers=3/24, totalWeight=42.50 t
func (s *Ship) Info() string {
	return fmt.Sprintf("Ship %s: speed=%d knots, containers=%d/%d, totalWeight=%.2f t",
		s.name, s.maxSpeed, len(s.containers), s.maxContainerCount, s.TotalWeight()/kilogramsPerTonne)
}

// ContainersInfo returns the Info line of every container on board,
// in loading order.
func (s *Ship) ContainersInfo() []string {
	out := make([]string, 0, len(s.containers))
	for _, c := range s.containers {
		out = append(out, c.Info())
	}
	return out
}

// canAccept checks whether the container can be loaded without violating
// the ship's invariants. It reports the first violated rule and never
// mutates the ship.
func (s *Ship) canAccept(c container.Container) error {
	if c == nil {
		return errs.NewValueIsRequiredError("container")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if _, ok := s.index[c.SerialNumber().String()]; ok {
		return ErrDuplicateSerialNumber
	}
	if len(s.containers) >= s.maxContainerCount {
		return ErrShipIsFull
	}
	if s.TotalWeight()+c.TotalWeight() > s.maxTotalWeight*kilogramsPerTonne {
		return ErrWeightLimitExceeded
	}
	return nil
}

// removeAt removes the container at the given position and rebuilds the
// serial number index for the containers that shifted down.
func (s *Ship) removeAt(idx int) {
	delete(s.index, s.containers[idx].SerialNumber().String())
	s.containers = append(s.containers[:idx], s.containers[idx+1:]...)
	for i := idx; i < len(s.containers); i++ {
		s.index[s.containers[i].SerialNumber().String()] = i
	}
}

// setID sets the ship's unique identifier with validation.
// This is an internal setter used during ship construction.
func (s *Ship) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

// setName sets the ship's name with validation.
// This is an internal setter used during ship construction.
func (s *Ship) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	s.name = name
	return nil
}

// setMaxSpeed sets the ship's maximum speed with validation.
// This is an internal setter used during ship construction.
func (s *Ship) setMaxSpeed(maxSpeed int) error {
	if maxSpeed <= 0 {
		return ErrMaxSpeedIsRequired
	}

	s.maxSpeed = maxSpeed
	return nil
}

// setMaxContainerCount sets the ship's container capacity with validation.
// This is an internal setter used during ship construction.
func (s *Ship) setMaxContainerCount(maxContainerCount int) error {
	if maxContainerCount <= 0 {
		return ErrMaxContainerCountIsRequired
	}

	s.maxContainerCount = maxContainerCount
	return nil
}

// setMaxTotalWeight sets the ship's cargo weight limit with validation.
// This is an internal setter used during ship construction.
func (s *Ship) setMaxTotalWeight(maxTotalWeight float64) error {
	if maxTotalWeight <= 0 {
		return ErrMaxTotalWeightIsRequired
	}

	s.maxTotalWeight = maxTotalWeight
	return nil
}
