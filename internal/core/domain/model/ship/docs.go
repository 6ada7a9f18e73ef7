// Package ship contains the Ship aggregate root of the freight domain.
//
// A Ship carries a bounded collection of cargo containers. Two invariants
// constrain the collection at all times:
//
//   - the number of containers on board never exceeds the ship's maximum
//     container count
//   - the combined total weight (tare plus load) of all containers never
//     exceeds the ship's maximum total weight
//
// The maximum total weight is specified in tonnes while container weights
// are tracked in kilograms; the aggregate performs the conversion itself.
// Loading a container at exactly the weight limit is allowed.
//
// All mutating operations (LoadContainer, UnloadContainer, ReplaceContainer,
// TransferContainer) check the invariants before touching state, so a failed
// operation leaves the ship unchanged. Containers on board keep their loading
// order, and each container is addressed by its unique serial number.
package ship
