// Package container provides the cargo container domain model: a closed set
// of container variants with differentiated loading and validation rules.
//
// The package includes:
//   - Container: the interface over the fixed variant set {LiquidContainer,
//     GasContainer, RefrigeratedContainer}
//   - Factory: the only way to construct containers; owns the serial number
//     sequence and the hazard notifier
//   - Kind and Product: closed enumerations with validation
//
// Key business rules:
//   - Every container gets a unique serial number (KON-<TypeCode>-<sequence>)
//     assigned at construction from the factory's sequence generator
//   - Loading replaces the current load mass and is capped per variant:
//     liquid containers cap at half the max payload when hazardous, otherwise
//     at 90% of the tare weight; gas containers cap at the max payload and
//     retain a 5% residual when emptied; refrigerated containers follow the
//     default cap but validate storage temperature at construction
//   - Liquid and gas containers carry the hazard-notification capability and
//     emit a warning before rejecting an overfill
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package container
