// Package kernel contains shared value objects for the freight domain.
//
// The package provides:
//   - UUID: identity for aggregates such as ships
//   - SerialNumber: identity for cargo containers (KON-<TypeCode>-<sequence>)
//   - SerialSequence: an injectable monotonic generator for serial numbers
//
// All value objects are immutable, validate themselves on construction, and
// expose a Validate method that rejects zero values, following the
// constructor-guard discipline used across the domain model.
package kernel
