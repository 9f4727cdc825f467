// Package kernel provides core domain primitives shared across the shipping
// domain model.
//
// The package includes:
//   - UUID: a value object wrapping surrogate entity identifiers
//   - GeoPoint: a validated geographic coordinate with great-circle distance
//   - QuoteCode / TrackingCode: human-readable unique business identifiers
//   - ServiceType: the transport mode enumeration used for rating
//   - Address: an origin or destination with optional coordinates
//
// All primitives are immutable value objects constructed through factory
// functions that enforce their invariants. The zero value of each type is
// invalid and fails validation, which keeps improperly restored data from
// leaking into the aggregates.
package kernel
