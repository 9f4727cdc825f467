// Package services provides domain services that compute derived shipment
// data across multiple domain entities. It implements business workflows that
// don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PricingEngine: charge, discount, and tax computation for quotes and shipments
//   - RiskScorer: heuristic risk assessment with derived recommendations
//   - CodeGenerator: collision-checked generation of human-readable codes
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
