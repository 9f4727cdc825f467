// Package shipment implements the Shipment aggregate: a booked movement of
// goods advancing through a delivery lifecycle.
//
// A shipment carries a VIP-prefixed tracking code assigned once at creation,
// an item list, a pricing breakdown, a timeline of pickup/delivery timestamps
// and append-only milestones, a tracking block of geolocation breadcrumbs,
// and a heuristic risk insight.
//
// The status lifecycle is linear with absorbing branches:
//
//	quote_requested → quote_provided → booked → pickup_scheduled →
//	picked_up → in_transit → customs_clearance → out_for_delivery → delivered
//
// exception, cancelled, and returned are reachable from any non-terminal
// state. delivered, cancelled, and returned are terminal. Transitions
// validate only that the shipment is not already terminal — direct jumps are
// deliberately permitted, mirroring how operators correct statuses in
// practice; strict ordering is a policy concern left to callers.
package shipment
