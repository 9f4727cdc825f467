// Package cargo models the goods carried by a quote or shipment.
//
// Item is the central value object: a category, a quantity, physical
// dimensions and weight with explicit units, a declared monetary value, and
// handling flags (fragile, hazardous, temperature-controlled, insurance
// required). Aggregate totals — weight in kilograms, volume in cubic meters,
// declared value — are pure functions over an item list and are never stored,
// so they cannot go stale when the list changes.
package cargo
