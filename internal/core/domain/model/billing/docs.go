// Package billing models the monetary side of quotes and shipments: the
// pricing breakdown produced by the pricing engine and the discounts applied
// to it. Discounts compose in list order and are deliberately not clamped to
// the subtotal — an over-discounted, negative total surfaces to the caller as
// a data-quality signal rather than being silently corrected.
package billing
