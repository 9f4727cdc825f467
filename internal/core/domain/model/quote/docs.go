// Package quote implements the Quote aggregate: a priced offer to move goods
// between two addresses before a shipment is booked.
//
// A quote carries a QUO-prefixed business code assigned once at creation, an
// item list, a pricing breakdown, a discount list, and an expiration
// timestamp defaulting to thirty days after creation. Expiration is evaluated
// on every operation: an overdue quote is reclassified to the expired status
// and marked invalid, idempotently.
package quote
