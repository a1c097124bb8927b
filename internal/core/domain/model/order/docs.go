// Package order contains the food order aggregate: the Order root, its
// immutable Item lines, the Status state machine, and the financial Totals
// stamped at creation. All business rules for cancellation, driver claim and
// status progression live on the aggregate; persistence and transport only
// move it around.
package order
