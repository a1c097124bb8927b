// Package parcel contains the parcel delivery aggregate: the Parcel root,
// its Status state machine and Size classification. The fee and distance
// estimate are stamped at creation by the pricing calculator; lifecycle
// rules for cancellation, driver claim and status progression live on the
// aggregate.
package parcel
