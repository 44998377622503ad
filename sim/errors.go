package sim

import "errors"

// Failure kinds for inventory mutation. ErrLocationNotFound is recoverable
// at the simulator level (the run stops gracefully and keeps the results
// gathered so far); the others indicate a broken invariant and abort the
// run.
var (
	// ErrLocationNotFound reports a replenishment targeting an unknown location.
	ErrLocationNotFound = errors.New("location not found")
	// ErrProductNotFound reports a replenishment for an unknown product.
	ErrProductNotFound = errors.New("product not found")
	// ErrConflictingAssignment reports a replenishment into a location that
	// still holds stock of a different product.
	ErrConflictingAssignment = errors.New("different product assigned at location")
	// ErrCapacityExceeded reports a replenishment that would push a location
	// past the product's per-location maximum.
	ErrCapacityExceeded = errors.New("location capacity exceeded")
)
