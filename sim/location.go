package sim

import "fmt"

// Location is a single storage slot within a shelf. A location holds stock
// for at most one product at a time; once its quantity drains to zero it is
// unassigned and may take a different product.
type Location struct {
	// Code uniquely identifies the location.
	Code string
	// AssignedProduct is the product currently slotted here, or nil when
	// the location is free. Mutated only by Inventory.ApplyReplenishment
	// and by the picking engine.
	AssignedProduct *Product
	// QuantityOnHand is the number of pieces physically available here.
	// Invariant: 0 <= QuantityOnHand <= AssignedProduct.MaxLocationQuantity.
	QuantityOnHand int
}

func (l *Location) String() string {
	if l.AssignedProduct != nil {
		return fmt.Sprintf("[%s] holds %q, pcs: %d", l.Code, l.AssignedProduct.Code, l.QuantityOnHand)
	}
	return fmt.Sprintf("[%s] is unassigned", l.Code)
}
