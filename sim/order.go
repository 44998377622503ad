package sim

import "fmt"

// OrderLine is one product requirement within a pick order. Immutable.
type OrderLine struct {
	OrderID     string
	ProductCode string
	Quantity    int
}

func (ol *OrderLine) String() string {
	return fmt.Sprintf("%s: %dpcs", ol.ProductCode, ol.Quantity)
}

// Order is a pick order that should be fulfilled from the warehouse. An
// order is picked in full or not at all, and is removed from the open set
// once picked.
type Order struct {
	// ID uniquely identifies the order.
	ID string
	// Lines in their stored order. Line order is the iteration order for
	// picking and for the policy's unmet-line scan. Callers MUST NOT
	// modify the slice.
	Lines []*OrderLine

	// seq is the insertion index assigned by the DemandTracker, used as
	// the deterministic tie-break when policies sort the open-order list.
	seq int
}

// LineCount returns the number of lines in this order.
func (o *Order) LineCount() int {
	return len(o.Lines)
}

// TotalUnits returns the total quantity summed over all lines.
func (o *Order) TotalUnits() int {
	units := 0
	for _, line := range o.Lines {
		units += line.Quantity
	}
	return units
}

// ContainsProduct reports whether any line of this order references the
// given product.
func (o *Order) ContainsProduct(productCode string) bool {
	for _, line := range o.Lines {
		if line.ProductCode == productCode {
			return true
		}
	}
	return false
}

// UnmetLineCount returns how many lines require more than the given
// per-product on-hand quantities. Products missing from the map count as
// zero on hand.
func (o *Order) UnmetLineCount(onHand map[string]int) int {
	unmet := 0
	for _, line := range o.Lines {
		if line.Quantity > onHand[line.ProductCode] {
			unmet++
		}
	}
	return unmet
}

func (o *Order) String() string {
	return fmt.Sprintf("Order %s (%d lines)", o.ID, len(o.Lines))
}
