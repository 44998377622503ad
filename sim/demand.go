package sim

import "fmt"

// DemandTracker owns the set of currently open pick orders together with a
// per-product cache of outstanding demand. Orders are removed exactly once,
// when the picking engine has satisfied them in full.
type DemandTracker struct {
	byID    map[string]*Order
	ordered []*Order     // open orders in insertion order
	lines   []*OrderLine // flat list of all open lines
	// needed caches, per product code, the total quantity over every line
	// of every open order. Kept in sync incrementally by RemoveOrder.
	needed map[string]int
}

// NewDemandTracker builds a tracker from the loaded orders, preserving
// their load order as the insertion order. The insertion sequence is also
// stamped onto each order for deterministic tie-breaking.
func NewDemandTracker(orders []*Order) *DemandTracker {
	dt := &DemandTracker{
		byID:   make(map[string]*Order, len(orders)),
		needed: make(map[string]int),
	}
	for i, o := range orders {
		o.seq = i
		dt.byID[o.ID] = o
		dt.ordered = append(dt.ordered, o)
		for _, line := range o.Lines {
			dt.lines = append(dt.lines, line)
			dt.needed[line.ProductCode] += line.Quantity
		}
	}
	return dt
}

// OpenOrderCount returns the number of currently open orders.
func (dt *DemandTracker) OpenOrderCount() int {
	return len(dt.ordered)
}

// OpenLineCount returns the number of lines across all open orders.
func (dt *DemandTracker) OpenLineCount() int {
	return len(dt.lines)
}

// NeededQuantity returns the cached total outstanding quantity for the
// given product over all open orders; 0 for unknown products.
func (dt *DemandTracker) NeededQuantity(productCode string) int {
	return dt.needed[productCode]
}

// FindOrder returns the open order with the given id, or nil.
func (dt *DemandTracker) FindOrder(orderID string) *Order {
	return dt.byID[orderID]
}

// Orders returns the open orders in insertion order. The returned slice is
// the tracker's internal storage -- callers may iterate but MUST NOT modify
// it; only RemoveOrder shrinks it.
func (dt *DemandTracker) Orders() []*Order {
	return dt.ordered
}

// Lines returns all open order lines. Read-only, same rules as Orders.
func (dt *DemandTracker) Lines() []*OrderLine {
	return dt.lines
}

// RemoveOrder removes an order from the open set and subtracts its line
// quantities from the demand cache. It must be called exactly once per
// order, and only for a current member of the open set; anything else is a
// caller bug and panics.
func (dt *DemandTracker) RemoveOrder(o *Order) {
	if o == nil {
		panic("RemoveOrder: order must not be nil")
	}
	if member, ok := dt.byID[o.ID]; !ok || member != o {
		panic(fmt.Sprintf("RemoveOrder: order %q is not in the open set", o.ID))
	}
	delete(dt.byID, o.ID)

	kept := dt.ordered[:0]
	for _, open := range dt.ordered {
		if open != o {
			kept = append(kept, open)
		}
	}
	dt.ordered = kept

	keptLines := dt.lines[:0]
	for _, line := range dt.lines {
		if line.OrderID != o.ID {
			keptLines = append(keptLines, line)
		}
	}
	dt.lines = keptLines

	for _, line := range o.Lines {
		dt.needed[line.ProductCode] -= line.Quantity
	}
}
