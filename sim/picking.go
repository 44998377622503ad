package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// stockedLocations maps a product code to the locations currently holding
// that product, sorted ascending by quantity on hand then by location code.
// Draining near-empty slots first frees locations for reuse sooner.
type stockedLocations map[string][]*Location

// buildStockedLocations snapshots the per-product location lists for one
// picking pass. The lists are built once per tick; quantities are read live
// while picking, so stock consumed by an earlier order in the same tick is
// not double-counted.
func buildStockedLocations(inv *Inventory) stockedLocations {
	stocked := make(stockedLocations)
	for _, loc := range inv.Locations() {
		if loc.QuantityOnHand > 0 {
			code := loc.AssignedProduct.Code
			stocked[code] = append(stocked[code], loc)
		}
	}
	for _, locs := range stocked {
		sort.Slice(locs, func(i, j int) bool {
			if locs[i].QuantityOnHand != locs[j].QuantityOnHand {
				return locs[i].QuantityOnHand < locs[j].QuantityOnHand
			}
			return locs[i].Code < locs[j].Code
		})
	}
	return stocked
}

// onHand sums the live quantity across all stocked locations for a product.
func (sl stockedLocations) onHand(productCode string) int {
	sum := 0
	for _, loc := range sl[productCode] {
		sum += loc.QuantityOnHand
	}
	return sum
}

// pickable reports whether every line of the order is covered by current
// stock. A line without any stocked location, or with insufficient total
// quantity, short-circuits the rest of the order.
func pickable(o *Order, stocked stockedLocations) bool {
	for _, line := range o.Lines {
		locs, ok := stocked[line.ProductCode]
		if !ok || len(locs) == 0 {
			return false
		}
		if stocked.onHand(line.ProductCode) < line.Quantity {
			return false
		}
	}
	return true
}

// consume satisfies one line by draining its product's locations smallest
// stock first, splitting across locations when one is insufficient. A
// location drained to zero is unassigned immediately so it can take a
// different product on this or a later tick.
func consume(line *OrderLine, stocked stockedLocations) {
	needed := line.Quantity
	for _, loc := range stocked[line.ProductCode] {
		if loc.QuantityOnHand >= needed {
			loc.QuantityOnHand -= needed
			if loc.QuantityOnHand == 0 {
				loc.AssignedProduct = nil
			}
			return
		}
		needed -= loc.QuantityOnHand
		loc.QuantityOnHand = 0
		loc.AssignedProduct = nil
	}
}

// PickOrders greedily fulfills open orders from current stock, at most
// maxPicks orders per call. Orders are evaluated in their insertion order
// and satisfied atomically: a pickable order is consumed in full, any other
// order is left untouched. Picked orders are removed from the tracker
// before returning; the returned slice is exactly the set removed (possibly
// empty). Pickable orders beyond maxPicks stay open and are retried on a
// later tick.
func PickOrders(inv *Inventory, demand *DemandTracker, maxPicks int) []*Order {
	stocked := buildStockedLocations(inv)

	picked := make([]*Order, 0, maxPicks)
	open := append([]*Order(nil), demand.Orders()...)
	for _, o := range open {
		if !pickable(o, stocked) {
			continue
		}
		for _, line := range o.Lines {
			consume(line, stocked)
		}
		picked = append(picked, o)
		demand.RemoveOrder(o)
		logrus.Debugf("picked %s", o)

		if len(picked) >= maxPicks {
			break
		}
	}
	return picked
}
