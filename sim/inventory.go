package sim

import (
	"fmt"
)

// Inventory owns the fixed set of products and locations for a run. It
// answers lookup queries and applies replenishment moves; location stock is
// otherwise mutated only by the picking engine.
type Inventory struct {
	products  map[string]*Product
	locations map[string]*Location
	// ordered keeps locations in load order, which is the scan order
	// policies use to find a free location.
	ordered []*Location
}

// NewInventory builds an Inventory from products and locations in load
// order. Duplicate codes keep the first occurrence.
func NewInventory(products []*Product, locations []*Location) *Inventory {
	inv := &Inventory{
		products:  make(map[string]*Product, len(products)),
		locations: make(map[string]*Location, len(locations)),
		ordered:   make([]*Location, 0, len(locations)),
	}
	for _, p := range products {
		if _, ok := inv.products[p.Code]; !ok {
			inv.products[p.Code] = p
		}
	}
	for _, l := range locations {
		if _, ok := inv.locations[l.Code]; !ok {
			inv.locations[l.Code] = l
			inv.ordered = append(inv.ordered, l)
		}
	}
	return inv
}

// FindProduct returns the product with the given code, or nil.
func (inv *Inventory) FindProduct(code string) *Product {
	return inv.products[code]
}

// FindLocation returns the location with the given code, or nil.
func (inv *Inventory) FindLocation(code string) *Location {
	return inv.locations[code]
}

// Locations returns all locations in load order. The returned slice is the
// inventory's internal storage -- callers may iterate but MUST NOT modify it.
func (inv *Inventory) Locations() []*Location {
	return inv.ordered
}

// ProductCount returns the number of distinct products.
func (inv *Inventory) ProductCount() int {
	return len(inv.products)
}

// LocationCount returns the number of locations.
func (inv *Inventory) LocationCount() int {
	return len(inv.ordered)
}

// ApplyReplenishment adds quantity pieces of the given product to the given
// location, assigning the product to the location if it is free. Failure
// kinds, in check order:
//   - ErrLocationNotFound: unknown location code
//   - ErrProductNotFound: unknown product code
//   - ErrConflictingAssignment: the location still holds stock of a
//     different product
//   - ErrCapacityExceeded: current + quantity would exceed the product's
//     MaxLocationQuantity
func (inv *Inventory) ApplyReplenishment(productCode, locationCode string, quantity int) error {
	target := inv.FindLocation(locationCode)
	if target == nil {
		return fmt.Errorf("refill: %w: %q", ErrLocationNotFound, locationCode)
	}

	product := inv.FindProduct(productCode)
	if product == nil {
		return fmt.Errorf("refill: %w: %q", ErrProductNotFound, productCode)
	}

	if target.AssignedProduct != nil && target.AssignedProduct.Code != product.Code && target.QuantityOnHand > 0 {
		return fmt.Errorf("refill %s into %s: %w: holds %q",
			productCode, locationCode, ErrConflictingAssignment, target.AssignedProduct.Code)
	}

	if target.QuantityOnHand+quantity > product.MaxLocationQuantity {
		return fmt.Errorf("refill %s into %s: %w: %d+%d > %d",
			productCode, locationCode, ErrCapacityExceeded,
			target.QuantityOnHand, quantity, product.MaxLocationQuantity)
	}

	target.AssignedProduct = product
	target.QuantityOnHand += quantity
	return nil
}
