package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventory_Lookups(t *testing.T) {
	// GIVEN an inventory with two products and two locations
	p1 := testProduct("P1", 10)
	p2 := testProduct("P2", 5)
	l1 := testLocation("L1")
	l2 := testLocation("L2")
	inv := NewInventory([]*Product{p1, p2}, []*Location{l1, l2})

	// THEN lookups are exact and misses return nil
	assert.Equal(t, p1, inv.FindProduct("P1"))
	assert.Equal(t, l2, inv.FindLocation("L2"))
	assert.Nil(t, inv.FindProduct("NOPE"))
	assert.Nil(t, inv.FindLocation("NOPE"))
	assert.Equal(t, 2, inv.ProductCount())
	assert.Equal(t, 2, inv.LocationCount())
}

func TestInventory_Locations_PreservesLoadOrder(t *testing.T) {
	// GIVEN locations loaded in a fixed order
	locs := []*Location{testLocation("L3"), testLocation("L1"), testLocation("L2")}
	inv := NewInventory(nil, locs)

	// THEN Locations returns them in exactly that order
	got := inv.Locations()
	if len(got) != 3 {
		t.Fatalf("Locations: got %d, want 3", len(got))
	}
	want := []string{"L3", "L1", "L2"}
	for i, loc := range got {
		if loc.Code != want[i] {
			t.Errorf("Locations[%d]: got %s, want %s", i, loc.Code, want[i])
		}
	}
}

func TestApplyReplenishment_Success_AssignsAndAdds(t *testing.T) {
	// GIVEN an empty location and a product with capacity 10
	p := testProduct("P1", 10)
	l := testLocation("L1")
	inv := NewInventory([]*Product{p}, []*Location{l})

	// WHEN 4 pieces are replenished
	err := inv.ApplyReplenishment("P1", "L1", 4)

	// THEN the location holds the product with 4 pieces
	assert.NoError(t, err)
	assert.Equal(t, p, l.AssignedProduct)
	assert.Equal(t, 4, l.QuantityOnHand)

	// AND replenishing the same product again accumulates
	assert.NoError(t, inv.ApplyReplenishment("P1", "L1", 6))
	assert.Equal(t, 10, l.QuantityOnHand)
}

func TestApplyReplenishment_UnknownLocation(t *testing.T) {
	inv := NewInventory([]*Product{testProduct("P1", 10)}, nil)

	err := inv.ApplyReplenishment("P1", "NOPE", 1)

	if !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("got %v, want ErrLocationNotFound", err)
	}
}

func TestApplyReplenishment_UnknownProduct(t *testing.T) {
	inv := NewInventory(nil, []*Location{testLocation("L1")})

	err := inv.ApplyReplenishment("NOPE", "L1", 1)

	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("got %v, want ErrProductNotFound", err)
	}
}

func TestApplyReplenishment_ConflictingAssignment(t *testing.T) {
	// GIVEN a location still holding stock of another product
	p1 := testProduct("P1", 10)
	p2 := testProduct("P2", 10)
	l := stockedLocation("L1", p1, 3)
	inv := NewInventory([]*Product{p1, p2}, []*Location{l})

	// WHEN a different product is replenished into it
	err := inv.ApplyReplenishment("P2", "L1", 1)

	// THEN the move is rejected and nothing changed
	if !errors.Is(err, ErrConflictingAssignment) {
		t.Errorf("got %v, want ErrConflictingAssignment", err)
	}
	assert.Equal(t, p1, l.AssignedProduct)
	assert.Equal(t, 3, l.QuantityOnHand)
}

func TestApplyReplenishment_DrainedLocation_TakesNewProduct(t *testing.T) {
	// GIVEN a location assigned to P1 but fully drained
	p1 := testProduct("P1", 10)
	p2 := testProduct("P2", 8)
	l := stockedLocation("L1", p1, 0)
	inv := NewInventory([]*Product{p1, p2}, []*Location{l})

	// WHEN P2 is replenished into it
	err := inv.ApplyReplenishment("P2", "L1", 5)

	// THEN the slot is recommitted to P2
	assert.NoError(t, err)
	assert.Equal(t, p2, l.AssignedProduct)
	assert.Equal(t, 5, l.QuantityOnHand)
}

func TestApplyReplenishment_CapacityExceeded(t *testing.T) {
	// GIVEN a location at 8 of 10 pieces
	p := testProduct("P1", 10)
	l := stockedLocation("L1", p, 8)
	inv := NewInventory([]*Product{p}, []*Location{l})

	// WHEN 3 more pieces are replenished
	err := inv.ApplyReplenishment("P1", "L1", 3)

	// THEN the move is rejected and the quantity is unchanged
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("got %v, want ErrCapacityExceeded", err)
	}
	assert.Equal(t, 8, l.QuantityOnHand)

	// AND filling exactly to capacity is accepted
	assert.NoError(t, inv.ApplyReplenishment("P1", "L1", 2))
	assert.Equal(t, 10, l.QuantityOnHand)
}
