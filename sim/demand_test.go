package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recomputeNeeded derives the demand aggregate from scratch over the open
// set, for checking the incremental cache.
func recomputeNeeded(dt *DemandTracker) map[string]int {
	needed := make(map[string]int)
	for _, o := range dt.Orders() {
		for _, line := range o.Lines {
			needed[line.ProductCode] += line.Quantity
		}
	}
	return needed
}

func newTestTracker() (*DemandTracker, []*Order) {
	orders := []*Order{
		testOrder("ORD1", testLine("ORD1", "P1", 4), testLine("ORD1", "P2", 2)),
		testOrder("ORD2", testLine("ORD2", "P1", 3)),
		testOrder("ORD3", testLine("ORD3", "P3", 6)),
	}
	return NewDemandTracker(orders), orders
}

func TestDemandTracker_Counts(t *testing.T) {
	dt, _ := newTestTracker()

	assert.Equal(t, 3, dt.OpenOrderCount())
	assert.Equal(t, 4, dt.OpenLineCount())
}

func TestDemandTracker_NeededQuantity_AggregatesAcrossOrders(t *testing.T) {
	dt, _ := newTestTracker()

	// P1 appears in ORD1 (4) and ORD2 (3)
	assert.Equal(t, 7, dt.NeededQuantity("P1"))
	assert.Equal(t, 2, dt.NeededQuantity("P2"))
	assert.Equal(t, 6, dt.NeededQuantity("P3"))
	// unknown products never fail
	assert.Equal(t, 0, dt.NeededQuantity("NOPE"))
}

func TestDemandTracker_Orders_InsertionOrder(t *testing.T) {
	dt, orders := newTestTracker()

	got := dt.Orders()
	if len(got) != len(orders) {
		t.Fatalf("Orders: got %d, want %d", len(got), len(orders))
	}
	for i, o := range got {
		if o != orders[i] {
			t.Errorf("Orders[%d]: got %s, want %s", i, o.ID, orders[i].ID)
		}
	}
}

func TestRemoveOrder_UpdatesSetAndCache(t *testing.T) {
	// GIVEN a tracker with three orders
	dt, orders := newTestTracker()

	// WHEN the first order is removed
	dt.RemoveOrder(orders[0])

	// THEN counts, lookup and cache reflect the removal
	assert.Equal(t, 2, dt.OpenOrderCount())
	assert.Equal(t, 2, dt.OpenLineCount())
	assert.Nil(t, dt.FindOrder("ORD1"))
	assert.Equal(t, 3, dt.NeededQuantity("P1"))
	assert.Equal(t, 0, dt.NeededQuantity("P2"))

	// AND the cache equals a from-scratch recomputation
	recomputed := recomputeNeeded(dt)
	for _, code := range []string{"P1", "P2", "P3"} {
		assert.Equal(t, recomputed[code], dt.NeededQuantity(code), "product %s", code)
	}
}

func TestRemoveOrder_CacheStaysConsistent_AfterEveryRemoval(t *testing.T) {
	dt, orders := newTestTracker()

	for _, o := range []*Order{orders[2], orders[0], orders[1]} {
		dt.RemoveOrder(o)
		recomputed := recomputeNeeded(dt)
		for _, code := range []string{"P1", "P2", "P3"} {
			if dt.NeededQuantity(code) != recomputed[code] {
				t.Fatalf("after removing %s: cache for %s = %d, recomputed %d",
					o.ID, code, dt.NeededQuantity(code), recomputed[code])
			}
		}
	}
	assert.Equal(t, 0, dt.OpenOrderCount())
	assert.Equal(t, 0, dt.OpenLineCount())
}

func TestRemoveOrder_Twice_Panics(t *testing.T) {
	dt, orders := newTestTracker()
	dt.RemoveOrder(orders[1])

	defer func() {
		if recover() == nil {
			t.Error("expected panic on double removal")
		}
	}()
	dt.RemoveOrder(orders[1])
}

func TestRemoveOrder_NonMember_Panics(t *testing.T) {
	dt, _ := newTestTracker()
	stranger := testOrder("GHOST", testLine("GHOST", "P1", 1))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on removing a non-member order")
		}
	}()
	dt.RemoveOrder(stranger)
}
