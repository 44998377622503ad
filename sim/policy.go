package sim

import "fmt"

// ReplenishmentPolicy decides which product to move into stock each tick.
// The simulator calls NextReplenishmentOrder once per tick, applies the
// returned action (if any) to the inventory, runs picking, and then calls
// HandlePickedOrders with exactly the orders picked that tick, so the
// policy can keep its private stock projection consistent. Policies read
// the DemandTracker and Inventory but never mutate them.
type ReplenishmentPolicy interface {
	// NextReplenishmentOrder returns the replenishment to execute this
	// tick, or nil when the policy has nothing useful to do (an idle tick,
	// not an error).
	NextReplenishmentOrder() *ReplenishmentAction

	// HandlePickedOrders is invoked once per tick after picking, even when
	// no order was picked.
	HandlePickedOrders(picked []*Order)
}

// validPolicies maps accepted policy names.
var validPolicies = map[string]bool{
	"":             true, // empty defaults to fewest-unmet
	"fewest-unmet": true,
}

// IsValidPolicy returns true if the given name is a recognized policy name.
func IsValidPolicy(name string) bool {
	return validPolicies[name]
}

// NewPolicy creates a ReplenishmentPolicy by name.
// Valid names: "fewest-unmet" (default). Empty string defaults to
// FewestUnmetPolicy (for CLI flag default compatibility).
// Panics on unrecognized names.
func NewPolicy(name string, inv *Inventory, demand *DemandTracker, seq *ActionSequence) ReplenishmentPolicy {
	if !IsValidPolicy(name) {
		panic(fmt.Sprintf("unknown policy %q", name))
	}
	switch name {
	case "", "fewest-unmet":
		return NewFewestUnmetPolicy(inv, demand, seq)
	default:
		panic(fmt.Sprintf("unhandled policy %q", name))
	}
}
