package sim

import "fmt"

// ReplenishmentAction is one replenishment move proposed by a policy:
// quantity pieces of a product into a location. Immutable once created.
type ReplenishmentAction struct {
	// ID is the sequential action id, assigned at construction by an
	// ActionSequence starting at 1.
	ID           int
	ProductCode  string
	LocationCode string
	Quantity     int
}

func (a *ReplenishmentAction) String() string {
	return fmt.Sprintf("ReplenOrder_%d: %d x %s -> %s", a.ID, a.Quantity, a.ProductCode, a.LocationCode)
}

// ActionSequence hands out sequential action ids. One sequence is owned per
// run and injected into the policy, so there is no process-wide counter
// state shared between runs.
type ActionSequence struct {
	next int
}

// NewActionSequence returns a sequence whose first id is 1.
func NewActionSequence() *ActionSequence {
	return &ActionSequence{next: 1}
}

// NewAction constructs a ReplenishmentAction with the next id in sequence.
func (s *ActionSequence) NewAction(product *Product, location *Location, quantity int) *ReplenishmentAction {
	if product == nil {
		panic("NewAction: product must not be nil")
	}
	if location == nil {
		panic("NewAction: location must not be nil")
	}
	a := &ReplenishmentAction{
		ID:           s.next,
		ProductCode:  product.Code,
		LocationCode: location.Code,
		Quantity:     quantity,
	}
	s.next++
	return a
}

// LoggedAction is one accepted replenishment together with the tick at
// which the simulator accepted it.
type LoggedAction struct {
	Tick   int
	Action *ReplenishmentAction
}
