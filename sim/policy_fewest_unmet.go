package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// FewestUnmetPolicy is the reference replenishment heuristic. It keeps a
// private forward-looking projection of per-product on-hand stock (separate
// from the inventory's authoritative per-location state, so the policy can
// plan several ticks ahead of physical placement) and each tick targets the
// first unmet line of the order closest to being fully satisfiable.
type FewestUnmetPolicy struct {
	inv    *Inventory
	demand *DemandTracker
	seq    *ActionSequence

	// projected is the policy's per-product projected on-hand quantity.
	// Incremented when an action is proposed, decremented when picked
	// orders are reported back.
	projected map[string]int
	// queue is the policy's live list of open orders, reordered each
	// decision. Orders leave the queue when HandlePickedOrders reports
	// them picked.
	queue []*Order
	// unmet caches, per order id, how many of the order's lines exceed the
	// projected on-hand stock. Recomputed only for orders touching a
	// product affected by a pick.
	unmet map[string]int
}

// NewFewestUnmetPolicy builds the reference policy over the given
// inventory and open-order set. The injected ActionSequence assigns ids to
// the actions the policy proposes.
func NewFewestUnmetPolicy(inv *Inventory, demand *DemandTracker, seq *ActionSequence) *FewestUnmetPolicy {
	p := &FewestUnmetPolicy{
		inv:       inv,
		demand:    demand,
		seq:       seq,
		projected: make(map[string]int, inv.ProductCount()),
		unmet:     make(map[string]int, demand.OpenOrderCount()),
	}
	p.queue = append([]*Order(nil), demand.Orders()...)
	for _, o := range p.queue {
		p.unmet[o.ID] = o.UnmetLineCount(p.projected)
	}
	return p
}

// NextReplenishmentOrder implements ReplenishmentPolicy. It sorts the open
// orders ascending by unmet-line count (insertion order breaks ties), scans
// for the first line whose requirement exceeds the projected on-hand stock,
// places the product's replenishment into the first free location, and
// proposes min(max location quantity, outstanding demand - projection)
// pieces. Returns nil when there is no unmet line, no free location, or the
// proposed quantity is not positive.
func (p *FewestUnmetPolicy) NextReplenishmentOrder() *ReplenishmentAction {
	sort.Slice(p.queue, func(i, j int) bool {
		ui, uj := p.unmet[p.queue[i].ID], p.unmet[p.queue[j].ID]
		if ui != uj {
			return ui < uj
		}
		return p.queue[i].seq < p.queue[j].seq
	})

	product := p.nextProduct()
	if product == nil {
		return nil
	}

	location := p.nextFreeLocation()
	if location == nil {
		return nil
	}

	quantity := p.proposedQuantity(product)
	if quantity <= 0 {
		// The aggregate demand cache and the line-level unmet check use
		// different denominators and can disagree; never let a
		// non-positive quantity flow into inventory mutation.
		logrus.Warnf("clamped non-positive replenishment for %s (proposed %d)", product.Code, quantity)
		return nil
	}

	p.projected[product.Code] += quantity
	return p.seq.NewAction(product, location, quantity)
}

// nextProduct scans the sorted queue, within each order its lines in stored
// order, and returns the product of the first line whose quantity exceeds
// the projected on-hand stock. Returns nil when every line is covered, or
// when the identified line references an unknown product (the policy then
// stays idle).
func (p *FewestUnmetPolicy) nextProduct() *Product {
	for _, o := range p.queue {
		for _, line := range o.Lines {
			if line.Quantity > p.projected[line.ProductCode] {
				return p.inv.FindProduct(line.ProductCode)
			}
		}
	}
	return nil
}

// nextFreeLocation returns the first location in load order with no
// assigned product, or nil when every slot is occupied. The policy does not
// attempt partial consolidation into a partially stocked same-product
// location.
func (p *FewestUnmetPolicy) nextFreeLocation() *Location {
	for _, loc := range p.inv.Locations() {
		if loc.AssignedProduct == nil {
			return loc
		}
	}
	return nil
}

// proposedQuantity caps the outstanding projected shortfall at one
// location's worth of the product.
func (p *FewestUnmetPolicy) proposedQuantity(product *Product) int {
	shortfall := p.demand.NeededQuantity(product.Code) - p.projected[product.Code]
	return min(product.MaxLocationQuantity, shortfall)
}

// HandlePickedOrders implements ReplenishmentPolicy. It decrements the
// projection by the picked per-product totals, drops the picked orders from
// the queue, and refreshes the cached unmet-line count for every remaining
// order touching an affected product.
func (p *FewestUnmetPolicy) HandlePickedOrders(picked []*Order) {
	if len(picked) == 0 {
		return
	}

	removed := make(map[string]bool, len(picked))
	affected := make(map[string]int)
	for _, o := range picked {
		removed[o.ID] = true
		for _, line := range o.Lines {
			affected[line.ProductCode] += line.Quantity
		}
	}

	for code, quantity := range affected {
		p.projected[code] -= quantity
	}

	kept := p.queue[:0]
	for _, o := range p.queue {
		if removed[o.ID] {
			delete(p.unmet, o.ID)
			continue
		}
		kept = append(kept, o)
	}
	p.queue = kept

	for _, o := range p.queue {
		for code := range affected {
			if o.ContainsProduct(code) {
				p.unmet[o.ID] = o.UnmetLineCount(p.projected)
				break
			}
		}
	}
}
