// Tracks run-wide statistics about replenishment and picking.

package sim

import "fmt"

// Metrics aggregates statistics about the simulation for final reporting.
// Useful for evaluating policy performance and debugging behavior over time.
type Metrics struct {
	TicksRun         int // Number of ticks executed (terminal tick inclusive)
	IdleTicks        int // Ticks where the policy proposed no action
	AcceptedActions  int // Number of replenishment actions applied
	UnitsReplenished int // Total pieces moved into locations
	OrdersPicked     int // Number of orders fully picked
	LinesPicked      int // Number of lines across picked orders
	UnitsPicked      int // Total pieces picked

	RemainingOrders int // Open orders when the run ended
	RemainingLines  int // Open lines when the run ended
	RemainingDemand int // Outstanding pieces over all open lines

	// PickedPerTick records how many orders were picked each tick, for
	// post-run analysis of throughput against the per-tick cap.
	PickedPerTick []int
}

// NewMetrics returns a zeroed Metrics ready for accumulation.
func NewMetrics() *Metrics {
	return &Metrics{PickedPerTick: make([]int, 0)}
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(state RunState) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Terminal State       : %s\n", state)
	fmt.Printf("Ticks Run            : %d\n", m.TicksRun)
	fmt.Printf("Idle Ticks           : %d\n", m.IdleTicks)
	fmt.Printf("Accepted Actions     : %d\n", m.AcceptedActions)
	fmt.Printf("Units Replenished    : %d\n", m.UnitsReplenished)
	fmt.Printf("Orders Picked        : %d\n", m.OrdersPicked)
	fmt.Printf("Units Picked         : %d\n", m.UnitsPicked)
	fmt.Printf("Remaining Orders     : %d\n", m.RemainingOrders)
	fmt.Printf("Remaining Lines      : %d\n", m.RemainingLines)
	fmt.Printf("Remaining Demand     : %d pcs\n", m.RemainingDemand)
	if m.TicksRun > 0 {
		fmt.Printf("Avg Picks per Tick   : %.2f\n", float64(m.OrdersPicked)/float64(m.TicksRun))
	}
}
