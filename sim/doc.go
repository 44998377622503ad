// Package sim provides the core tick-based simulation engine for one
// operating day of a warehouse pick/replenish cycle.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - order.go: Orders and order lines, the demand side of the warehouse
//   - inventory.go: Locations and products, the supply side
//   - simulator.go: The tick loop driving policy, replenishment and picking
//
// # Architecture
//
// Every tick the Simulator asks a ReplenishmentPolicy for at most one
// replenishment move, applies it to the Inventory, runs the picking engine
// against the open orders in the DemandTracker, and reports the picked
// orders back to the policy. All iteration orders are fixed (load order for
// locations, insertion order for orders), so a run is fully deterministic:
// replaying the same inputs through the same policy produces an identical
// action log.
//
// Sub-packages:
//   - sim/input: semicolon-delimited record loaders for locations, products
//     and pick orders
//   - sim/results: action-log writer, run summary file and upload archive
//   - sim/trace: per-tick decision trace recording
//
// # Key Interfaces
//
// ReplenishmentPolicy is the extension point for alternative replenishment
// strategies; the reference heuristic is FewestUnmetPolicy. Policies are
// constructed by name via NewPolicy.
package sim
