package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/warehouse-sim/warehouse-sim/sim/trace"
)

// Defaults for the tick loop, taken from the operational parameters of the
// simulated warehouse day.
const (
	// DefaultMaxCycles is the hard ceiling on ticks before the run is cut off.
	DefaultMaxCycles = 20000
	// DefaultPicksPerTick is the per-tick throughput cap of the picking engine.
	DefaultPicksPerTick = 1
)

// RunState is the simulator's lifecycle state. All states but StateRunning
// are terminal.
type RunState string

const (
	// StateRunning is the initial state while ticks are being executed.
	StateRunning RunState = "running"
	// StateDoneAllFulfilled means every open order line was picked.
	StateDoneAllFulfilled RunState = "all-fulfilled"
	// StateDoneTickLimit means the tick ceiling was reached with work left.
	StateDoneTickLimit RunState = "tick-limit"
	// StateAbortedBadLocation means a policy targeted an unknown location;
	// the run stops gracefully and keeps the results gathered so far.
	StateAbortedBadLocation RunState = "aborted-bad-location"
	// StateAbortedError means an inventory invariant was broken; the run
	// aborts and the failure is surfaced to the caller.
	StateAbortedError RunState = "aborted-error"
)

// Simulator owns the tick loop for one warehouse day. Each tick it asks the
// policy for at most one replenishment, applies it to the inventory, runs
// the picking engine, and feeds the picked orders back to the policy.
type Simulator struct {
	Clock        int // current tick
	MaxCycles    int
	PicksPerTick int
	Inventory    *Inventory
	Demand       *DemandTracker
	Metrics      *Metrics
	State        RunState
	// Trace records per-tick decisions when non-nil.
	Trace *trace.SimulationTrace
}

// NewSimulator builds a simulator over the given inventory and open-order
// set. Non-positive maxCycles or picksPerTick fall back to the defaults.
func NewSimulator(inv *Inventory, demand *DemandTracker, maxCycles, picksPerTick int) *Simulator {
	if maxCycles <= 0 {
		maxCycles = DefaultMaxCycles
	}
	if picksPerTick <= 0 {
		picksPerTick = DefaultPicksPerTick
	}
	return &Simulator{
		Clock:        0,
		MaxCycles:    maxCycles,
		PicksPerTick: picksPerTick,
		Inventory:    inv,
		Demand:       demand,
		Metrics:      NewMetrics(),
		State:        StateRunning,
	}
}

// Run executes ticks until a terminal state is reached and returns the
// ordered log of accepted replenishment actions. The log is returned for
// every terminal state; err is non-nil only for StateAbortedError, wrapping
// the failed tick and action context around the inventory failure.
func (s *Simulator) Run(policy ReplenishmentPolicy) ([]LoggedAction, error) {
	if policy == nil {
		panic("Run: policy must not be nil")
	}

	actionLog := make([]LoggedAction, 0)
	for s.State == StateRunning {
		s.Metrics.TicksRun++

		action := policy.NextReplenishmentOrder()
		if action != nil {
			if err := s.Inventory.ApplyReplenishment(action.ProductCode, action.LocationCode, action.Quantity); err != nil {
				if errors.Is(err, ErrLocationNotFound) {
					logrus.Errorf("[tick %07d] ending run: %v", s.Clock, err)
					s.State = StateAbortedBadLocation
					break
				}
				s.State = StateAbortedError
				s.finishMetrics()
				return actionLog, fmt.Errorf("tick %d: applying %s: %w", s.Clock, action, err)
			}
			// The action is recorded even if picking later this tick does
			// not consume the newly added stock.
			actionLog = append(actionLog, LoggedAction{Tick: s.Clock, Action: action})
			s.Metrics.AcceptedActions++
			s.Metrics.UnitsReplenished += action.Quantity
			s.recordDecision(action)
		} else {
			s.Metrics.IdleTicks++
			s.recordDecision(nil)
		}

		picked := PickOrders(s.Inventory, s.Demand, s.PicksPerTick)
		for _, o := range picked {
			s.Metrics.OrdersPicked++
			s.Metrics.LinesPicked += o.LineCount()
			s.Metrics.UnitsPicked += o.TotalUnits()
			s.recordPick(o)
		}
		s.Metrics.PickedPerTick = append(s.Metrics.PickedPerTick, len(picked))

		policy.HandlePickedOrders(picked)

		logrus.Infof("[tick %07d] picked %d orders, %d orders with %d lines left",
			s.Clock, len(picked), s.Demand.OpenOrderCount(), s.Demand.OpenLineCount())

		if s.Demand.OpenLineCount() == 0 {
			logrus.Infof("[tick %07d] all pick orders done", s.Clock)
			s.State = StateDoneAllFulfilled
			break
		}

		s.Clock++
		if s.Clock >= s.MaxCycles {
			logrus.Warnf("[tick %07d] tick limit reached, %d orders left", s.Clock, s.Demand.OpenOrderCount())
			s.State = StateDoneTickLimit
		}
	}

	s.finishMetrics()
	return actionLog, nil
}

// finishMetrics snapshots the remaining open demand into the metrics.
func (s *Simulator) finishMetrics() {
	s.Metrics.RemainingOrders = s.Demand.OpenOrderCount()
	s.Metrics.RemainingLines = s.Demand.OpenLineCount()
	remaining := 0
	for _, line := range s.Demand.Lines() {
		remaining += line.Quantity
	}
	s.Metrics.RemainingDemand = remaining
}

func (s *Simulator) recordDecision(action *ReplenishmentAction) {
	if s.Trace == nil {
		return
	}
	if action == nil {
		s.Trace.RecordDecision(trace.DecisionRecord{Tick: s.Clock, Idle: true})
		return
	}
	s.Trace.RecordDecision(trace.DecisionRecord{
		Tick:         s.Clock,
		ActionID:     action.ID,
		ProductCode:  action.ProductCode,
		LocationCode: action.LocationCode,
		Quantity:     action.Quantity,
	})
}

func (s *Simulator) recordPick(o *Order) {
	if s.Trace == nil {
		return
	}
	s.Trace.RecordPick(trace.PickRecord{
		Tick:    s.Clock,
		OrderID: o.ID,
		Lines:   o.LineCount(),
		Units:   o.TotalUnits(),
	})
}
