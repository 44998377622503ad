// Package results writes the outputs of a simulation run: the
// semicolon-delimited action log, a run summary properties file, and an
// upload archive bundling both.
package results

import (
	"bufio"
	"fmt"
	"os"

	sim "github.com/warehouse-sim/warehouse-sim/sim"
)

// Output filenames.
const (
	ActionsFilename = "replenishmentOrders.csv"
	RunInfoFilename = "runinfo.properties"
	ArchiveFilename = "upload.zip"
)

// WriteActions writes the accepted action log, one line per action:
// tick;actionId;productCode;locationCode;quantity. An existing file is
// replaced.
func WriteActions(path string, actionLog []sim.LoggedAction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create result file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, la := range actionLog {
		fmt.Fprintf(w, "%d;%d;%s;%s;%d\n",
			la.Tick, la.Action.ID, la.Action.ProductCode, la.Action.LocationCode, la.Action.Quantity)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush result file: %w", err)
	}
	return nil
}

// RunInfo is the metadata written alongside the action log for reporting.
type RunInfo struct {
	Participant string
	FinalState  sim.RunState
	TicksRun    int
	Actions     int
	// Remaining unfulfilled demand when the run ended.
	RemainingOrders int
	RemainingLines  int
	RemainingDemand int
}

// WriteRunInfo writes the run summary as a properties file.
func WriteRunInfo(path string, info RunInfo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create run info file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# warehouse-sim run summary")
	fmt.Fprintf(w, "participant = %s\n", info.Participant)
	fmt.Fprintln(w, "technology = go")
	fmt.Fprintf(w, "state = %s\n", info.FinalState)
	fmt.Fprintf(w, "ticks = %d\n", info.TicksRun)
	fmt.Fprintf(w, "actions = %d\n", info.Actions)
	fmt.Fprintf(w, "remaining.orders = %d\n", info.RemainingOrders)
	fmt.Fprintf(w, "remaining.lines = %d\n", info.RemainingLines)
	fmt.Fprintf(w, "remaining.demand = %d\n", info.RemainingDemand)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush run info file: %w", err)
	}
	return nil
}
