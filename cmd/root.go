package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/warehouse-sim/warehouse-sim/sim"
	"github.com/warehouse-sim/warehouse-sim/sim/input"
	"github.com/warehouse-sim/warehouse-sim/sim/results"
	"github.com/warehouse-sim/warehouse-sim/sim/trace"
)

var (
	// CLI flags for the simulation run
	dataPath      string // Directory with the input record files
	outputPath    string // Directory where the result files are written
	policyName    string // Replenishment policy name
	maxCycles     int    // Hard ceiling on simulated ticks
	picksPerCycle int    // Max orders picked per tick
	logLevel      string // Log verbosity level
	traceLevel    string // Decision trace level
	scenarioFile  string // Optional YAML scenario preset file
	scenarioName  string // Preset name inside the scenario file
	participant   string // Participant name written into the run summary
	archive       bool   // Package the outputs into an upload zip
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "warehouse-sim",
	Short: "Tick-based simulator for a warehouse pick/replenish day",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the warehouse simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !sim.IsValidPolicy(policyName) {
			logrus.Fatalf("Unknown policy: %q", policyName)
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level: %q", traceLevel)
		}

		// Scenario presets override the loop parameter flags
		if scenarioFile != "" {
			if scenario := GetScenario(scenarioFile, scenarioName); scenario != nil {
				if scenario.MaxCycles > 0 {
					maxCycles = scenario.MaxCycles
				}
				if scenario.PicksPerCycle > 0 {
					picksPerCycle = scenario.PicksPerCycle
				}
			}
		}

		in, err := input.Load(dataPath)
		if err != nil {
			logrus.Fatalf("unable to load input data: %v", err)
		}

		logrus.Infof("Starting simulation with %d locations, %d products, %d orders, maxCycles=%d, picksPerCycle=%d",
			len(in.Locations), len(in.Products), len(in.Orders), maxCycles, picksPerCycle)

		startTime := time.Now()

		// Initialize and run the simulator
		inventory := sim.NewInventory(in.Products, in.Locations)
		demand := sim.NewDemandTracker(in.Orders)
		policy := sim.NewPolicy(policyName, inventory, demand, sim.NewActionSequence())
		s := sim.NewSimulator(inventory, demand, maxCycles, picksPerCycle)
		if trace.TraceLevel(traceLevel) == trace.TraceLevelDecisions {
			s.Trace = trace.NewSimulationTrace(trace.TraceLevelDecisions)
		}

		actionLog, err := s.Run(policy)
		if err != nil {
			logrus.Fatalf("simulation aborted: %v", err)
		}

		actionsFile := filepath.Join(outputPath, results.ActionsFilename)
		if err := results.WriteActions(actionsFile, actionLog); err != nil {
			logrus.Fatalf("unable to write action log: %v", err)
		}
		runInfoFile := filepath.Join(outputPath, results.RunInfoFilename)
		info := results.RunInfo{
			Participant:     participant,
			FinalState:      s.State,
			TicksRun:        s.Metrics.TicksRun,
			Actions:         s.Metrics.AcceptedActions,
			RemainingOrders: s.Metrics.RemainingOrders,
			RemainingLines:  s.Metrics.RemainingLines,
			RemainingDemand: s.Metrics.RemainingDemand,
		}
		if err := results.WriteRunInfo(runInfoFile, info); err != nil {
			logrus.Fatalf("unable to write run info: %v", err)
		}

		if s.Trace != nil {
			traceFile := filepath.Join(outputPath, "trace.json")
			f, err := os.Create(traceFile)
			if err != nil {
				logrus.Fatalf("unable to create trace file: %v", err)
			}
			if err := s.Trace.WriteJSON(f); err != nil {
				f.Close()
				logrus.Fatalf("unable to write trace file: %v", err)
			}
			f.Close()
		}

		if archive {
			archiveFile := filepath.Join(outputPath, results.ArchiveFilename)
			if err := results.BuildArchive(archiveFile, actionsFile, runInfoFile); err != nil {
				logrus.Fatalf("unable to build archive: %v", err)
			}
			logrus.Infof("Created %s", archiveFile)
		}

		s.Metrics.Print(s.State)
		logrus.Infof("Simulation complete in %v, final state %s.", time.Since(startTime), s.State)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&dataPath, "data", "./input", "Directory with locations.csv, products.csv, pickorders.csv")
	runCmd.Flags().StringVar(&outputPath, "output", ".", "Directory for the result files")
	runCmd.Flags().StringVar(&policyName, "policy", "fewest-unmet", "Replenishment policy (fewest-unmet)")
	runCmd.Flags().IntVar(&maxCycles, "max-cycles", sim.DefaultMaxCycles, "Hard ceiling on simulated ticks")
	runCmd.Flags().IntVar(&picksPerCycle, "picks-per-cycle", sim.DefaultPicksPerTick, "Max orders picked per tick")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions)")
	runCmd.Flags().StringVar(&scenarioFile, "scenario-file", "", "YAML file with named scenario presets")
	runCmd.Flags().StringVar(&scenarioName, "scenario", "", "Scenario preset name to apply")
	runCmd.Flags().StringVar(&participant, "participant", "warehouse-sim", "Participant name for the run summary")
	runCmd.Flags().BoolVar(&archive, "archive", false, "Package results into an upload zip")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
