package cmd

import (
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Migue0802/SG2-Team2/sim"
)

var (
	// CLI flags for the replication driver
	seed         int64  // Base seed; replication i runs with seed + i*17
	configPath   string // Optional YAML run configuration
	outputPath   string // CSV report destination
	logLevel     string // Log verbosity level
	workers      int    // Number of goroutines running replications
	horizon      float64
	replications int
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sg2sim",
	Short: "Discrete-event simulator for a six-station manufacturing line",
}

// runCmd executes the replications using parameters from the config file
// and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the manufacturing line simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := DefaultConfig()
		if configPath != "" {
			cfg, err = LoadConfig(configPath)
			if err != nil {
				logrus.Fatalf("Unable to read run configuration: %v", err)
			}
		}
		if cmd.Flags().Changed("horizon") {
			cfg.Horizon = horizon
		}
		if cmd.Flags().Changed("replications") {
			cfg.Replications = replications
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid run configuration: %v", err)
		}

		logrus.Infof("Starting %d replications, horizon=%.0f, seed=%d, workers=%d",
			cfg.Replications, cfg.Horizon, seed, workers)
		startTime := time.Now()

		records := runReplications(cfg.Params(), cfg.Replications, seed, workers)

		if err := WriteCSV(outputPath, records); err != nil {
			logrus.Fatalf("Unable to write report: %v", err)
		}
		Summarize(records).Print()

		logrus.Infof("Completed %d replications in %v, report written to %s",
			cfg.Replications, time.Since(startTime), outputPath)
	},
}

// runReplications runs the configured number of independent replications.
// Each replication gets its own simulator and random stream, so they can be
// spread over a pool of workers; records are indexed by replication so the
// report order does not depend on goroutine scheduling.
func runReplications(params sim.Params, count int, baseSeed int64, workers int) []sim.ReportRecord {
	records := make([]sim.ReportRecord, count)

	if workers <= 1 {
		for i := 0; i < count; i++ {
			records[i] = sim.RunReplication(params, replicationSeed(baseSeed, i))
			logrus.Infof("replication %d/%d done", i+1, count)
		}
		return records
	}

	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				records[i] = sim.RunReplication(params, replicationSeed(baseSeed, i))
				logrus.Infof("replication %d/%d done", i+1, count)
			}
		}()
	}
	for i := 0; i < count; i++ {
		indices <- i
	}
	close(indices)
	wg.Wait()
	return records
}

// replicationSeed derives an independent stream seed per replication.
func replicationSeed(baseSeed int64, i int) int64 {
	return baseSeed + int64(i)*17
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Base seed for the replication random streams")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML run configuration file (defaults used when empty)")
	runCmd.Flags().StringVar(&outputPath, "output", "results.csv", "CSV report destination")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().IntVar(&workers, "workers", 1, "Number of goroutines running replications in parallel")
	runCmd.Flags().Float64Var(&horizon, "horizon", 5000, "Simulated duration of one replication")
	runCmd.Flags().IntVar(&replications, "replications", 100, "Number of independent replications")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
