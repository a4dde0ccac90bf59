package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Migue0802/SG2-Team2/sim"
)

// Config mirrors the run-configuration YAML file. Every field defaults to
// the fixed study parameters; a config file overrides only what it names.
type Config struct {
	Horizon              float64   `yaml:"horizon"`
	Replications         int       `yaml:"replications"`
	ArrivalMean          float64   `yaml:"arrival_mean"`
	ProcessMean          float64   `yaml:"process_mean"`
	ProcessStdDev        float64   `yaml:"process_std_dev"`
	RepairMean           float64   `yaml:"repair_mean"`
	RestockMean          float64   `yaml:"restock_mean"`
	RestockStdDev        float64   `yaml:"restock_std_dev"`
	Restockers           int       `yaml:"restockers"`
	InitialMaterial      int       `yaml:"initial_material"`
	FailureCheckEvery    int       `yaml:"failure_check_every"`
	RejectionProbability float64   `yaml:"rejection_probability"`
	FailureProbabilities []float64 `yaml:"failure_probabilities"`
}

// DefaultConfig returns the fixed study configuration: 100 replications of
// a 5000 time-unit horizon.
func DefaultConfig() Config {
	p := sim.DefaultParams()
	return Config{
		Horizon:              p.Horizon,
		Replications:         100,
		ArrivalMean:          p.ArrivalMean,
		ProcessMean:          p.ProcessMean,
		ProcessStdDev:        p.ProcessStdDev,
		RepairMean:           p.RepairMean,
		RestockMean:          p.RestockMean,
		RestockStdDev:        p.RestockStdDev,
		Restockers:           p.Restockers,
		InitialMaterial:      p.InitialMaterial,
		FailureCheckEvery:    p.FailureCheckEvery,
		RejectionProbability: p.RejectionProbability,
		FailureProbabilities: p.FailureProbabilities,
	}
}

// LoadConfig reads a YAML run configuration on top of the defaults.
// Parsing is strict: unknown fields cause an error rather than being
// silently ignored.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Params converts the configuration into per-replication parameters.
func (c Config) Params() sim.Params {
	return sim.Params{
		Horizon:              c.Horizon,
		ArrivalMean:          c.ArrivalMean,
		ProcessMean:          c.ProcessMean,
		ProcessStdDev:        c.ProcessStdDev,
		RepairMean:           c.RepairMean,
		RestockMean:          c.RestockMean,
		RestockStdDev:        c.RestockStdDev,
		Restockers:           c.Restockers,
		InitialMaterial:      c.InitialMaterial,
		FailureCheckEvery:    c.FailureCheckEvery,
		RejectionProbability: c.RejectionProbability,
		FailureProbabilities: c.FailureProbabilities,
	}
}

// Validate checks the run-level settings and the per-replication parameters.
func (c Config) Validate() error {
	if c.Replications < 1 {
		return fmt.Errorf("replications must be >= 1, got %d", c.Replications)
	}
	return c.Params().Validate()
}
