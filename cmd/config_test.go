package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig_MatchesStudyParameters(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 5000.0, cfg.Horizon)
	assert.Equal(t, 100, cfg.Replications)
	assert.Equal(t, 3.0, cfg.ArrivalMean)
	assert.Equal(t, 4.0, cfg.ProcessMean)
	assert.Equal(t, 1.0, cfg.ProcessStdDev)
	assert.Equal(t, 3.0, cfg.RepairMean)
	assert.Equal(t, 2.0, cfg.RestockMean)
	assert.Equal(t, 0.5, cfg.RestockStdDev)
	assert.Equal(t, 3, cfg.Restockers)
	assert.Equal(t, 25, cfg.InitialMaterial)
	assert.Equal(t, 5, cfg.FailureCheckEvery)
	assert.Equal(t, 0.05, cfg.RejectionProbability)
	assert.Equal(t, []float64{0.02, 0.01, 0.05, 0.15, 0.07, 0.06}, cfg.FailureProbabilities)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_OverridesOnlyNamedFields(t *testing.T) {
	// GIVEN a config file naming two fields
	path := writeTempConfig(t, "horizon: 1000\nreplications: 5\n")

	// WHEN it is loaded
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// THEN those fields change and the rest keep their defaults
	assert.Equal(t, 1000.0, cfg.Horizon)
	assert.Equal(t, 5, cfg.Replications)
	assert.Equal(t, 3.0, cfg.ArrivalMean)
	assert.Equal(t, 25, cfg.InitialMaterial)
}

func TestLoadConfig_UnknownFieldIsAnError(t *testing.T) {
	path := writeTempConfig(t, "horizont: 1000\n")

	_, err := LoadConfig(path)

	assert.Error(t, err, "typo in a field name must not be silently ignored")
}

func TestLoadConfig_MissingFileIsAnError(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero replications", func(c *Config) { c.Replications = 0 }},
		{"negative horizon", func(c *Config) { c.Horizon = -5 }},
		{"failure table wrong length", func(c *Config) { c.FailureProbabilities = []float64{0.1, 0.2} }},
		{"rejection probability out of range", func(c *Config) { c.RejectionProbability = -0.1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_Params_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Horizon = 123
	cfg.Restockers = 2

	p := cfg.Params()

	assert.Equal(t, 123.0, p.Horizon)
	assert.Equal(t, 2, p.Restockers)
	assert.Equal(t, cfg.FailureProbabilities, p.FailureProbabilities)
}
