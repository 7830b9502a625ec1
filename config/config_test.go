package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/buzznav/config"
	"github.com/katalvlaran/buzznav/multistop"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, multistop.DefaultMaxStops, cfg.Optimizer.MaxStops)
	assert.Equal(t, "free", cfg.Optimizer.Endpoints)
	assert.Equal(t, 20.0, cfg.Instructions.TurnThreshold)
	assert.Len(t, cfg.MultistopOptions(), 3)
	assert.Len(t, cfg.InstructionOptions(), 4)
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buzznav.yaml")
	doc := `
data:
  graph: campus/adj.csv
server:
  addr: 127.0.0.1:8080
log:
  level: debug
  format: json
optimizer:
  max_stops: 12
  endpoints: fixed
instructions:
  turn_threshold_deg: 30
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "campus/adj.csv", cfg.Data.Graph)
	assert.Equal(t, "data/building_mapping.csv", cfg.Data.Buildings, "untouched keys keep defaults")
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 12, cfg.Optimizer.MaxStops)
	assert.Equal(t, "fixed", cfg.Optimizer.Endpoints)
	assert.Equal(t, 30.0, cfg.Instructions.TurnThreshold)
	assert.Equal(t, 5.0, cfg.Instructions.HeadMin)
}

func TestLoad_EmptyPathAndFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("optimizer:\n  max_stop: 3\n"), 0o600))
	_, err = config.Load(path)
	require.Error(t, err, "unknown keys are rejected")

	require.NoError(t, os.WriteFile(path, []byte("optimizer:\n  max_stops: 40\n"), 0o600))
	_, err = config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"NoGraphPath", func(c *config.Config) { c.Data.Graph = "" }},
		{"BadLevel", func(c *config.Config) { c.Log.Level = "loud" }},
		{"BadFormat", func(c *config.Config) { c.Log.Format = "xml" }},
		{"ZeroStops", func(c *config.Config) { c.Optimizer.MaxStops = 0 }},
		{"NegativeWorkers", func(c *config.Config) { c.Optimizer.Workers = -1 }},
		{"BadEndpoints", func(c *config.Config) { c.Optimizer.Endpoints = "loop" }},
		{"NegativeRadius", func(c *config.Config) { c.Instructions.NearbyRadius = -1 }},
		{"StraightTurn", func(c *config.Config) { c.Instructions.TurnThreshold = 180 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestDecode_Partial(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, config.Decode(strings.NewReader("server:\n  cors_origins: [http://localhost:3000]\n"), &cfg))
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
}
