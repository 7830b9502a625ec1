package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/buzznav/instructions"
	"github.com/katalvlaran/buzznav/internal/ctxlog"
	"github.com/katalvlaran/buzznav/multistop"
	"github.com/katalvlaran/buzznav/tsp"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Data: DataConfig{
			Graph:       "data/adj_list.csv",
			Coordinates: "data/node_coordinates.csv",
			Buildings:   "data/building_mapping.csv",
		},
		Server: ServerConfig{
			Addr:        ":5000",
			CORSOrigins: []string{"*"},
		},
		Log: LogConfig{Level: "info", Format: "text"},
		Optimizer: OptimizerConfig{
			MaxStops:  multistop.DefaultMaxStops,
			Workers:   0,
			Endpoints: tsp.EndpointsFree.String(),
		},
		Instructions: InstructionsConfig{
			HeadMin:       instructions.DefaultHeadMin,
			ContinueMin:   instructions.DefaultContinueMin,
			TurnThreshold: instructions.DefaultTurnThreshold,
			NearbyRadius:  instructions.DefaultNearbyRadius,
		},
	}
}

// Load overlays the YAML file at path on Default and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Decode overlays the YAML document read from r on cfg. Unknown keys are
// rejected; an empty document leaves cfg unchanged.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse yaml: %w", err)
	}

	return nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Data.Graph == "" || c.Data.Coordinates == "" || c.Data.Buildings == "" {
		return fmt.Errorf("%w: data paths must all be set", ErrInvalidConfig)
	}
	if _, ok := ctxlog.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Optimizer.MaxStops < 1 || c.Optimizer.MaxStops > tsp.MaxStops {
		return fmt.Errorf("%w: optimizer.max_stops %d outside [1, %d]", ErrInvalidConfig, c.Optimizer.MaxStops, tsp.MaxStops)
	}
	if c.Optimizer.Workers < 0 {
		return fmt.Errorf("%w: optimizer.workers %d", ErrInvalidConfig, c.Optimizer.Workers)
	}
	if _, ok := tsp.ParseEndpoints(c.Optimizer.Endpoints); !ok {
		return fmt.Errorf("%w: optimizer.endpoints %q", ErrInvalidConfig, c.Optimizer.Endpoints)
	}
	in := c.Instructions
	if in.HeadMin < 0 || in.ContinueMin < 0 || in.NearbyRadius < 0 {
		return fmt.Errorf("%w: instruction distances must be non-negative", ErrInvalidConfig)
	}
	if in.TurnThreshold < 0 || in.TurnThreshold >= 180 {
		return fmt.Errorf("%w: instructions.turn_threshold_deg %v outside [0, 180)", ErrInvalidConfig, in.TurnThreshold)
	}

	return nil
}

// MultistopOptions converts the optimizer section. Call after Validate.
func (c Config) MultistopOptions() []multistop.Option {
	ends, _ := tsp.ParseEndpoints(c.Optimizer.Endpoints)
	return []multistop.Option{
		multistop.WithMaxStops(c.Optimizer.MaxStops),
		multistop.WithWorkers(c.Optimizer.Workers),
		multistop.WithEndpoints(ends),
	}
}

// InstructionOptions converts the instructions section. Call after Validate.
func (c Config) InstructionOptions() []instructions.Option {
	in := c.Instructions
	return []instructions.Option{
		instructions.WithHeadMin(in.HeadMin),
		instructions.WithContinueMin(in.ContinueMin),
		instructions.WithTurnThreshold(in.TurnThreshold),
		instructions.WithNearbyRadius(in.NearbyRadius),
	}
}
