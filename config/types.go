// Package config holds the buzznav runtime configuration: dataset paths,
// HTTP server, logging, optimizer and instruction thresholds.
//
// Values come from Default, optionally overlaid by a YAML file via Load;
// command-line flags override both.
package config

import "errors"

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the root document.
type Config struct {
	Data         DataConfig         `yaml:"data"`
	Server       ServerConfig       `yaml:"server"`
	Log          LogConfig          `yaml:"log"`
	Optimizer    OptimizerConfig    `yaml:"optimizer"`
	Instructions InstructionsConfig `yaml:"instructions"`
}

// DataConfig points at the three CSV files.
type DataConfig struct {
	Graph       string `yaml:"graph"`       // adj_list.csv
	Coordinates string `yaml:"coordinates"` // node_coordinates.csv
	Buildings   string `yaml:"buildings"`   // building_mapping.csv
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// OptimizerConfig tunes multi-stop optimization.
type OptimizerConfig struct {
	MaxStops  int    `yaml:"max_stops"`
	Workers   int    `yaml:"workers"`   // 0 = GOMAXPROCS
	Endpoints string `yaml:"endpoints"` // free or fixed
}

// InstructionsConfig holds synthesizer thresholds in metres and degrees.
type InstructionsConfig struct {
	HeadMin       float64 `yaml:"head_min_m"`
	ContinueMin   float64 `yaml:"continue_min_m"`
	TurnThreshold float64 `yaml:"turn_threshold_deg"`
	NearbyRadius  float64 `yaml:"nearby_radius_m"`
}
