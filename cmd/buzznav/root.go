package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/buzznav/config"
	"github.com/katalvlaran/buzznav/internal/ctxlog"
	"github.com/katalvlaran/buzznav/loader"
	"github.com/katalvlaran/buzznav/navigator"
)

// app carries the state shared by every subcommand.
type app struct {
	stdout, stderr io.Writer

	configPath string
	cfg        config.Config
	log        *slog.Logger

	// flag overrides, applied over the config file when set
	graphPath, coordsPath, buildingsPath string
	logLevel, logFormat                  string
	asJSON                               bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "buzznav",
		Short:         "Campus walking directions with via points and multi-stop optimization",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.graphPath, "graph", "", "edge list CSV (src,dst,length)")
	pf.StringVar(&a.coordsPath, "coords", "", "node coordinates CSV (node_id,x,y)")
	pf.StringVar(&a.buildingsPath, "buildings", "", "building mapping CSV (building_name,node_id)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "", "text or json")
	pf.BoolVar(&a.asJSON, "json", false, "print results as JSON")

	root.AddCommand(
		a.newRouteCmd(),
		a.newTourCmd(),
		a.newBuildingsCmd(),
		a.newCheckCmd(),
		a.newServeCmd(),
	)

	return root
}

// setup loads the config, applies flag overrides and installs a run-scoped
// logger into the command context.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	override(&cfg.Data.Graph, a.graphPath)
	override(&cfg.Data.Coordinates, a.coordsPath)
	override(&cfg.Data.Buildings, a.buildingsPath)
	override(&cfg.Log.Level, a.logLevel)
	override(&cfg.Log.Format, a.logFormat)
	a.cfg = cfg
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.log = ctxlog.New(cfg.Log.Level, cfg.Log.Format, a.stderr).
		With(slog.String("run_id", uuid.New().String()), slog.String("command", cmd.Name()))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctxlog.WithLogger(ctx, a.log))

	return nil
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// navigator loads the dataset and wraps it with the configured options.
func (a *app) navigator() (*navigator.Navigator, error) {
	ds, err := loader.LoadDataset(loader.Paths{
		Graph:       a.cfg.Data.Graph,
		Coordinates: a.cfg.Data.Coordinates,
		Buildings:   a.cfg.Data.Buildings,
	})
	if err != nil {
		return nil, err
	}
	a.log.Debug("dataset loaded",
		slog.Int("nodes", ds.Graph.NodeCount()),
		slog.Int("edges", ds.Graph.EdgeCount()),
		slog.Int("buildings", ds.Buildings.Len()),
	)

	nav, err := navigator.New(ds.Graph, ds.Buildings,
		navigator.WithTourOptions(a.cfg.MultistopOptions()...),
		navigator.WithInstructionOptions(a.cfg.InstructionOptions()...),
	)
	if err != nil {
		return nil, fmt.Errorf("buzznav: %w", err)
	}

	return nav, nil
}
