package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/buzznav/httpapi"
	"github.com/katalvlaran/buzznav/tsp"
)

func (a *app) newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route START [VIA...] END",
		Short: "Shortest route from START through each VIA, in order, to END",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nav, err := a.navigator()
			if err != nil {
				return err
			}
			res, err := nav.Navigate(cmd.Context(), args[0], args[1:len(args)-1], args[len(args)-1])
			if err != nil {
				return a.failure(err)
			}
			return a.printResult(res, args)
		},
	}
}

func (a *app) newTourCmd() *cobra.Command {
	var (
		fixedEnds bool
		workers   int
		maxStops  int
	)
	cmd := &cobra.Command{
		Use:   "tour BUILDING...",
		Short: "Visit every BUILDING once in the cheapest order",
		Long: `Visit every BUILDING once in the cheapest order.

By default any stop may come first or last. With --fixed-ends the tour
starts at the first BUILDING and ends at the last one.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fixedEnds {
				a.cfg.Optimizer.Endpoints = tsp.EndpointsFixed.String()
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Optimizer.Workers = workers
			}
			if cmd.Flags().Changed("max-stops") {
				a.cfg.Optimizer.MaxStops = maxStops
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			nav, err := a.navigator()
			if err != nil {
				return err
			}
			res, err := nav.Tour(cmd.Context(), args)
			if err != nil {
				return a.failure(err)
			}
			return a.printResult(res, res.Order)
		},
	}
	cmd.Flags().BoolVar(&fixedEnds, "fixed-ends", false, "start at the first and end at the last building")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent shortest-path sweeps (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&maxStops, "max-stops", 0, "largest accepted number of buildings")

	return cmd
}

func (a *app) newBuildingsCmd() *cobra.Command {
	var (
		prefix string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "buildings",
		Short: "List building names, optionally by case-insensitive prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nav, err := a.navigator()
			if err != nil {
				return err
			}
			names := nav.Buildings(prefix, limit)
			if a.asJSON {
				if names == nil {
					names = []string{}
				}
				return a.writeJSON(names)
			}
			for _, n := range names {
				fmt.Fprintln(a.stdout, n)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "case-insensitive name prefix")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum names to list (0 = all)")

	return cmd
}

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the dataset and report counts and unreachable buildings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nav, err := a.navigator()
			if err != nil {
				return err
			}
			rep, err := nav.Diagnose(cmd.Context())
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.writeJSON(rep)
			}
			a.printReport(rep)
			return nil
		},
	}
}

func (a *app) newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			nav, err := a.navigator()
			if err != nil {
				return err
			}
			return httpapi.NewServer(nav, a.cfg.Server, a.log).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}
