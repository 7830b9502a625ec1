package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katalvlaran/buzznav/navigator"
)

// failure prints err as a JSON error result when --json is set and returns
// it so the process exits non-zero.
func (a *app) failure(err error) error {
	if a.asJSON {
		if werr := a.writeJSON(navigator.Failure(err)); werr != nil {
			return werr
		}
	}

	return err
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) printResult(res navigator.Result, stops []string) error {
	if a.asJSON {
		return a.writeJSON(res)
	}

	w := a.stdout
	fmt.Fprintf(w, "Route: %s\n", strings.Join(stops, " -> "))
	fmt.Fprintf(w, "Total distance: %.2f meters\n", res.Distance)
	ids := make([]string, len(res.Path))
	for i, id := range res.Path {
		ids[i] = fmt.Sprint(id)
	}
	fmt.Fprintf(w, "Path: %s\n", strings.Join(ids, " -> "))
	fmt.Fprintln(w, "Directions:")
	for i, line := range res.Instructions {
		fmt.Fprintf(w, "  %d. %s\n", i+1, line)
	}

	return nil
}

func (a *app) printReport(rep navigator.Report) {
	w := a.stdout
	fmt.Fprintf(w, "Nodes: %d\nEdges: %d\nBuildings: %d\nCoordinates: %t\n",
		rep.Nodes, rep.Edges, rep.Buildings, rep.Coordinates)
	fmt.Fprintf(w, "Strongly connected components: %d (largest %d nodes)\n", rep.Components, rep.LargestComponent)
	if len(rep.Stranded) > 0 {
		fmt.Fprintf(w, "Outside the largest component (%d): %s\n", len(rep.Stranded), strings.Join(rep.Stranded, ", "))
	}
	if rep.Origin == "" {
		return
	}
	fmt.Fprintf(w, "Reachable from %s: %d nodes\n", rep.Origin, rep.ReachableNodes)
	if len(rep.Unreachable) == 0 {
		fmt.Fprintln(w, "All buildings reachable")
		return
	}
	fmt.Fprintf(w, "Unreachable buildings (%d):\n", len(rep.Unreachable))
	for _, name := range rep.Unreachable {
		fmt.Fprintf(w, "  %s\n", name)
	}
}
