// Package buzznav is a campus walking-directions engine: shortest routes
// over a directed, weighted footpath graph, routes through ordered via
// points, optimal multi-stop visiting orders and turn-by-turn text.
//
// 🚀 What is inside?
//
//	A concurrent routing core plus the plumbing to serve it:
//		• Graph store: dense node ids, one-way arcs, lat/lon coordinates, sealed for parallel reads
//		• A*: haversine heuristic, lazy deletion, "no route" as +Inf instead of an error
//		• Via points: one A* per segment in parallel, atomic failure, junction-free merge
//		• Multi-stop: parallel Dijkstra sweeps feeding a Held–Karp dynamic program
//		• Directions: bearings, turn classification and nearby-building landmarks
//		• Diagnostics: BFS reachability and strongly connected components
//
// ✨ Why this layout?
//
//   - Algorithm packages (core, astar, dijkstra, tsp, geo, bfs, dfs) never log
//     and never block on I/O; they are plain functions over *core.Graph
//   - Parallel regions go through internal/parallel: bounded errgroup fork-join,
//     worker panics become errors of the one request that caused them
//   - Every failure is a sentinel error you can match with errors.Is
//
// Packages:
//
//	core/         — Graph, Arc, Coord, coordinate attachment and sealing
//	geo/          — haversine distance, bearings, turn angles, compass names
//	astar/        — single-pair shortest path
//	dijkstra/     — single-source sweeps with early exit on target sets
//	route/        — via-point segmentation and path merge
//	tsp/          — exact Held–Karp open paths over a distance matrix
//	multistop/    — building names in, cheapest visiting order out
//	building/     — name registry, prefix search, nearest-building lookup
//	instructions/ — turn-by-turn synthesis
//	bfs/, dfs/    — hop reachability and strongly connected components
//	loader/       — CSV dataset loading
//	navigator/    — request facade with tracing, metrics and logging
//	httpapi/      — JSON API (gin)
//	config/       — YAML configuration
//	builder/      — synthetic campuses for tests and benchmarks
//	cmd/buzznav/  — the command-line tool
//
// Quick ASCII example (one-way square, 100 m per side):
//
//	    1───►2
//	    ▲    │
//	    │    ▼
//	    0    3
//
// Route 0→3 is 0,1,2,3 at 300 m; 3→0 has no route.
//
//	go run ./cmd/buzznav route "Student Center" "Library" "Gym"
package buzznav
