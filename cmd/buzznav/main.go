// Command buzznav plans walking routes across a campus graph.
//
//	buzznav route "Student Center" "Library" "Gym"   # start, via..., end
//	buzznav tour Library Gym "Student Center"        # best visiting order
//	buzznav buildings --prefix Li
//	buzznav check
//	buzznav serve --addr :5000
//
// Dataset paths, logging and optimizer settings come from --config (YAML)
// and can be overridden by flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
