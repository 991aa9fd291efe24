// Command hasse builds, stores and draws Hasse diagrams of simplicial
// complexes, polytopes, polyhedral fans and matroids, and solves
// assignment problems with the Hungarian method.
//
//	hasse build complex.yaml --dot out.dot --image out.svg --save sphere
//	hasse batch inputs/ --workers 8
//	hasse show sphere --dot -
//	hasse hungarian weights.yaml --maximize
//
// Settings come from flags, POLYLATTICE_* environment variables and an
// optional YAML file given with --config.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}
