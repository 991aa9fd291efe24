package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/store"
)

func newBuildCmd(a *app) *cobra.Command {
	var dotPath, imagePath, save string
	cmd := &cobra.Command{
		Use:   "build FILE",
		Short: "Build the lattice described by a YAML input file",
		Long: `Build reads a YAML input (kind: simplicial, polytope, fan or matroid),
builds its face lattice and prints a summary. The lattice can be drawn
with --dot and --image and saved to the store with --save.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			l, err := buildLattice(cmd.Context(), in, a.cfg, a.log)
			if err != nil {
				return fmt.Errorf("%s: %w", in.Name, err)
			}
			a.log.Info("built lattice", "input", in.Name, "kind", in.Kind, "nodes", l.Nodes(), "elapsed", time.Since(start))
			if err = lattice.Validate(l); err != nil {
				a.log.Warn("lattice is incomplete", "input", in.Name, "err", err)
			}

			out := cmd.OutOrStdout()
			if dotPath != "-" {
				printSummary(out, in.Name, l)
			}
			if err = a.writeDrawings(out, in.Name, l, dotPath, imagePath); err != nil {
				return err
			}
			if save == "" {
				return nil
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			id, err := store.Put(s, save, l)
			if err != nil {
				return err
			}
			a.log.Info("saved lattice", "name", save, "id", id)

			return nil
		},
	}

	f := cmd.Flags()
	f.Bool("dual", false, "enumerate from the top down")
	f.Bool("no-artificial", false, "do not synthesize an artificial top or bottom")
	f.Int("rank-bound", -1, "keep faces of rank at most k (-1: no bound)")
	f.Int("max-nodes", 0, "abort once the lattice exceeds this many nodes (0: no limit)")
	f.String("rank-dir", "BT", "Graphviz rank direction: BT, TB, LR or RL")
	f.StringVar(&dotPath, "dot", "", "write the DOT document to this file (- for stdout)")
	f.StringVar(&imagePath, "image", "", "render the diagram to this file (svg, png or jpg)")
	f.StringVar(&save, "save", "", "save the lattice in the store under this name")
	a.bind(f, map[string]string{
		"dual":            "dual",
		"rank_bound":      "rank-bound",
		"max_nodes":       "max-nodes",
		"render.rank_dir": "rank-dir",
	})

	return cmd
}
