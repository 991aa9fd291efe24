package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/store"
)

func newBatchCmd(a *app) *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "batch DIR",
		Short: "Build every YAML input of a directory in parallel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd, args[0], save)
		},
	}
	cmd.Flags().Int("workers", 4, "number of parallel builds")
	cmd.Flags().BoolVar(&save, "save", false, "save every lattice under its input name")
	a.bind(cmd.Flags(), map[string]string{"workers": "workers"})

	return cmd
}

type batchResult struct {
	name string
	l    *lattice.Lattice[lattice.BasicDecoration]
}

// runBatch builds the inputs of dir with at most cfg.Workers builds in
// flight. The first failure cancels the remaining builds. Summaries are
// printed in file name order once all builds are done.
func (a *app) runBatch(cmd *cobra.Command, dir string, save bool) error {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		m, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return err
		}
		paths = append(paths, m...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w: no YAML inputs in %s", errInput, dir)
	}
	sort.Strings(paths)

	var s *store.Store
	if save {
		var err error
		if s, err = a.openStore(); err != nil {
			return err
		}
		defer s.Close()
	}

	results := make([]batchResult, len(paths))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(a.cfg.Workers)
	for i, path := range paths {
		g.Go(func() error {
			in, err := readInput(path)
			if err != nil {
				return err
			}
			start := time.Now()
			l, err := buildLattice(ctx, in, a.cfg, a.log)
			if err != nil {
				return fmt.Errorf("%s: %w", in.Name, err)
			}
			a.log.Debug("built lattice", "input", in.Name, "nodes", l.Nodes(), "elapsed", time.Since(start))
			if s != nil {
				if _, err = store.Put(s, in.Name, l); err != nil {
					return err
				}
			}
			results[i] = batchResult{name: in.Name, l: l}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	a.log.Info("batch done", "inputs", len(paths), "workers", a.cfg.Workers)

	out := cmd.OutOrStdout()
	for _, r := range results {
		printSummary(out, r.name, r.l)
	}

	return nil
}
