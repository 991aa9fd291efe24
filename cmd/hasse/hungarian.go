package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polylattice/matching"
	"github.com/katalvlaran/polylattice/matrix"
)

// weightsFile is the input of the hungarian command. Forbidden pairs are
// written .inf (or -.inf when maximising).
type weightsFile struct {
	Weights [][]float64 `yaml:"weights"`
}

func newHungarianCmd(a *app) *cobra.Command {
	var maximize bool
	cmd := &cobra.Command{
		Use:   "hungarian FILE",
		Short: "Solve the assignment problem of a square weight matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			dec := yaml.NewDecoder(bytes.NewReader(raw))
			dec.KnownFields(true)
			var wf weightsFile
			if err = dec.Decode(&wf); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			w, err := matrix.NewDenseFrom(wf.Weights)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			opts := []matching.Option{matching.WithContext(cmd.Context())}
			if maximize {
				opts = append(opts, matching.WithMaximize())
			}
			res, err := matching.Hungarian(w, opts...)
			if err != nil {
				return err
			}
			a.log.Debug("assignment solved", "rows", w.Rows(), "maximize", maximize)

			out := cmd.OutOrStdout()
			if res.Infinite {
				fmt.Fprintln(out, color.YellowString("no finite assignment"))
				return nil
			}
			for i, j := range res.Matching {
				x, _ := w.At(i, j)
				fmt.Fprintf(out, "%d -> %d (%g)\n", i, j, x)
			}
			fmt.Fprintf(out, "value %s\n", color.GreenString("%g", res.Value))

			return nil
		},
	}
	cmd.Flags().BoolVar(&maximize, "maximize", false, "maximise the total weight")

	return cmd
}
