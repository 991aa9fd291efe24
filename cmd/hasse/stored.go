package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/store"
)

// resolve maps REF, either a lattice id or a saved name, to an id.
func resolve(s *store.Store, ref string) (uuid.UUID, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return id, nil
	}

	return s.Resolve(ref)
}

func newShowCmd(a *app) *cobra.Command {
	var dotPath, imagePath string
	cmd := &cobra.Command{
		Use:   "show REF",
		Short: "Print a stored lattice, addressed by id or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			id, err := resolve(s, args[0])
			if err != nil {
				return err
			}
			l, err := store.Get[lattice.BasicDecoration](s, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dotPath != "-" {
				printSummary(out, args[0], l)
				for _, r := range l.InverseRankMap().Ranks() {
					fmt.Fprintf(out, "  %s", color.New(color.Bold).Sprintf("rank %d:", r))
					for _, n := range l.NodesOfRank(r) {
						fmt.Fprintf(out, " %s", l.Face(n))
					}
					fmt.Fprintln(out)
				}
			}

			return a.writeDrawings(out, args[0], l, dotPath, imagePath)
		},
	}
	cmd.Flags().StringVar(&dotPath, "dot", "", "write the DOT document to this file (- for stdout)")
	cmd.Flags().StringVar(&imagePath, "image", "", "render the diagram to this file (svg, png or jpg)")

	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the stored lattices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			metas, err := s.List()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tNODES\tEDGES\tRANK\tCREATED")
			for _, m := range metas {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
					m.ID, m.Name, m.Nodes, m.Edges, m.Rank, m.Created.Format("2006-01-02 15:04:05"))
			}

			return tw.Flush()
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete REF",
		Short: "Delete a stored lattice, addressed by id or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			id, err := resolve(s, args[0])
			if err != nil {
				return err
			}
			if err = s.Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)

			return nil
		},
	}
}
