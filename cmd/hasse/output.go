package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/render"
)

// printSummary writes one line describing l.
func printSummary(w io.Writer, name string, l *lattice.Lattice[lattice.BasicDecoration]) {
	fmt.Fprintf(w, "%s nodes=%d edges=%d rank=%d f=%v\n",
		color.CyanString(name), l.Nodes(), l.EdgeCount(), l.Rank(), l.FVector())
}

// writeDrawings writes the DOT document of l to dotPath ("-" is w) and the
// laid-out image to imagePath. An image path without extension gets the
// configured render format. Empty paths are skipped.
func (a *app) writeDrawings(w io.Writer, name string, l *lattice.Lattice[lattice.BasicDecoration], dotPath, imagePath string) error {
	if dotPath == "" && imagePath == "" {
		return nil
	}
	dot, err := render.DOTBytes(l, render.WithTitle(name), render.WithRankDir(a.cfg.Render.RankDir))
	if err != nil {
		return err
	}

	switch dotPath {
	case "":
	case "-":
		if _, err = w.Write(dot); err != nil {
			return err
		}
	default:
		if err = os.WriteFile(dotPath, dot, 0o644); err != nil {
			return err
		}
		a.log.Info("wrote dot", "path", dotPath, "bytes", len(dot))
	}

	if imagePath != "" {
		if filepath.Ext(imagePath) == "" {
			imagePath += "." + a.cfg.Render.Format
		}
		if err = render.ImageFile(dot, imagePath); err != nil {
			return err
		}
		a.log.Info("wrote image", "path", imagePath)
	}

	return nil
}
