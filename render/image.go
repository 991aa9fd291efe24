package render

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"
)

// ErrFormat is returned for an output format Graphviz cannot produce here.
var ErrFormat = errors.New("render: unsupported image format")

var formats = map[string]graphviz.Format{
	"svg": graphviz.SVG,
	"png": graphviz.PNG,
	"jpg": graphviz.JPG,
	"dot": graphviz.XDOT,
}

// ParseFormat maps a format name ("svg", "png", "jpg", "dot") to its
// Graphviz format.
func ParseFormat(name string) (graphviz.Format, error) {
	f, ok := formats[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrFormat, name)
	}

	return f, nil
}

// FormatOf returns the format named by path's extension.
func FormatOf(path string) (graphviz.Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Image lays out the DOT document dot and writes it to w in format.
func Image(dot []byte, format graphviz.Format, w io.Writer) (err error) {
	g := graphviz.New()
	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		return fmt.Errorf("render: parse dot: %w", err)
	}
	defer func() {
		if cerr := graph.Close(); cerr != nil && err == nil {
			err = cerr
		}
		g.Close()
	}()
	if err = g.Render(graph, format, w); err != nil {
		return fmt.Errorf("render: layout: %w", err)
	}

	return nil
}

// ImageFile is Image into the file at path, in the format named by its
// extension.
func ImageFile(dot []byte, path string) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	g := graphviz.New()
	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		return fmt.Errorf("render: parse dot: %w", err)
	}
	defer func() {
		if cerr := graph.Close(); cerr != nil && err == nil {
			err = cerr
		}
		g.Close()
	}()
	if err = g.RenderFilename(graph, format, path); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}

	return nil
}
