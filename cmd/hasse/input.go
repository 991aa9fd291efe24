package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/inconshreveable/log15"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polylattice/config"
	"github.com/katalvlaran/polylattice/fan"
	"github.com/katalvlaran/polylattice/lattice"
	"github.com/katalvlaran/polylattice/matrix"
	"github.com/katalvlaran/polylattice/matroid"
	"github.com/katalvlaran/polylattice/polytope"
	"github.com/katalvlaran/polylattice/set"
	"github.com/katalvlaran/polylattice/simplicial"
)

const (
	kindSimplicial = "simplicial"
	kindPolytope   = "polytope"
	kindFan        = "fan"
	kindMatroid    = "matroid"
)

var errInput = errors.New("invalid input")

// input is the YAML document describing one object to build. Which fields
// are read depends on Kind:
//
//	simplicial: facets
//	polytope:   vertices, facets (vertex sets of the facets), far
//	fan:        vertices, dim, cells, cell_facets, cell_dims, far
//	matroid:    vertices, bases or circuits, lattice
type input struct {
	Kind       string      `yaml:"kind" validate:"required,oneof=simplicial polytope fan matroid"`
	Name       string      `yaml:"name"`
	Vertices   int         `yaml:"vertices" validate:"gte=0"`
	Dim        int         `yaml:"dim"`
	Facets     []set.Set   `yaml:"facets"`
	Cells      []set.Set   `yaml:"cells"`
	CellFacets [][]set.Set `yaml:"cell_facets"`
	CellDims   []int       `yaml:"cell_dims"`
	Far        set.Set     `yaml:"far"`
	Bases      []set.Set   `yaml:"bases"`
	Circuits   []set.Set   `yaml:"circuits"`
	Lattice    string      `yaml:"lattice" validate:"omitempty,oneof=flats cyclic_flats"`
}

var validate = validator.New()

// readInput decodes and validates the input file at path. A missing name
// defaults to the file name without extension.
func readInput(path string) (*input, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var in input
	if err = dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err = in.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if in.Name == "" {
		in.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &in, nil
}

func (in *input) validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", errInput, err)
	}
	switch in.Kind {
	case kindSimplicial, kindPolytope:
		if len(in.Facets) == 0 {
			return fmt.Errorf("%w: %s needs facets", errInput, in.Kind)
		}
	case kindMatroid:
		if len(in.Bases) == 0 && len(in.Circuits) == 0 {
			return fmt.Errorf("%w: matroid needs bases or circuits", errInput)
		}
	}

	return nil
}

// buildLattice builds the lattice described by in under the settings of cfg.
func buildLattice(ctx context.Context, in *input, cfg *config.Config, log log15.Logger) (*lattice.Lattice[lattice.BasicDecoration], error) {
	opts := []lattice.BuildOption{
		lattice.WithContext(ctx),
		lattice.WithLogger(log.New("input", in.Name)),
		lattice.WithMaxNodes(cfg.MaxNodes),
	}
	if !cfg.ArtificialNode {
		opts = append(opts, lattice.WithArtificialNode(false))
	}

	switch in.Kind {
	case kindSimplicial:
		c, err := simplicial.New(in.Facets)
		if err != nil {
			return nil, err
		}
		return simplicial.HasseDiagram(c,
			simplicial.WithUpperBound(cfg.RankBound),
			simplicial.WithDual(cfg.Dual),
			simplicial.WithBuildOptions(opts...))

	case kindPolytope:
		vif, err := matrix.FromRows(in.Vertices, in.Facets)
		if err != nil {
			return nil, err
		}
		popts := []polytope.Option{polytope.WithDual(cfg.Dual), polytope.WithBuildOptions(opts...)}
		if cfg.RankBound >= 0 {
			popts = append(popts, polytope.RankBounded(cfg.RankBound))
		}
		if !in.Far.Empty() {
			return polytope.BoundedFaceLattice(vif, in.Far, popts...)
		}
		return polytope.FaceLattice(vif, popts...)

	case kindFan:
		var copts []fan.ComplexOption
		if in.CellFacets != nil {
			copts = append(copts, fan.WithCellFacets(in.CellFacets))
		}
		if in.CellDims != nil {
			copts = append(copts, fan.WithCellDims(in.CellDims))
		}
		c, err := fan.New(in.Cells, in.Vertices, in.Dim, copts...)
		if err != nil {
			return nil, err
		}
		fopts := []fan.Option{fan.WithFarVertices(in.Far), fan.WithBuildOptions(opts...)}
		if cfg.RankBound >= 0 {
			fopts = append(fopts, fan.WithRankUpperBound(cfg.RankBound))
		}
		return fan.HasseDiagram(c, fopts...)

	case kindMatroid:
		var (
			m   *matroid.Matroid
			err error
		)
		if len(in.Bases) > 0 {
			m, err = matroid.FromBases(in.Vertices, in.Bases)
		} else {
			m, err = matroid.FromCircuits(in.Vertices, in.Circuits)
		}
		if err != nil {
			return nil, err
		}
		if in.Lattice == "flats" {
			return matroid.Flats(m, opts...)
		}
		return matroid.CyclicFlats(m)
	}

	return nil, fmt.Errorf("%w: kind %q", errInput, in.Kind)
}
