package lattice

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polylattice/core"
	"github.com/katalvlaran/polylattice/set"
)

// Record is the persisted form of a lattice. Field names follow the
// established on-disk property names.
type Record[D any] struct {
	Adjacency      []set.Set     `yaml:"ADJACENCY"`
	Decoration     []D           `yaml:"DECORATION"`
	InverseRankMap RankMapRecord `yaml:"INVERSE_RANK_MAP"`
	TopNode        int           `yaml:"TOP_NODE"`
	BottomNode     int           `yaml:"BOTTOM_NODE"`
}

// RankMapRecord stores an inverse rank map: rank → [first, last] for
// Sequential maps, rank → node list for Nonsequential ones.
type RankMapRecord struct {
	Kind   string        `yaml:"kind"`
	Ranges map[int][]int `yaml:"ranges,omitempty"`
	Lists  map[int][]int `yaml:"lists,omitempty"`
}

// ToRecord snapshots l. Adjacency lists hold the out-neighbours of every
// node in storage direction.
func (l *Lattice[D]) ToRecord() *Record[D] {
	rec := &Record[D]{
		Adjacency:  make([]set.Set, len(l.decor)),
		Decoration: l.Decorations(),
		TopNode:    l.top,
		BottomNode: l.bottom,
	}
	for n := range l.decor {
		rec.Adjacency[n] = append(set.Set{}, l.g.Neighbors(n, core.Out)...)
	}

	rm := RankMapRecord{Kind: l.Kind().String()}
	if l.Kind() == Sequential {
		rm.Ranges = make(map[int][]int, len(l.ranks.ranges))
		for r, rg := range l.ranks.ranges {
			rm.Ranges[r] = []int{rg[0], rg[1]}
		}
	} else {
		rm.Lists = make(map[int][]int, len(l.ranks.lists))
		for r, list := range l.ranks.lists {
			rm.Lists[r] = append([]int(nil), list...)
		}
	}
	rec.InverseRankMap = rm

	return rec
}

// FromRecord rebuilds a lattice from rec and validates it.
//
// Errors: ErrInconsistent when lengths, indices, extremes or the stored
// rank map disagree with the decorations; any Validate failure.
func FromRecord[D Decorated[D]](rec *Record[D]) (*Lattice[D], error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", ErrInconsistent)
	}
	if len(rec.Adjacency) != len(rec.Decoration) {
		return nil, fmt.Errorf("%w: %d adjacency lists for %d decorations",
			ErrInconsistent, len(rec.Adjacency), len(rec.Decoration))
	}

	kind := Sequential
	switch rec.InverseRankMap.Kind {
	case "", Sequential.String():
	case Nonsequential.String():
		kind = Nonsequential
	default:
		return nil, fmt.Errorf("%w: rank map kind %q", ErrInconsistent, rec.InverseRankMap.Kind)
	}

	l := New[D](kind)
	if _, err := l.AddNodes(rec.Decoration); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInconsistent, err)
	}
	for from, outs := range rec.Adjacency {
		for _, to := range outs {
			if err := l.AddEdge(from, to); err != nil {
				return nil, fmt.Errorf("%w: edge %d->%d: %v", ErrInconsistent, from, to, err)
			}
		}
	}
	for _, ext := range []struct {
		name string
		id   int
		dst  *int
	}{{"top", rec.TopNode, &l.top}, {"bottom", rec.BottomNode, &l.bottom}} {
		if ext.id < -1 || ext.id >= l.Nodes() {
			return nil, fmt.Errorf("%w: %s node %d", ErrInconsistent, ext.name, ext.id)
		}
		*ext.dst = ext.id
	}
	if err := checkStoredRanks(l, rec.InverseRankMap); err != nil {
		return nil, err
	}
	if err := Validate(l); err != nil {
		return nil, err
	}

	return l, nil
}

// checkStoredRanks compares the stored rank map with the one rebuilt from
// the decorations. An empty stored map is accepted.
func checkStoredRanks[D Decorated[D]](l *Lattice[D], rm RankMapRecord) error {
	if len(rm.Ranges) == 0 && len(rm.Lists) == 0 {
		return nil
	}
	stored := make(map[int][]int)
	for r, rg := range rm.Ranges {
		if len(rg) != 2 || rg[0] > rg[1] {
			return fmt.Errorf("%w: rank %d range %v", ErrInconsistent, r, rg)
		}
		for n := rg[0]; n <= rg[1]; n++ {
			stored[r] = append(stored[r], n)
		}
	}
	for r, list := range rm.Lists {
		stored[r] = append(stored[r], set.New(list...)...)
	}

	ranks := l.ranks.Ranks()
	if len(ranks) != len(stored) {
		return fmt.Errorf("%w: %d stored ranks, decorations carry %d", ErrInconsistent, len(stored), len(ranks))
	}
	for _, r := range ranks {
		if !set.Set(stored[r]).Equal(set.Set(l.ranks.NodesOfRank(r))) {
			return fmt.Errorf("%w: rank %d stored as %v", ErrInconsistent, r, stored[r])
		}
	}

	return nil
}

// MarshalYAML encodes the lattice as its Record.
func (l *Lattice[D]) MarshalYAML() (interface{}, error) {
	return l.ToRecord(), nil
}

// EncodeYAML is a convenience wrapper around yaml.Marshal(l.ToRecord()).
func EncodeYAML[D Decorated[D]](l *Lattice[D]) ([]byte, error) {
	return yaml.Marshal(l.ToRecord())
}

// DecodeYAML parses a Record and rebuilds the lattice via FromRecord.
func DecodeYAML[D Decorated[D]](data []byte) (*Lattice[D], error) {
	var rec Record[D]
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("lattice: decode record: %w", err)
	}

	return FromRecord(&rec)
}
