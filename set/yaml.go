package set

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML writes a set as a flow sequence: [0, 1, 2].
func (s Set) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, x := range s {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(x)})
	}

	return n, nil
}

// UnmarshalYAML accepts any integer sequence and normalises it.
func (s *Set) UnmarshalYAML(value *yaml.Node) error {
	var elems []int
	if err := value.Decode(&elems); err != nil {
		return err
	}
	*s = New(elems...)

	return nil
}
