package sortedset

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the set as an ascending JSON array.
func (s *sortedSet[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Entries())
}

// UnmarshalJSON replaces the contents of the set with the elements of a JSON
// array. The array may be unordered and contain duplicates. On error the set
// is left untouched.
func (s *sortedSet[T]) UnmarshalJSON(data []byte) error {
	var elems []T

	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("decoding sorted set from JSON: %w", err)
	}

	s.reset(elems)

	return nil
}

// MarshalYAML encodes the set as an ascending YAML sequence.
func (s *sortedSet[T]) MarshalYAML() (any, error) {
	return s.Entries(), nil
}

// UnmarshalYAML replaces the contents of the set with the elements of a YAML
// sequence. On error the set is left untouched.
func (s *sortedSet[T]) UnmarshalYAML(node *yaml.Node) error {
	var elems []T

	if err := node.Decode(&elems); err != nil {
		return fmt.Errorf("decoding sorted set from YAML: %w", err)
	}

	s.reset(elems)

	return nil
}

// FromJSON builds a set from a JSON array. SortedSet does not expose
// UnmarshalJSON, so this is the way to decode one; struct fields of type
// SortedSet encode but cannot be decoded in place.
func FromJSON[T Element[T]](data []byte) (SortedSet[T], error) {
	s := newSortedSet[T](nil)

	if err := s.UnmarshalJSON(data); err != nil {
		return nil, err
	}

	return s, nil
}

// FromYAML builds a set from a YAML sequence. Empty input yields an empty
// set. Like FromJSON, it is the decoding counterpart of MarshalYAML.
func FromYAML[T Element[T]](data []byte) (SortedSet[T], error) {
	var node yaml.Node

	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("decoding sorted set from YAML: %w", err)
	}

	s := newSortedSet[T](nil)
	if node.Kind == 0 {
		return s, nil
	}

	if err := s.UnmarshalYAML(&node); err != nil {
		return nil, err
	}

	return s, nil
}
