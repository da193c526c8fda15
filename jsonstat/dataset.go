package jsonstat

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Dataset is a JSON-stat 2.0 dataset response.
//
// ID lists the dimension identifiers in axis order and Size their
// cardinalities in the same order. Value is the row-major linearization of
// the cube (last dimension fastest-varying); its length equals the product
// of all sizes. A nil entry in Value is an absent observation.
type Dataset struct {
	Class     string               `json:"class,omitempty"`
	Label     string               `json:"label"`
	Source    string               `json:"source"`
	Updated   string               `json:"updated"`
	ID        []string             `json:"id"`
	Size      []int                `json:"size"`
	Dimension map[string]Dimension `json:"dimension"`
	Value     []*float64           `json:"value"`
}

// Dimension is one axis of the cube.
type Dimension struct {
	Label    string   `json:"label"`
	Category Category `json:"category"`
}

// Category holds the admissible values of a dimension. Label maps category
// codes to display labels; Index carries the category ordering.
type Category struct {
	Index CategoryIndex     `json:"index"`
	Label map[string]string `json:"label"`
}

// CategoryIndex is the ordered list of category codes for a dimension.
//
// The wire format is polymorphic: either an ordered array of codes, or an
// object mapping each code to its zero-based position. Both forms normalize
// to Codes on unmarshal, so the rest of the decoder only ever sees one
// representation.
type CategoryIndex struct {
	Codes []string
}

// UnmarshalJSON accepts both the array and the object form of a JSON-stat
// category index. Object entries are sorted by ascending position.
func (ci *CategoryIndex) UnmarshalJSON(data []byte) error {
	var codes []string
	if err := json.Unmarshal(data, &codes); err == nil {
		ci.Codes = codes
		return nil
	}

	var positions map[string]float64
	if err := json.Unmarshal(data, &positions); err != nil {
		return fmt.Errorf("category index is neither an array nor an object: %w", err)
	}

	type entry struct {
		code string
		pos  float64
	}
	entries := make([]entry, 0, len(positions))
	for code, pos := range positions {
		entries = append(entries, entry{code: code, pos: pos})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].pos != entries[j].pos {
			return entries[i].pos < entries[j].pos
		}
		return entries[i].code < entries[j].code
	})

	ci.Codes = make([]string, len(entries))
	for i, e := range entries {
		ci.Codes[i] = e.code
	}
	return nil
}

// MarshalJSON writes the normalized array form.
func (ci CategoryIndex) MarshalJSON() ([]byte, error) {
	return json.Marshal(ci.Codes)
}
