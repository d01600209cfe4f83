package series

import (
	gojson "github.com/goccy/go-json"
)

type seriesJSON[L comparable, T any] struct {
	Name   string `json:"name,omitempty"`
	Index  []L    `json:"index"`
	Values []T    `json:"values"`
}

// MarshalJSON encodes the Series as {"name", "index", "values"}; the name is
// the Index name.
func (s *Series[L, T]) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(seriesJSON[L, T]{
		Name:   s.index.Name(),
		Index:  s.index.Labels(),
		Values: s.values,
	})
}
