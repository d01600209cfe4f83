package index

import (
	"fmt"
	"iter"
	"slices"

	"github.com/kmi-jp/labeled/dataerrors"
)

// Index is an ordered set of unique labels with constant-time
// label-to-position resolution. An Index is immutable after construction and
// may be shared freely between Series and DataFrames.
type Index[L comparable] struct {
	labels []L
	name   string
	loc    map[L]int
}

// New creates an unnamed Index from labels.
//
// It fails with a validation error when labels is empty or holds a
// duplicate.
func New[L comparable](labels []L) (*Index[L], error) {
	return NewWithName(labels, "")
}

// NewWithName creates an Index carrying a descriptive name.
func NewWithName[L comparable](labels []L, name string) (*Index[L], error) {
	if len(labels) == 0 {
		return nil, dataerrors.New(dataerrors.ErrorTypeValidation, "index labels must not be empty")
	}

	loc := make(map[L]int, len(labels))
	for i, label := range labels {
		if first, ok := loc[label]; ok {
			return nil, dataerrors.Newf(dataerrors.ErrorTypeValidation, "duplicate label %v", label).
				WithDetail("label", label).
				WithDetail("first", first).
				WithDetail("duplicate", i)
		}
		loc[label] = i
	}

	return &Index[L]{
		labels: slices.Clone(labels),
		name:   name,
		loc:    loc,
	}, nil
}

// Range creates a positional Index with labels 0..n-1.
func Range(n int) (*Index[int], error) {
	labels := make([]int, max(n, 0))
	for i := range labels {
		labels[i] = i
	}
	return New(labels)
}

// GetLoc returns the position of label.
func (idx *Index[L]) GetLoc(label L) (int, error) {
	i, ok := idx.loc[label]
	if !ok {
		return 0, dataerrors.Newf(dataerrors.ErrorTypeKeyNotFound, "label %v not found", label).
			WithDetail("label", label)
	}
	return i, nil
}

// Lookup returns the position of label and whether it exists.
func (idx *Index[L]) Lookup(label L) (int, bool) {
	i, ok := idx.loc[label]
	return i, ok
}

// Contains reports whether label is part of the index.
func (idx *Index[L]) Contains(label L) bool {
	_, ok := idx.loc[label]
	return ok
}

// At returns the label at position i. It panics when i is out of range, like
// slice indexing.
func (idx *Index[L]) At(i int) L {
	return idx.labels[i]
}

// Labels returns a copy of the labels in order.
func (idx *Index[L]) Labels() []L {
	return slices.Clone(idx.labels)
}

// Name returns the descriptive name, empty by default.
func (idx *Index[L]) Name() string {
	return idx.name
}

// Len returns the number of labels.
func (idx *Index[L]) Len() int {
	return len(idx.labels)
}

// All returns an iterator over the labels in insertion order. Each call to
// the returned sequence starts from the first label.
func (idx *Index[L]) All() iter.Seq[L] {
	return func(yield func(L) bool) {
		for _, label := range idx.labels {
			if !yield(label) {
				return
			}
		}
	}
}

// Equal reports whether both indexes hold the same labels in the same order.
// Names are not compared.
func (idx *Index[L]) Equal(other *Index[L]) bool {
	if idx == nil || other == nil {
		return idx == other
	}
	return slices.Equal(idx.labels, other.labels)
}

func (idx *Index[L]) String() string {
	if idx.name == "" {
		return fmt.Sprintf("Index(%v)", idx.labels)
	}
	return fmt.Sprintf("Index(%v, name=%s)", idx.labels, idx.name)
}
