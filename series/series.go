package series

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"

	"github.com/kmi-jp/labeled/dataerrors"
	"github.com/kmi-jp/labeled/index"
)

// Series is a positional array of values bound to an Index. The values are
// owned by the Series; the Index is shared and never copied.
type Series[L comparable, T any] struct {
	values []T
	index  *index.Index[L]
}

// New creates a Series with positional labels 0..n-1.
func New[T any](values []T) (*Series[int, T], error) {
	if len(values) == 0 {
		return nil, dataerrors.New(dataerrors.ErrorTypeValidation, "series values must not be empty")
	}
	idx, err := index.Range(len(values))
	if err != nil {
		return nil, err
	}
	return NewWithIndex(values, idx)
}

// NewWithIndex creates a Series labeled by idx. The lengths of values and idx
// must match.
func NewWithIndex[L comparable, T any](values []T, idx *index.Index[L]) (*Series[L, T], error) {
	if len(values) == 0 {
		return nil, dataerrors.New(dataerrors.ErrorTypeValidation, "series values must not be empty")
	}
	if idx == nil {
		return nil, dataerrors.New(dataerrors.ErrorTypeValidation, "series index must not be nil")
	}
	if idx.Len() != len(values) {
		return nil, dataerrors.Newf(dataerrors.ErrorTypeValidation,
			"index has %d labels but series has %d values", idx.Len(), len(values)).
			WithDetail("labels", idx.Len()).
			WithDetail("values", len(values))
	}
	return &Series[L, T]{
		values: slices.Clone(values),
		index:  idx,
	}, nil
}

// derive builds a Series sharing s's Index. values must already have the
// right length and must not alias s.values.
func derive[L comparable, T, U any](s *Series[L, T], values []U) *Series[L, U] {
	return &Series[L, U]{values: values, index: s.index}
}

// Index returns the shared Index.
func (s *Series[L, T]) Index() *index.Index[L] {
	return s.index
}

// Values returns a copy of the values in index order.
func (s *Series[L, T]) Values() []T {
	return slices.Clone(s.values)
}

// Len returns the number of values.
func (s *Series[L, T]) Len() int {
	return len(s.values)
}

// Shape returns (len,).
func (s *Series[L, T]) Shape() [1]int {
	return [1]int{len(s.values)}
}

// DType returns the name of the element kind, e.g. "int", "float64" or
// "string".
func (s *Series[L, T]) DType() string {
	return reflect.TypeFor[T]().Kind().String()
}

// Loc returns the value stored under label. A missing label is a
// key_not_found error.
func (s *Series[L, T]) Loc(label L) (T, error) {
	i, err := s.index.GetLoc(label)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.values[i], nil
}

// Get returns the value stored under label and whether the label exists.
func (s *Series[L, T]) Get(label L) (T, bool) {
	i, ok := s.index.Lookup(label)
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[i], true
}

// ILoc returns the value at position i.
func (s *Series[L, T]) ILoc(i int) (T, error) {
	if i < 0 || i >= len(s.values) {
		var zero T
		return zero, dataerrors.Newf(dataerrors.ErrorTypeKeyNotFound,
			"position %d out of range [0, %d)", i, len(s.values)).
			WithDetail("position", i)
	}
	return s.values[i], nil
}

// All returns an iterator over the values in index order.
func (s *Series[L, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Items returns an iterator over (label, value) pairs in index order.
func (s *Series[L, T]) Items() iter.Seq2[L, T] {
	return func(yield func(L, T) bool) {
		for i, v := range s.values {
			if !yield(s.index.At(i), v) {
				return
			}
		}
	}
}

// Apply returns a new Series holding fn applied to every value. s is not
// modified.
func (s *Series[L, T]) Apply(fn func(T) T) *Series[L, T] {
	return Map(s, fn)
}

// Map returns a new Series holding fn applied to every value, possibly
// changing the element type.
func Map[L comparable, T, U any](s *Series[L, T], fn func(T) U) *Series[L, U] {
	values := make([]U, len(s.values))
	for i, v := range s.values {
		values[i] = fn(v)
	}
	return derive(s, values)
}

// TryMap is Map for conversions that can fail, such as parsing ingested
// strings. The first failure is returned as a type_mismatch error naming the
// offending label.
func TryMap[L comparable, T, U any](s *Series[L, T], fn func(T) (U, error)) (*Series[L, U], error) {
	values := make([]U, len(s.values))
	for i, v := range s.values {
		u, err := fn(v)
		if err != nil {
			return nil, dataerrors.Wrap(err, dataerrors.ErrorTypeTypeMismatch, "cannot convert value").
				WithDetail("label", s.index.At(i)).
				WithDetail("value", v)
		}
		values[i] = u
	}
	return derive(s, values), nil
}

// String renders one "<label>\t<value>" line per element.
func (s *Series[L, T]) String() string {
	var b strings.Builder
	for i, v := range s.values {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%v\t%v", s.index.At(i), v)
	}
	return b.String()
}
