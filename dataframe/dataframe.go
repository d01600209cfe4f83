package dataframe

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/kmi-jp/labeled/dataerrors"
	"github.com/kmi-jp/labeled/index"
	"github.com/kmi-jp/labeled/series"
)

// DataFrame is an ordered collection of equally long columns addressed by
// the labels of a column Index.
//
// Rows are aligned by position. The row labels of the member Series are not
// compared with each other, only their lengths.
//
// DataFrames are immutable; the member Series are shared with the caller,
// not copied.
type DataFrame[C comparable] struct {
	values  []series.Column
	columns *index.Index[C]
}

// New creates a DataFrame with positional column labels 0..n-1.
func New(cols []series.Column) (*DataFrame[int], error) {
	if len(cols) == 0 {
		return nil, dataerrors.New(dataerrors.ErrorTypeValidation, "dataframe needs at least one column")
	}
	columns, err := index.Range(len(cols))
	if err != nil {
		return nil, err
	}
	return NewWithColumns(cols, columns)
}

// NewWithColumns creates a DataFrame whose columns are labeled by columns.
func NewWithColumns[C comparable](cols []series.Column, columns *index.Index[C]) (*DataFrame[C], error) {
	if len(cols) == 0 {
		return nil, dataerrors.New(dataerrors.ErrorTypeValidation, "dataframe needs at least one column")
	}
	if columns == nil {
		return nil, dataerrors.New(dataerrors.ErrorTypeValidation, "column index must not be nil")
	}
	if columns.Len() != len(cols) {
		return nil, dataerrors.Newf(dataerrors.ErrorTypeValidation,
			"column index has %d labels but dataframe has %d columns", columns.Len(), len(cols)).
			WithDetail("labels", columns.Len()).
			WithDetail("columns", len(cols))
	}

	rows := -1
	for i, c := range cols {
		if isNil(c) {
			return nil, dataerrors.Newf(dataerrors.ErrorTypeValidation, "column %v is nil", columns.At(i)).
				WithDetail("column", columns.At(i))
		}
		if rows == -1 {
			rows = c.Len()
		} else if c.Len() != rows {
			return nil, dataerrors.Newf(dataerrors.ErrorTypeValidation,
				"column %v has %d rows, expected %d", columns.At(i), c.Len(), rows).
				WithDetail("column", columns.At(i)).
				WithDetail("rows", c.Len()).
				WithDetail("expected", rows)
		}
	}

	return &DataFrame[C]{
		values:  slices.Clone(cols),
		columns: columns,
	}, nil
}

// Columns returns the column Index.
func (df *DataFrame[C]) Columns() *index.Index[C] {
	return df.columns
}

// Values returns the columns in order. The slice is a copy; the columns are
// the Series the DataFrame was built from.
func (df *DataFrame[C]) Values() []series.Column {
	return slices.Clone(df.values)
}

// Get returns the column registered under label and whether it exists.
func (df *DataFrame[C]) Get(label C) (series.Column, bool) {
	i, ok := df.columns.Lookup(label)
	if !ok {
		return nil, false
	}
	return df.values[i], true
}

// Loc returns the column registered under label, or a key_not_found error.
func (df *DataFrame[C]) Loc(label C) (series.Column, error) {
	i, err := df.columns.GetLoc(label)
	if err != nil {
		return nil, err
	}
	return df.values[i], nil
}

// All returns an iterator over the column labels in order.
func (df *DataFrame[C]) All() iter.Seq[C] {
	return df.columns.All()
}

// Items returns an iterator over (column label, column) pairs in order.
func (df *DataFrame[C]) Items() iter.Seq2[C, series.Column] {
	return func(yield func(C, series.Column) bool) {
		for i, c := range df.values {
			if !yield(df.columns.At(i), c) {
				return
			}
		}
	}
}

// Shape returns (rows, columns).
func (df *DataFrame[C]) Shape() [2]int {
	return [2]int{df.values[0].Len(), len(df.values)}
}

func (df *DataFrame[C]) String() string {
	shape := df.Shape()
	return fmt.Sprintf("DataFrame(%d, %d)", shape[0], shape[1])
}

// Col returns the column registered under label as a typed Series. It fails
// with key_not_found for an unknown label and with type_mismatch when the
// column holds other label or element types.
func Col[L comparable, T any, C comparable](df *DataFrame[C], label C) (*series.Series[L, T], error) {
	c, err := df.Loc(label)
	if err != nil {
		return nil, err
	}
	s, ok := c.(*series.Series[L, T])
	if !ok {
		return nil, dataerrors.Newf(dataerrors.ErrorTypeTypeMismatch,
			"column %v holds %s values", label, c.DType()).
			WithDetail("column", label).
			WithDetail("dtype", c.DType()).
			WithDetail("want", fmt.Sprintf("%T", s))
	}
	return s, nil
}

func isNil(c series.Column) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
