package series

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/kmi-jp/labeled/dataerrors"
)

// Column is the type-erased view of a Series that a DataFrame stores. It
// lets columns with different label and element types live side by side.
type Column interface {
	fmt.Stringer
	Len() int
	Shape() [1]int
	DType() string
	ValueAt(i int) any
	LabelAt(i int) any
	Aggregate(agg Aggregation) (any, error)
}

var _ Column = (*Series[string, int])(nil)

// Aggregation names a reduction available through Column.Aggregate.
type Aggregation string

const (
	AggSum  Aggregation = "sum"
	AggMax  Aggregation = "max"
	AggMin  Aggregation = "min"
	AggMean Aggregation = "mean"
)

// ValueAt returns the value at position i as an interface value.
func (s *Series[L, T]) ValueAt(i int) any {
	return s.values[i]
}

// LabelAt returns the label at position i as an interface value.
func (s *Series[L, T]) LabelAt(i int) any {
	return s.index.At(i)
}

// Aggregate reduces the values with agg when the element type supports it.
// Sum and Max of an int Series return an int, Mean always returns a
// float64. Strings support only Max and Min; every other element type is a
// type_mismatch error.
func (s *Series[L, T]) Aggregate(agg Aggregation) (any, error) {
	switch vs := any(s.values).(type) {
	case []int:
		return aggregateNumbers(vs, agg)
	case []int8:
		return aggregateNumbers(vs, agg)
	case []int16:
		return aggregateNumbers(vs, agg)
	case []int32:
		return aggregateNumbers(vs, agg)
	case []int64:
		return aggregateNumbers(vs, agg)
	case []uint:
		return aggregateNumbers(vs, agg)
	case []uint8:
		return aggregateNumbers(vs, agg)
	case []uint16:
		return aggregateNumbers(vs, agg)
	case []uint32:
		return aggregateNumbers(vs, agg)
	case []uint64:
		return aggregateNumbers(vs, agg)
	case []float32:
		return aggregateNumbers(vs, agg)
	case []float64:
		return aggregateNumbers(vs, agg)
	case []string:
		return aggregateOrdered(vs, agg, s.DType())
	}
	return nil, unsupportedAggregation(agg, s.DType())
}

func aggregateNumbers[T Number](vs []T, agg Aggregation) (any, error) {
	switch agg {
	case AggSum:
		var sum T
		for _, v := range vs {
			sum += v
		}
		return sum, nil
	case AggMean:
		sum := 0.0
		for _, v := range vs {
			sum += float64(v)
		}
		return sum / float64(len(vs)), nil
	}
	var zero T
	return aggregateOrdered(vs, agg, fmt.Sprintf("%T", zero))
}

func aggregateOrdered[T cmp.Ordered](vs []T, agg Aggregation, dtype string) (any, error) {
	switch agg {
	case AggMax:
		return slices.Max(vs), nil
	case AggMin:
		return slices.Min(vs), nil
	}
	return nil, unsupportedAggregation(agg, dtype)
}

func unsupportedAggregation(agg Aggregation, dtype string) error {
	return dataerrors.Newf(dataerrors.ErrorTypeTypeMismatch, "%s is not supported for %s values", agg, dtype).
		WithDetail("aggregation", string(agg)).
		WithDetail("dtype", dtype)
}
