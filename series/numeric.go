package series

import (
	"cmp"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is the element bound for arithmetic on Series.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of all values.
func Sum[L comparable, T Number](s *Series[L, T]) T {
	var sum T
	for _, v := range s.values {
		sum += v
	}
	return sum
}

// Mean returns the arithmetic mean of the values.
func Mean[L comparable, T Number](s *Series[L, T]) float64 {
	sum := 0.0
	for _, v := range s.values {
		sum += float64(v)
	}
	return sum / float64(len(s.values))
}

// Max returns the largest value.
func Max[L comparable, T cmp.Ordered](s *Series[L, T]) T {
	return slices.Max(s.values)
}

// Min returns the smallest value.
func Min[L comparable, T cmp.Ordered](s *Series[L, T]) T {
	return slices.Min(s.values)
}

// Median returns the median of the values.
func Median[L comparable, T Number](s *Series[L, T]) float64 {
	sorted := make([]float64, len(s.values))
	for i, v := range s.values {
		sorted[i] = float64(v)
	}
	slices.Sort(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Variance returns the sample variance. A single value has variance 0.
func Variance[L comparable, T Number](s *Series[L, T]) float64 {
	if len(s.values) < 2 {
		return 0
	}
	mean := Mean(s)
	sumSq := 0.0
	for _, v := range s.values {
		diff := float64(v) - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.values)-1)
}

// Std returns the sample standard deviation.
func Std[L comparable, T Number](s *Series[L, T]) float64 {
	return math.Sqrt(Variance(s))
}

// Abs returns a new Series holding the absolute value of every element.
// The most negative value of a signed integer type has no positive
// counterpart and is returned unchanged, as -v wraps around.
func Abs[L comparable, T Number](s *Series[L, T]) *Series[L, T] {
	return Map(s, func(v T) T {
		if v < 0 {
			return -v
		}
		return v
	})
}

// Round returns a new Series with every value rounded half away from zero to
// the given number of decimal places. Negative decimals round to tens,
// hundreds and so on.
func Round[L comparable, T constraints.Float](s *Series[L, T], decimals int) *Series[L, T] {
	scale := math.Pow(10, float64(decimals))
	return Map(s, func(v T) T {
		return T(math.Round(float64(v)*scale) / scale)
	})
}
