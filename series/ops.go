package series

import (
	"errors"
	"fmt"
	"math"

	"github.com/kmi-jp/labeled/dataerrors"
)

// ApplyOperator combines s and other element by element with op.
//
// other must be a *Series with the same label and element types; anything
// else, scalars included, is a type_mismatch error. Both operands must carry
// identical label sequences, otherwise the result is a validation error. The
// result shares s's Index.
func (s *Series[L, T]) ApplyOperator(other any, op func(a, b T) T) (*Series[L, T], error) {
	return s.applyOperator(other, "apply", func(a, b T) (T, error) {
		return op(a, b), nil
	})
}

func (s *Series[L, T]) applyOperator(other any, name string, op func(a, b T) (T, error)) (*Series[L, T], error) {
	rhs, ok := other.(*Series[L, T])
	if !ok || rhs == nil {
		return nil, dataerrors.Newf(dataerrors.ErrorTypeTypeMismatch,
			"unsupported operand for %s: %T", name, other).
			WithDetail("operator", name).
			WithDetail("want", fmt.Sprintf("%T", s))
	}
	if !s.index.Equal(rhs.index) {
		return nil, dataerrors.Newf(dataerrors.ErrorTypeValidation,
			"cannot %s series with different labels", name).
			WithDetail("operator", name).
			WithDetail("left", s.index.Len()).
			WithDetail("right", rhs.index.Len())
	}

	values := make([]T, len(s.values))
	for i := range s.values {
		v, err := op(s.values[i], rhs.values[i])
		if err != nil {
			return nil, dataerrors.Wrap(err, dataerrors.ErrorTypeArithmetic, name+" failed").
				WithDetail("label", s.index.At(i))
		}
		values[i] = v
	}
	return derive(s, values), nil
}

var errZeroDivisor = errors.New("division by zero")

// Add returns a + b.
func Add[L comparable, T Number](a *Series[L, T], b any) (*Series[L, T], error) {
	return a.applyOperator(b, "add", func(x, y T) (T, error) { return x + y, nil })
}

// Sub returns a - b.
func Sub[L comparable, T Number](a *Series[L, T], b any) (*Series[L, T], error) {
	return a.applyOperator(b, "sub", func(x, y T) (T, error) { return x - y, nil })
}

// Mul returns a * b.
func Mul[L comparable, T Number](a *Series[L, T], b any) (*Series[L, T], error) {
	return a.applyOperator(b, "mul", func(x, y T) (T, error) { return x * y, nil })
}

// Div returns a / b in the element type; integer division truncates.
func Div[L comparable, T Number](a *Series[L, T], b any) (*Series[L, T], error) {
	return a.applyOperator(b, "div", func(x, y T) (T, error) {
		if y == 0 {
			return 0, errZeroDivisor
		}
		return x / y, nil
	})
}

// FloorDiv returns a / b rounded toward negative infinity.
func FloorDiv[L comparable, T Number](a *Series[L, T], b any) (*Series[L, T], error) {
	return a.applyOperator(b, "floordiv", func(x, y T) (T, error) {
		if y == 0 {
			return 0, errZeroDivisor
		}
		return floorDiv(x, y), nil
	})
}

// Mod returns the remainder of FloorDiv; a non-zero result has the sign of
// the divisor.
func Mod[L comparable, T Number](a *Series[L, T], b any) (*Series[L, T], error) {
	return a.applyOperator(b, "mod", func(x, y T) (T, error) {
		if y == 0 {
			return 0, errZeroDivisor
		}
		return x - floorDiv(x, y)*y, nil
	})
}

// Pow returns a raised to the power b. Zero raised to a negative power is an
// arithmetic error.
//
// Integer powers are exact and wrap around on overflow like the other integer
// operators. A negative integer exponent yields 0 unless the base is 1 or -1.
func Pow[L comparable, T Number](a *Series[L, T], b any) (*Series[L, T], error) {
	return a.applyOperator(b, "pow", func(x, y T) (T, error) {
		if x == 0 && y < 0 {
			return 0, errZeroDivisor
		}
		if isFloat[T]() {
			return T(math.Pow(float64(x), float64(y))), nil
		}
		return intPow(x, y), nil
	})
}

// intPow computes x**y by squaring. x+1 == 0 stands for x == -1, which the
// unsigned members of Number cannot spell.
func intPow[T Number](x, y T) T {
	if y < 0 {
		switch {
		case x == 1:
			return 1
		case x+1 == 0 && isOdd(y):
			return x
		case x+1 == 0:
			return 1
		}
		return 0
	}
	result := T(1)
	for ; y > 0; y /= 2 {
		if isOdd(y) {
			result *= x
		}
		x *= x
	}
	return result
}

func isOdd[T Number](v T) bool {
	return v-(v/2)*2 != 0
}

func isFloat[T Number]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	}
	return false
}

func floorDiv[T Number](x, y T) T {
	if isFloat[T]() {
		return T(math.Floor(float64(x) / float64(y)))
	}
	q := x / y
	// Truncated quotient is one too high when the signs differ and the
	// division is inexact.
	if q*y != x && (x < 0) != (y < 0) {
		q--
	}
	return q
}
