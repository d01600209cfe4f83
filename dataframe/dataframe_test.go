package dataframe

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmi-jp/labeled/dataerrors"
	"github.com/kmi-jp/labeled/index"
	"github.com/kmi-jp/labeled/series"
)

var (
	userLabels     = []string{"user 1", "user 2", "user 3", "user 4"}
	columnsLabels  = []string{"names", "salary", "cash flow"}
	salariesValues = []int{20000, 300000, 20000, 50000}
	namesValues    = []string{"Lukas Novak", "Petr Pavel", "Pavel Petr", "Ludek Skocil"}
	cashFlowValues = []int{-100, 10000, -2000, 1100}
)

type fixture struct {
	users    *index.Index[string]
	columns  *index.Index[string]
	names    *series.Series[string, string]
	salaries *series.Series[string, int]
	cashFlow *series.Series[string, int]
	data     *DataFrame[string]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	var f fixture
	var err error

	f.users, err = index.NewWithName(userLabels, "names")
	require.NoError(t, err)
	f.columns, err = index.New(columnsLabels)
	require.NoError(t, err)

	f.salaries, err = series.NewWithIndex(salariesValues, f.users)
	require.NoError(t, err)
	f.names, err = series.NewWithIndex(namesValues, f.users)
	require.NoError(t, err)
	f.cashFlow, err = series.NewWithIndex(cashFlowValues, f.users)
	require.NoError(t, err)

	f.data, err = NewWithColumns([]series.Column{f.names, f.salaries, f.cashFlow}, f.columns)
	require.NoError(t, err)
	return &f
}

func TestDataFrame(t *testing.T) {
	f := newFixture(t)

	assert.Same(t, f.columns, f.data.Columns())
	assert.Equal(t, []series.Column{f.names, f.salaries, f.cashFlow}, f.data.Values())

	salary, ok := f.data.Get("salary")
	require.True(t, ok)
	assert.Same(t, f.salaries, salary)

	cashFlow, ok := f.data.Get("cash flow")
	require.True(t, ok)
	best, err := cashFlow.Aggregate(series.AggMax)
	require.NoError(t, err)
	assert.Equal(t, 10000, best)

	missing, ok := f.data.Get("wrong key")
	assert.False(t, ok)
	assert.Nil(t, missing)

	allocs := testing.AllocsPerRun(100, func() { f.data.Get("wrong key") })
	assert.Zero(t, allocs)
}

func TestLoc(t *testing.T) {
	f := newFixture(t)

	c, err := f.data.Loc("names")
	require.NoError(t, err)
	assert.Same(t, f.names, c)

	_, err = f.data.Loc("wrong key")
	assert.True(t, dataerrors.IsKeyNotFound(err))
}

func TestIteration(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, columnsLabels, slices.Collect(f.data.All()))
	assert.Equal(t, columnsLabels, slices.Collect(f.data.All()))
}

func TestItems(t *testing.T) {
	f := newFixture(t)

	var columns []string
	var values []series.Column
	for column, value := range f.data.Items() {
		columns = append(columns, column)
		values = append(values, value)
	}

	assert.Equal(t, columnsLabels, columns)
	assert.Equal(t, []series.Column{f.names, f.salaries, f.cashFlow}, values)

	n := 0
	for range f.data.Items() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestStringAndShape(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "DataFrame(4, 3)", f.data.String())
	assert.Equal(t, [2]int{4, 3}, f.data.Shape())
}

func TestEmptyDataFrame(t *testing.T) {
	_, err := New([]series.Column{})
	assert.True(t, dataerrors.IsValidation(err))

	_, err = New(nil)
	assert.True(t, dataerrors.IsValidation(err))

	columns, _ := index.New([]string{"a"})
	_, err = NewWithColumns(nil, columns)
	assert.True(t, dataerrors.IsValidation(err))
}

func TestPositionalColumns(t *testing.T) {
	f := newFixture(t)

	data, err := New([]series.Column{f.names, f.salaries, f.cashFlow})
	require.NoError(t, err)

	positions, _ := index.Range(3)
	assert.Equal(t, positions.Labels(), data.Columns().Labels())
	assert.Equal(t, []series.Column{f.names, f.salaries, f.cashFlow}, data.Values())

	salary, ok := data.Get(1)
	require.True(t, ok)
	assert.Same(t, f.salaries, salary)

	cashFlow, ok := data.Get(2)
	require.True(t, ok)
	best, err := cashFlow.Aggregate(series.AggMax)
	require.NoError(t, err)
	assert.Equal(t, 10000, best)
}

func TestNewWithColumnsValidation(t *testing.T) {
	f := newFixture(t)
	short, err := series.New([]int{1, 2})
	require.NoError(t, err)
	two, _ := index.New([]string{"a", "b"})

	tests := []struct {
		name    string
		cols    []series.Column
		columns *index.Index[string]
	}{
		{"nil column index", []series.Column{f.names}, nil},
		{"label count mismatch", []series.Column{f.names, f.salaries, f.cashFlow}, two},
		{"length mismatch", []series.Column{f.names, short}, two},
		{"nil column", []series.Column{f.names, nil}, two},
		{"typed nil column", []series.Column{f.names, (*series.Series[string, int])(nil)}, two},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWithColumns(tt.cols, tt.columns)
			assert.True(t, dataerrors.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestRowLabelsNotCompared(t *testing.T) {
	f := newFixture(t)
	positional, err := series.New([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	data, err := New([]series.Column{f.salaries, positional})
	require.NoError(t, err)
	assert.Equal(t, [2]int{4, 2}, data.Shape())
}

func TestValuesAreShared(t *testing.T) {
	f := newFixture(t)

	values := f.data.Values()
	values[0] = f.cashFlow

	first, _ := f.data.Get("names")
	assert.Same(t, f.names, first)
}

func TestCol(t *testing.T) {
	f := newFixture(t)

	salaries, err := Col[string, int](f.data, "salary")
	require.NoError(t, err)
	assert.Same(t, f.salaries, salaries)
	assert.Equal(t, 390000, series.Sum(salaries))

	_, err = Col[string, int](f.data, "names")
	assert.True(t, dataerrors.IsTypeMismatch(err))

	_, err = Col[int, int](f.data, "salary")
	assert.True(t, dataerrors.IsTypeMismatch(err), "label type must match too")

	_, err = Col[string, int](f.data, "wrong key")
	assert.True(t, dataerrors.IsKeyNotFound(err))
}
