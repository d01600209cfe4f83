// Package series provides the one-dimensional labeled array.
//
// A Series pairs a slice of values with a shared index.Index. Every
// transformation returns a new Series that reuses the same Index.
//
// # Creating a Series
//
// Create a Series with positional labels 0..n-1:
//
//	salaries, err := series.New([]int{20000, 300000, 20000, 50000})
//
// Or bind it to an existing Index:
//
//	users, _ := index.NewWithName([]string{"user 1", "user 2"}, "names")
//	salaries, err := series.NewWithIndex([]int{20000, 300000}, users)
//
// # Loading from CSV
//
// The first row holds the labels and the second row the values. Values
// stay strings; convert them with TryMap:
//
//	names, err := series.LoadCSV("users.csv", nil)
//	ids, err := series.TryMap(raw, strconv.Atoi)
//
// # Lookups
//
//	v, err := salaries.Loc("user 2")   // strict, key_not_found on a miss
//	v, ok := salaries.Get("user 9")    // 0, false
//
// # Basic Statistics
//
//	total := series.Sum(salaries)
//	mean := series.Mean(salaries)
//	top := series.Max(salaries)
//	low := series.Min(salaries)
//	median := series.Median(salaries)
//
// # Element-wise Arithmetic
//
// Both operands must carry identical labels:
//
//	net, err := series.Add(salaries, cashFlow)
//
// Passing anything other than a Series of the same type, a scalar for
// example, is a type_mismatch error; there is no broadcasting.
//
// # Transformations
//
//	squared := salaries.Apply(func(v int) int { return v * v })
//	magnitude := series.Abs(cashFlow)
//	rounded := series.Round(ratios, 2)
package series
