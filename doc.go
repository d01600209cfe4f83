// Package labeled is a small toolkit for labeled one- and two-dimensional
// data.
//
// An Index is an ordered set of unique labels, a Series binds a slice of
// values to one Index, and a DataFrame is an ordered collection of equally
// long Series addressed by column labels.
//
// # Quick Start
//
// Build a Series and look values up by label:
//
//	users, _ := index.New([]string{"user 1", "user 2"})
//	salaries, _ := series.NewWithIndex([]int{20000, 300000}, users)
//	v, _ := salaries.Loc("user 2") // 300000
//	series.Sum(salaries)           // 320000
//
// Load a DataFrame from delimited text and pull out a typed column:
//
//	df, _ := dataframe.LoadCSV("users.csv", nil)
//	raw, _ := dataframe.Col[string, string](df, "salary")
//	parsed, _ := series.TryMap(raw, strconv.Atoi)
//
// # Packages
//
//   - index: ordered unique labels with constant-time lookup
//   - series: one-dimensional labeled arrays, reductions and operators
//   - dataframe: collections of Series addressed by column labels
//   - ingest: delimited-text reading and writing with transparent compression
//   - arrowconv: export of DataFrames to Apache Arrow
//   - dataerrors: structured errors shared by all packages
//   - logger: structured logging
//   - config: settings of the labeled command
package labeled
