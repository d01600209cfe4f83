// Package dataframe provides an ordered collection of equally long Series
// addressed by column labels.
//
// Columns may hold different element types; the DataFrame stores them
// through the series.Column interface and Col recovers the typed Series.
//
//	df, err := dataframe.NewWithColumns(
//	    []series.Column{names, salaries, cashFlow},
//	    columns, // index of "names", "salary", "cash flow"
//	)
//
//	df.Shape()  // [4 3]
//	df.String() // DataFrame(4, 3)
//
//	c, ok := df.Get("salary")                        // lookup-or-absent
//	s, err := dataframe.Col[string, int](df, "salary") // typed access
//	best, err := c.Aggregate(series.AggMax)
//
// # Loading from CSV
//
// The header row starts with a corner cell followed by the column labels;
// every other row starts with its row label:
//
//	,names,salary
//	user 1,Lukas Novak,20000
//	user 2,Petr Pavel,300000
//
//	df, err := dataframe.LoadCSV("users.csv", nil)
package dataframe
