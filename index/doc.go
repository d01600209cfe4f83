// Package index provides the ordered, unique label sets that back Series rows
// and DataFrame columns.
//
// # Creating an Index
//
//	users, err := index.NewWithName([]string{"user 1", "user 2"}, "names")
//
//	// Positional labels 0..n-1
//	positions, err := index.Range(4)
//
// Construction fails with a validation error when the labels are empty or
// contain a duplicate.
//
// # Lookups
//
//	pos, err := users.GetLoc("user 2") // 1, nil
//	_, err = users.GetLoc("user 9")    // key_not_found error
//
// # Iteration
//
// All returns a restartable iterator:
//
//	for label := range users.All() {
//	    fmt.Println(label)
//	}
package index
