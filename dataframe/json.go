package dataframe

import (
	gojson "github.com/goccy/go-json"

	"github.com/kmi-jp/labeled/series"
)

type dataFrameJSON[C comparable] struct {
	Columns []C             `json:"columns"`
	Data    []series.Column `json:"data"`
}

// MarshalJSON encodes the DataFrame as its column labels followed by the
// JSON form of every column, in the same order.
func (df *DataFrame[C]) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(dataFrameJSON[C]{
		Columns: df.columns.Labels(),
		Data:    df.values,
	})
}
