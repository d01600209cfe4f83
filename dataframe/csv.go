package dataframe

import (
	"fmt"
	"io"

	"github.com/kmi-jp/labeled/dataerrors"
	"github.com/kmi-jp/labeled/index"
	"github.com/kmi-jp/labeled/ingest"
	"github.com/kmi-jp/labeled/series"
)

// LoadCSV loads a DataFrame from a delimited-text file.
//
// The first row holds the column labels after a corner cell that is
// ignored; every other row starts with its row label. All columns share one
// row Index and keep their values as strings.
func LoadCSV(filename string, opts *ingest.Options) (*DataFrame[string], error) {
	records, err := ingest.ReadFile(filename, opts)
	if err != nil {
		return nil, err
	}
	df, err := fromRecords(records)
	if err != nil {
		return nil, dataerrors.Wrap(err, dataerrors.ErrorTypeValidation, "invalid dataframe file").
			WithDetail("file", filename)
	}
	return df, nil
}

// LoadCSVFromReader loads a DataFrame from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *ingest.Options) (*DataFrame[string], error) {
	records, err := ingest.ReadRecords(r, opts)
	if err != nil {
		return nil, err
	}
	return fromRecords(records)
}

func fromRecords(records [][]string) (*DataFrame[string], error) {
	if len(records) < 2 {
		return nil, dataerrors.Newf(dataerrors.ErrorTypeValidation,
			"expected a header row and at least one data row, got %d rows", len(records)).
			WithDetail("rows", len(records))
	}
	header := records[0]
	if len(header) < 2 {
		return nil, dataerrors.New(dataerrors.ErrorTypeValidation, "expected a row label column and at least one data column")
	}

	columns, err := index.New(header[1:])
	if err != nil {
		return nil, err
	}

	body := records[1:]
	rowLabels := make([]string, len(body))
	for i, row := range body {
		rowLabels[i] = row[0]
	}
	rows, err := index.New(rowLabels)
	if err != nil {
		return nil, err
	}

	cols := make([]series.Column, columns.Len())
	for j := range cols {
		values := make([]string, len(body))
		for i, row := range body {
			values[i] = row[j+1]
		}
		s, err := series.NewWithIndex(values, rows)
		if err != nil {
			return nil, err
		}
		cols[j] = s
	}
	return NewWithColumns(cols, columns)
}

// SaveCSV writes df to filename in the layout read by LoadCSV. Row labels
// are taken from the first column.
func SaveCSV[C comparable](df *DataFrame[C], filename string, opts *ingest.Options) error {
	return ingest.WriteFile(filename, toRecords(df), opts)
}

// WriteCSV writes df to w in the layout read by LoadCSVFromReader.
func WriteCSV[C comparable](df *DataFrame[C], w io.Writer, opts *ingest.Options) error {
	return ingest.WriteRecords(w, toRecords(df), opts)
}

func toRecords[C comparable](df *DataFrame[C]) [][]string {
	rows, cols := df.Shape()[0], len(df.values)

	records := make([][]string, rows+1)
	records[0] = make([]string, cols+1)
	for j := range cols {
		records[0][j+1] = fmt.Sprint(df.columns.At(j))
	}
	for i := range rows {
		row := make([]string, cols+1)
		row[0] = fmt.Sprint(df.values[0].LabelAt(i))
		for j, c := range df.values {
			row[j+1] = fmt.Sprint(c.ValueAt(i))
		}
		records[i+1] = row
	}
	return records
}
