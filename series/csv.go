package series

import (
	"fmt"
	"io"

	"github.com/kmi-jp/labeled/dataerrors"
	"github.com/kmi-jp/labeled/index"
	"github.com/kmi-jp/labeled/ingest"
)

// LoadCSV loads a Series from a delimited-text file. The first row holds the
// labels and the second row the values; compressed files are recognized by
// extension.
func LoadCSV(filename string, opts *ingest.Options) (*Series[string, string], error) {
	records, err := ingest.ReadFile(filename, opts)
	if err != nil {
		return nil, err
	}
	s, err := fromRecords(records)
	if err != nil {
		return nil, dataerrors.Wrap(err, dataerrors.ErrorTypeValidation, "invalid series file").
			WithDetail("file", filename)
	}
	return s, nil
}

// LoadCSVFromReader loads a Series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *ingest.Options) (*Series[string, string], error) {
	records, err := ingest.ReadRecords(r, opts)
	if err != nil {
		return nil, err
	}
	return fromRecords(records)
}

func fromRecords(records [][]string) (*Series[string, string], error) {
	if len(records) != 2 {
		return nil, dataerrors.Newf(dataerrors.ErrorTypeValidation,
			"expected a label row and a value row, got %d rows", len(records)).
			WithDetail("rows", len(records))
	}
	idx, err := index.New(records[0])
	if err != nil {
		return nil, err
	}
	return NewWithIndex(records[1], idx)
}

// SaveCSV writes s to filename in the layout read by LoadCSV.
func SaveCSV[L comparable, T any](s *Series[L, T], filename string, opts *ingest.Options) error {
	return ingest.WriteFile(filename, toRecords(s), opts)
}

// WriteCSV writes s to w in the layout read by LoadCSVFromReader.
func WriteCSV[L comparable, T any](s *Series[L, T], w io.Writer, opts *ingest.Options) error {
	return ingest.WriteRecords(w, toRecords(s), opts)
}

func toRecords[L comparable, T any](s *Series[L, T]) [][]string {
	labels := make([]string, len(s.values))
	values := make([]string, len(s.values))
	for i, v := range s.values {
		labels[i] = fmt.Sprint(s.index.At(i))
		values[i] = fmt.Sprint(v)
	}
	return [][]string{labels, values}
}
