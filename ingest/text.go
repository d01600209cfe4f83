package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/kmi-jp/labeled/dataerrors"
	"github.com/kmi-jp/labeled/logger"
)

// Options holds options for reading and writing delimited text.
type Options struct {
	Delimiter        rune // Field delimiter (default: ',')
	TrimLeadingSpace bool // Drop leading white space of every field
}

// DefaultOptions returns comma-delimited options that keep fields verbatim.
func DefaultOptions() *Options {
	return &Options{
		Delimiter: ',',
	}
}

// Validate checks that the delimiter can separate fields.
func (o *Options) Validate() error {
	d := o.Delimiter
	if d == 0 || d == '"' || d == '\r' || d == '\n' || d == utf8.RuneError || !utf8.ValidRune(d) {
		return dataerrors.Newf(dataerrors.ErrorTypeValidation, "invalid delimiter %q", d).
			WithDetail("delimiter", string(d))
	}
	return nil
}

// ReadRecords splits r into rows of fields. Blank lines are skipped and
// every row must have as many fields as the first one.
func ReadRecords(r io.Reader, opts *Options) ([][]string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = opts.TrimLeadingSpace
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) && errors.Is(parseErr.Err, csv.ErrFieldCount) {
			return nil, dataerrors.Wrap(err, dataerrors.ErrorTypeValidation, "ragged row").
				WithDetail("line", parseErr.Line)
		}
		return nil, dataerrors.Wrap(err, dataerrors.ErrorTypeFile, "failed to read delimited text")
	}
	return records, nil
}

// ReadFile reads all records of filename, decompressing by extension.
func ReadFile(filename string, opts *Options) ([][]string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	rc, err := Open(filename)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	records, err := ReadRecords(rc, opts)
	if err != nil {
		return nil, dataerrors.Wrap(err, typeOf(err), "failed to load "+filename).
			WithDetail("file", filename)
	}

	logger.Debug("loaded delimited text",
		zap.String("file", filename),
		zap.String("compression", string(CompressionFor(filename))),
		zap.String("delimiter", string(opts.Delimiter)),
		zap.Int("rows", len(records)),
		zap.Int("columns", columnCount(records)))
	return records, nil
}

func columnCount(records [][]string) int {
	if len(records) == 0 {
		return 0
	}
	return len(records[0])
}

// WriteRecords writes rows of fields to w, quoting fields only where needed.
func WriteRecords(w io.Writer, records [][]string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	writer.Comma = opts.Delimiter
	if err := writer.WriteAll(records); err != nil {
		return dataerrors.Wrap(err, dataerrors.ErrorTypeFile, "failed to write delimited text")
	}
	return nil
}

// WriteFile writes records to filename, compressing by extension.
func WriteFile(filename string, records [][]string, opts *Options) (err error) {
	wc, err := Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = dataerrors.Wrap(cerr, dataerrors.ErrorTypeFile, "failed to close file").
				WithDetail("file", filename)
		}
	}()

	if err := WriteRecords(wc, records, opts); err != nil {
		return err
	}

	logger.Debug("wrote delimited text",
		zap.String("file", filename),
		zap.Int("rows", len(records)))
	return nil
}

// typeOf keeps the category of a structured error when re-wrapping it.
func typeOf(err error) dataerrors.ErrorType {
	var e *dataerrors.Error
	if errors.As(err, &e) {
		return e.Type
	}
	return dataerrors.ErrorTypeFile
}
