// Package arrowconv exports DataFrames as Apache Arrow records.
//
// The first field of every record is IndexField and carries the row labels
// as strings. Each column follows as one field typed after its DType;
// element kinds Arrow cannot hold natively are rendered with %v into utf8.
package arrowconv

import (
	"fmt"
	"io"
	"reflect"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"go.uber.org/zap"

	"github.com/kmi-jp/labeled/dataerrors"
	"github.com/kmi-jp/labeled/dataframe"
	"github.com/kmi-jp/labeled/logger"
	"github.com/kmi-jp/labeled/series"
)

// IndexField names the field holding the row labels.
const IndexField = "__index__"

// ColumnsNameKey is the schema metadata key for the name of the column index.
const ColumnsNameKey = "columns_name"

// ToRecord converts df into a single Arrow record using the Go allocator.
// The caller must Release the record.
func ToRecord[C comparable](df *dataframe.DataFrame[C]) (arrow.Record, error) {
	return ToRecordWithAllocator(memory.NewGoAllocator(), df)
}

// ToRecordWithAllocator converts df into a single Arrow record allocated
// from mem.
func ToRecordWithAllocator[C comparable](mem memory.Allocator, df *dataframe.DataFrame[C]) (arrow.Record, error) {
	schema, err := Schema(df)
	if err != nil {
		return nil, err
	}

	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	cols := df.Values()
	rows := df.Shape()[0]

	labels := b.Field(0).(*array.StringBuilder)
	labels.Reserve(rows)
	for i := range rows {
		labels.Append(fmt.Sprint(cols[0].LabelAt(i)))
	}

	for j, c := range cols {
		fb := b.Field(j + 1)
		fb.Reserve(rows)
		for i := range rows {
			appendValue(fb, c.ValueAt(i))
		}
	}

	return b.NewRecord(), nil
}

// Schema returns the Arrow schema ToRecord produces for df.
func Schema[C comparable](df *dataframe.DataFrame[C]) (*arrow.Schema, error) {
	if df == nil {
		return nil, dataerrors.New(dataerrors.ErrorTypeValidation, "dataframe must not be nil")
	}

	fields := make([]arrow.Field, 0, df.Shape()[1]+1)
	fields = append(fields, arrow.Field{Name: IndexField, Type: arrow.BinaryTypes.String})
	for label, c := range df.Items() {
		name := fmt.Sprint(label)
		if name == IndexField {
			return nil, dataerrors.Newf(dataerrors.ErrorTypeValidation, "column label %q is reserved", name).
				WithDetail("column", name)
		}
		fields = append(fields, arrow.Field{Name: name, Type: fieldType(c)})
	}

	var md *arrow.Metadata
	if name := df.Columns().Name(); name != "" {
		m := arrow.NewMetadata([]string{ColumnsNameKey}, []string{name})
		md = &m
	}
	return arrow.NewSchema(fields, md), nil
}

// WriteIPC writes df to w as an Arrow IPC file holding one record batch.
func WriteIPC[C comparable](w io.Writer, df *dataframe.DataFrame[C]) error {
	mem := memory.NewGoAllocator()
	rec, err := ToRecordWithAllocator(mem, df)
	if err != nil {
		return err
	}
	defer rec.Release()

	fw, err := ipc.NewFileWriter(w, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(mem))
	if err != nil {
		return dataerrors.Wrap(err, dataerrors.ErrorTypeFile, "failed to create arrow writer")
	}
	if err := fw.Write(rec); err != nil {
		_ = fw.Close()
		return dataerrors.Wrap(err, dataerrors.ErrorTypeFile, "failed to write record batch")
	}
	if err := fw.Close(); err != nil {
		return dataerrors.Wrap(err, dataerrors.ErrorTypeFile, "failed to close arrow writer")
	}

	logger.Debug("wrote arrow ipc",
		zap.Int64("rows", rec.NumRows()),
		zap.Int64("cols", rec.NumCols()))
	return nil
}

func fieldType(c series.Column) arrow.DataType {
	switch c.DType() {
	case "int", "int64":
		return arrow.PrimitiveTypes.Int64
	case "int32":
		return arrow.PrimitiveTypes.Int32
	case "int16":
		return arrow.PrimitiveTypes.Int16
	case "int8":
		return arrow.PrimitiveTypes.Int8
	case "uint", "uint64":
		return arrow.PrimitiveTypes.Uint64
	case "uint32":
		return arrow.PrimitiveTypes.Uint32
	case "uint16":
		return arrow.PrimitiveTypes.Uint16
	case "uint8":
		return arrow.PrimitiveTypes.Uint8
	case "float64":
		return arrow.PrimitiveTypes.Float64
	case "float32":
		return arrow.PrimitiveTypes.Float32
	case "bool":
		return arrow.FixedWidthTypes.Boolean
	default:
		return arrow.BinaryTypes.String
	}
}

// appendValue relies on fieldType having chosen the builder from the
// value's kind, so named types such as `type Celsius float64` convert too.
func appendValue(b array.Builder, v any) {
	rv := reflect.ValueOf(v)
	switch b := b.(type) {
	case *array.Int64Builder:
		b.Append(rv.Int())
	case *array.Int32Builder:
		b.Append(int32(rv.Int()))
	case *array.Int16Builder:
		b.Append(int16(rv.Int()))
	case *array.Int8Builder:
		b.Append(int8(rv.Int()))
	case *array.Uint64Builder:
		b.Append(rv.Uint())
	case *array.Uint32Builder:
		b.Append(uint32(rv.Uint()))
	case *array.Uint16Builder:
		b.Append(uint16(rv.Uint()))
	case *array.Uint8Builder:
		b.Append(uint8(rv.Uint()))
	case *array.Float64Builder:
		b.Append(rv.Float())
	case *array.Float32Builder:
		b.Append(float32(rv.Float()))
	case *array.BooleanBuilder:
		b.Append(rv.Bool())
	case *array.StringBuilder:
		if rv.Kind() == reflect.String {
			b.Append(rv.String())
		} else {
			b.Append(fmt.Sprintf("%v", v))
		}
	default:
		b.AppendNull()
	}
}
