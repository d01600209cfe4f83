// Package ingest reads and writes the flat delimited text consumed by
// series.LoadCSV and dataframe.LoadCSV.
//
// Rows are separated by newlines and fields by a single configurable
// delimiter. All fields are delivered as strings; ingestion performs no type
// conversion.
//
// # Compression
//
// Open and Create choose a codec from the file extension:
//
//	.gz   gzip
//	.zst  zstd
//	.sz   snappy (framed)
//	.lz4  lz4 (frame format)
//
// Any other extension is read and written as plain text.
//
// # Options
//
//	opts := ingest.DefaultOptions()
//	opts.Delimiter = ';'
//	records, err := ingest.ReadFile("users.csv.gz", opts)
package ingest
