package series

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmi-jp/labeled/dataerrors"
	"github.com/kmi-jp/labeled/ingest"
)

const inputText = `user 1,user 2,user 3,user 4
Lukas Novak,Petr Pavel,Pavel Petr,Ludek Skocil
`

func TestLoadCSV(t *testing.T) {
	for _, sep := range []rune{',', ';'} {
		t.Run(string(sep), func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), "test.csv")
			text := strings.ReplaceAll(inputText, ",", string(sep))
			require.NoError(t, os.WriteFile(filename, []byte(text), 0o600))

			opts := ingest.DefaultOptions()
			opts.Delimiter = sep

			data, err := LoadCSV(filename, opts)
			require.NoError(t, err)

			assert.Equal(t, userLabels, data.Index().Labels())
			assert.Equal(t, namesValues, data.Values())
		})
	}
}

func TestLoadCSVFromReader(t *testing.T) {
	data, err := LoadCSVFromReader(strings.NewReader("user 1,user 2\nLukas,Petr\n"), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"user 1", "user 2"}, data.Index().Labels())
	assert.Equal(t, []string{"Lukas", "Petr"}, data.Values())
}

func TestLoadCSVConvertValues(t *testing.T) {
	data, err := LoadCSVFromReader(strings.NewReader("a,b,c\n1,2,3"), nil)
	require.NoError(t, err)

	ints, err := TryMap(data, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, 6, Sum(ints))
}

func TestLoadCSVInvalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"labels only", "a,b\n"},
		{"three rows", "a,b\n1,2\n3,4\n"},
		{"duplicate labels", "a,a\n1,2\n"},
		{"ragged", "a,b\n1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSVFromReader(strings.NewReader(tt.text), nil)
			assert.True(t, dataerrors.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), nil)
	assert.True(t, dataerrors.IsType(err, dataerrors.ErrorTypeFile))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(salaries(t), &buf, nil))

	assert.Equal(t, "user 1,user 2,user 3,user 4\n20000,300000,20000,50000\n", buf.String())
}

func TestSaveCSVRoundTrip(t *testing.T) {
	for _, ext := range []string{".csv", ".csv.gz", ".csv.zst"} {
		t.Run(ext, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), "salaries"+ext)
			opts := &ingest.Options{Delimiter: ';'}

			require.NoError(t, SaveCSV(salaries(t), filename, opts))

			loaded, err := LoadCSV(filename, opts)
			require.NoError(t, err)
			assert.Equal(t, userLabels, loaded.Index().Labels())
			assert.Equal(t, []string{"20000", "300000", "20000", "50000"}, loaded.Values())
		})
	}
}
