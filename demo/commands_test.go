package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmi-jp/labeled/config"
	"github.com/kmi-jp/labeled/dataerrors"
	"github.com/kmi-jp/labeled/dataframe"
)

const users = `,names,salary,cash flow
user 1,Lukas Novak,20000,-100
user 2,Petr Pavel,300000,10000
user 3,Pavel Petr,20000,-2000
user 4,Ludek Skocil,50000,1100
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return out.String(), err
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", writeFile(t, "users.csv", users))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "DataFrame(4, 3)\n"))
	assert.Contains(t, out, "[salary] string\nuser 1\t20000\nuser 2\t300000")
}

func TestSeries(t *testing.T) {
	path := writeFile(t, "series.csv", "a,b\n1,2\n")
	out, err := run(t, "series", path)
	require.NoError(t, err)
	assert.Equal(t, "a\t1\nb\t2\n", out)
}

func TestDescribe(t *testing.T) {
	path := writeFile(t, "users.csv", strings.ReplaceAll(users, ",", ";"))
	out, err := run(t, "describe", path, "--delimiter", ";")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"names", "string", "4", "-", "-", "-", "-", "-"}, strings.Fields(lines[1]))

	salary := strings.Fields(lines[2])
	assert.Equal(t, []string{"salary", "float64", "4", "390000.00", "20000.00", "300000.00", "97500.00"}, salary[:7])
}

func TestConvert(t *testing.T) {
	in := writeFile(t, "users.csv", users)
	dir := t.TempDir()

	t.Run("csv", func(t *testing.T) {
		out := filepath.Join(dir, "users.csv.gz")
		_, err := run(t, "convert", in, "--to", "csv", "--out", out)
		require.NoError(t, err)

		df, err := dataframe.LoadCSV(out, nil)
		require.NoError(t, err)
		assert.Equal(t, [2]int{4, 3}, df.Shape())
	})

	t.Run("json", func(t *testing.T) {
		out := filepath.Join(dir, "users.json")
		_, err := run(t, "convert", in, "--to", "json", "--out", out)
		require.NoError(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		var doc struct {
			Columns []string `json:"columns"`
		}
		require.NoError(t, gojson.Unmarshal(data, &doc))
		assert.Equal(t, []string{"names", "salary", "cash flow"}, doc.Columns)
	})

	t.Run("arrow", func(t *testing.T) {
		out := filepath.Join(dir, "users.arrow")
		_, err := run(t, "convert", in, "--to", "arrow", "--out", out)
		require.NoError(t, err)

		info, err := os.Stat(out)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, "convert", in, "--to", "xml", "--out", filepath.Join(dir, "users.xml"))
		assert.True(t, dataerrors.IsValidation(err))
	})
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labeled.yaml")
	_, err := run(t, "config", "init", path)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestInvalidDelimiter(t *testing.T) {
	_, err := run(t, "show", writeFile(t, "users.csv", users), "--delimiter", "ab")
	assert.True(t, dataerrors.IsType(err, dataerrors.ErrorTypeConfig))
}
