package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kmi-jp/labeled/arrowconv"
	"github.com/kmi-jp/labeled/config"
	"github.com/kmi-jp/labeled/dataerrors"
	"github.com/kmi-jp/labeled/dataframe"
	"github.com/kmi-jp/labeled/ingest"
	"github.com/kmi-jp/labeled/logger"
	"github.com/kmi-jp/labeled/series"
)

// app carries state shared by all subcommands once the root pre-run has
// resolved the configuration.
type app struct {
	configFile string
	delimiter  string
	logLevel   string

	cfg *config.Config
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "labeled",
		Short:         "Inspect and convert labeled delimited-text files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&a.delimiter, "delimiter", "", "Field delimiter (overrides config)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	root.AddCommand(
		a.showCommand(),
		a.seriesCommand(),
		a.describeCommand(),
		a.convertCommand(),
		configCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("delimiter") {
		cfg.Delimiter = a.delimiter
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.LogDevelopment,
		Encoding:    cfg.LogEncoding,
		OutputPaths: []string{cfg.LogOutput},
	}); err != nil {
		return dataerrors.Wrap(err, dataerrors.ErrorTypeConfig, "failed to initialize logger")
	}
	cmd.SetContext(context.WithValue(cmd.Context(), logger.CommandKey, cmd.Name()))

	a.cfg = cfg
	return nil
}

func (a *app) textOptions() *ingest.Options {
	opts := ingest.DefaultOptions()
	opts.Delimiter = a.cfg.DelimiterRune()
	return opts
}

func (a *app) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print a DataFrame and each of its columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := dataframe.LoadCSV(args[0], a.textOptions())
			if err != nil {
				return err
			}
			return show(cmd.OutOrStdout(), df)
		},
	}
}

func show(w io.Writer, df *dataframe.DataFrame[string]) error {
	if _, err := fmt.Fprintln(w, df); err != nil {
		return err
	}
	for label, c := range df.Items() {
		if _, err := fmt.Fprintf(w, "\n[%s] %s\n%s\n", label, c.DType(), c); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) seriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "series FILE",
		Short: "Print a Series stored as a label row and a value row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := series.LoadCSV(args[0], a.textOptions())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
}

func (a *app) describeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe FILE",
		Short: "Summarize every column of a DataFrame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := dataframe.LoadCSV(args[0], a.textOptions())
			if err != nil {
				return err
			}
			return describe(cmd.OutOrStdout(), df, a.cfg.Precision)
		},
	}
}

// describe prints one row per column. Columns whose values all parse as
// numbers get their statistics, the rest only their dtype and count.
func describe(w io.Writer, df *dataframe.DataFrame[string], precision int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tdtype\tcount\tsum\tmin\tmax\tmean\tstd")

	format := func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}

	for label := range df.All() {
		raw, err := dataframe.Col[string, string](df, label)
		if err != nil {
			return err
		}

		values, err := series.TryMap(raw, parseFloat)
		if err != nil {
			logger.Debug("column is not numeric", zap.String("column", label), zap.Error(err))
			fmt.Fprintf(tw, "%s\t%s\t%d\t-\t-\t-\t-\t-\n", label, raw.DType(), raw.Len())
			continue
		}

		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			label, values.DType(), values.Len(),
			format(series.Sum(values)),
			format(series.Min(values)),
			format(series.Max(values)),
			format(series.Mean(values)),
			format(series.Std(values)))
	}
	return tw.Flush()
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func (a *app) convertCommand() *cobra.Command {
	var to, out string

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert a DataFrame file to csv, json or arrow",
		Long: `Convert a DataFrame file to another encoding.

The output is compressed when its name ends in .gz, .zst, .sz or .lz4.

Example:
  labeled convert users.csv --to json --out users.json.gz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("to") {
				to = a.cfg.Format
			}
			return a.convert(cmd.Context(), args[0], to, out)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Output format: csv, json or arrow (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (required)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (a *app) convert(ctx context.Context, in, to, out string) error {
	log := logger.WithContext(context.WithValue(ctx, logger.SourceKey, in))

	df, err := dataframe.LoadCSV(in, a.textOptions())
	if err != nil {
		return err
	}

	switch to {
	case config.FormatCSV:
		err = dataframe.SaveCSV(df, out, a.textOptions())
	case config.FormatJSON:
		err = writeTo(out, func(w io.Writer) error {
			enc := gojson.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(df)
		})
	case config.FormatArrow:
		err = writeTo(out, func(w io.Writer) error {
			return arrowconv.WriteIPC(w, df)
		})
	default:
		return dataerrors.Newf(dataerrors.ErrorTypeValidation, "unsupported format %q", to).
			WithDetail("format", to)
	}
	if err != nil {
		return err
	}

	shape := df.Shape()
	log.Info("converted dataframe",
		zap.String("out", out),
		zap.String("format", to),
		zap.Int("rows", shape[0]),
		zap.Int("cols", shape[1]))
	return nil
}

// writeTo runs fn against a file created through ingest.Create, so the
// output is compressed according to its extension.
func writeTo(path string, fn func(io.Writer) error) (err error) {
	w, err := ingest.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = dataerrors.Wrap(cerr, dataerrors.ErrorTypeFile, "failed to close output").
				WithDetail("file", path)
		}
	}()
	if err := fn(w); err != nil {
		var de *dataerrors.Error
		if errors.As(err, &de) {
			return err
		}
		return dataerrors.Wrap(err, dataerrors.ErrorTypeFile, "failed to write output").
			WithDetail("file", path)
	}
	return nil
}

func configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init PATH",
		Short: "Write the default configuration as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.Default()); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return err
		},
	})
	return cmd
}
