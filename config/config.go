// Package config loads the settings of the labeled command line tool.
//
// Values are resolved in order of precedence: environment variables with
// the LABELED_ prefix, an optional YAML file, then built-in defaults.
package config

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/kmi-jp/labeled/dataerrors"
)

// EnvPrefix is prepended to every environment override, e.g. LABELED_DELIMITER.
const EnvPrefix = "LABELED"

// Supported output formats.
const (
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatArrow = "arrow"
)

// Config holds CLI settings.
type Config struct {
	// Delimiter separates fields of delimited text; exactly one character.
	Delimiter   string `yaml:"delimiter" mapstructure:"delimiter"`
	LogLevel    string `yaml:"log_level" mapstructure:"log_level"`
	LogEncoding string `yaml:"log_encoding" mapstructure:"log_encoding"`
	// LogOutput is a file path, or stderr/stdout.
	LogOutput      string `yaml:"log_output" mapstructure:"log_output"`
	LogDevelopment bool   `yaml:"log_development" mapstructure:"log_development"`
	// Precision is the number of decimals used when printing statistics.
	Precision int    `yaml:"precision" mapstructure:"precision"`
	Format    string `yaml:"format" mapstructure:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Delimiter:   ",",
		LogLevel:    "info",
		LogEncoding: "json",
		LogOutput:   "stderr",
		Precision:   2,
		Format:      FormatCSV,
	}
}

// Load resolves the configuration. An empty path skips the file lookup.
func Load(path string) (*Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault("delimiter", def.Delimiter)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_encoding", def.LogEncoding)
	v.SetDefault("log_output", def.LogOutput)
	v.SetDefault("log_development", def.LogDevelopment)
	v.SetDefault("precision", def.Precision)
	v.SetDefault("format", def.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, dataerrors.Wrap(err, dataerrors.ErrorTypeConfig, "failed to read config file").
				WithDetail("file", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, dataerrors.Wrap(err, dataerrors.ErrorTypeConfig, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return dataerrors.Newf(dataerrors.ErrorTypeConfig, "delimiter must be a single character, got %q", c.Delimiter).
			WithDetail("delimiter", c.Delimiter)
	}
	switch c.Delimiter {
	case `"`, "\r", "\n":
		return dataerrors.Newf(dataerrors.ErrorTypeConfig, "delimiter %q cannot separate fields", c.Delimiter).
			WithDetail("delimiter", c.Delimiter)
	}
	if c.Precision < 0 || c.Precision > 15 {
		return dataerrors.Newf(dataerrors.ErrorTypeConfig, "precision must be between 0 and 15, got %d", c.Precision).
			WithDetail("precision", c.Precision)
	}
	switch c.Format {
	case FormatCSV, FormatJSON, FormatArrow:
	default:
		return dataerrors.Newf(dataerrors.ErrorTypeConfig, "unsupported format %q", c.Format).
			WithDetail("format", c.Format)
	}
	if c.LogOutput == "" {
		return dataerrors.New(dataerrors.ErrorTypeConfig, "log output must not be empty")
	}
	switch c.LogEncoding {
	case "json", "console":
	default:
		return dataerrors.Newf(dataerrors.ErrorTypeConfig, "unsupported log encoding %q", c.LogEncoding).
			WithDetail("log_encoding", c.LogEncoding)
	}
	return nil
}

// DelimiterRune returns the delimiter as a rune. Call it on validated configs.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Save writes the configuration to a YAML file.
func Save(path string, c *Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return dataerrors.Wrap(err, dataerrors.ErrorTypeConfig, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec
		return dataerrors.Wrap(err, dataerrors.ErrorTypeFile, "failed to write config file").
			WithDetail("file", path)
	}
	return nil
}
