package config

import (
	"io"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlindent/pkg/consts"
	"github.com/pseudomuto/sqlindent/pkg/dialect"
	"github.com/pseudomuto/sqlindent/pkg/format"
	"gopkg.in/yaml.v3"
)

var lineSeparators = map[string]string{
	"lf":   "\n",
	"crlf": "\r\n",
}

type (
	// ClickHouse represents ClickHouse-specific configuration settings.
	ClickHouse struct {
		// DSN of a server whose system.functions and system.keywords extend the
		// clickhouse dialect. Leave empty to use the built-in lists only.
		DSN string `yaml:"dsn,omitempty"`

		// TLS files for mTLS connections; used only when all three are set
		CAFile   string `yaml:"ca_file,omitempty"`
		CertFile string `yaml:"cert_file,omitempty"`
		KeyFile  string `yaml:"key_file,omitempty"`
	}

	// Config represents the formatting configuration of a project (sqlindent.yaml).
	Config struct {
		// DialectName selects a built-in dialect (see dialect.Names)
		DialectName string `yaml:"dialect"`

		// IndentSize is the number of spaces per indent level
		IndentSize int `yaml:"indent_size"`

		// UseTabs indents with tabs instead of spaces
		UseTabs bool `yaml:"use_tabs"`

		// LineSeparator is either lf or crlf
		LineSeparator string `yaml:"line_separator"`

		// KeywordCase is one of upper, lower or preserve
		KeywordCase string `yaml:"keyword_case"`

		Compact                 bool `yaml:"compact"`
		BreakBeforeCloseBracket bool `yaml:"break_before_close_bracket"`
		BreakBeforeComma        bool `yaml:"break_before_comma"`

		// Functions are extra function names whose arguments never break
		Functions []string `yaml:"functions,omitempty"`

		// ClickHouse contains ClickHouse-specific configuration settings
		ClickHouse ClickHouse `yaml:"clickhouse"`
	}
)

// Default returns the configuration used when a project has no sqlindent.yaml.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// Missing values are filled with defaults after decoding and the result is
// validated. An empty document yields the default configuration.
//
// Example:
//
//	yamlData := `
//	dialect: mysql
//	indent_size: 4
//	keyword_case: lower
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Dialect: %s\n", cfg.DialectName)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("sqlindent.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	cfg, err := LoadConfig(f)
	return cfg, errors.Wrapf(err, "invalid config: %s", path)
}

// Resolve finds the configuration for a run. An explicit path wins, then the
// SQLINDENT_CONFIG environment variable. Without either, sqlindent.yaml in the
// working directory is used when it exists and the defaults otherwise.
func Resolve(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(consts.ConfigEnvVar)
	}

	if path != "" {
		return LoadConfigFile(path)
	}

	if _, err := os.Stat(consts.DefaultConfigFile); os.IsNotExist(err) {
		return Default(), nil
	}

	return LoadConfigFile(consts.DefaultConfigFile)
}

// Dialect returns the configured built-in dialect.
func (c *Config) Dialect() (*dialect.Dialect, error) {
	return dialect.Lookup(c.DialectName)
}

// Options converts the configuration into formatter options.
func (c *Config) Options() format.FormatterOptions {
	return format.FormatterOptions{
		IndentSize:              c.IndentSize,
		UseTabs:                 c.UseTabs,
		LineSeparator:           lineSeparators[c.LineSeparator],
		KeywordCase:             format.KeywordCase(c.KeywordCase),
		Compact:                 c.Compact,
		BreakBeforeCloseBracket: c.BreakBeforeCloseBracket,
		BreakBeforeComma:        c.BreakBeforeComma,
		Functions:               slices.Clone(c.Functions),
	}
}

func (c *Config) applyDefaults() {
	if c.DialectName == "" {
		c.DialectName = consts.DefaultDialect
	}
	if c.IndentSize <= 0 {
		c.IndentSize = consts.DefaultIndentSize
	}
	if c.LineSeparator == "" {
		c.LineSeparator = "lf"
	}
	if c.KeywordCase == "" {
		c.KeywordCase = string(format.UpperCase)
	}

	c.LineSeparator = strings.ToLower(c.LineSeparator)
	c.KeywordCase = strings.ToLower(c.KeywordCase)
}

func (c *Config) validate() error {
	if _, err := c.Dialect(); err != nil {
		return err
	}

	if _, ok := lineSeparators[c.LineSeparator]; !ok {
		return errors.Errorf("line_separator must be lf or crlf, got %q", c.LineSeparator)
	}

	switch format.KeywordCase(c.KeywordCase) {
	case format.UpperCase, format.LowerCase, format.PreserveCase:
	default:
		return errors.Errorf("keyword_case must be upper, lower or preserve, got %q", c.KeywordCase)
	}

	return nil
}
