package config_test

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/pseudomuto/sqlindent/pkg/config"
	"github.com/pseudomuto/sqlindent/pkg/consts"
	"github.com/pseudomuto/sqlindent/pkg/dialect"
	"github.com/pseudomuto/sqlindent/pkg/format"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/sqlindent.yaml
var testConfigYAML string

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("empty input uses defaults", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, Default(), config)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader("other_key: value"))
		require.NoError(t, err)
		require.Equal(t, consts.DefaultDialect, config.DialectName)
		require.Equal(t, consts.DefaultIndentSize, config.IndentSize)
		require.Equal(t, "lf", config.LineSeparator)
		require.Equal(t, "upper", config.KeywordCase)
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			name string
			yaml string
			err  string
		}{
			{name: "invalid yaml", yaml: "invalid: yaml: [", err: "failed to unmarshal config"},
			{name: "unknown dialect", yaml: "dialect: cobol", err: "unknown dialect"},
			{name: "bad line separator", yaml: "line_separator: cr", err: "line_separator must be lf or crlf"},
			{name: "bad keyword case", yaml: "keyword_case: title", err: "keyword_case must be upper, lower or preserve"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				config, err := LoadConfig(strings.NewReader(tt.yaml))
				require.ErrorContains(t, err, tt.err)
				require.Nil(t, config)
			})
		}
	})

	t.Run("values are case-insensitive", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader("dialect: Oracle\nline_separator: CRLF\nkeyword_case: Lower\n"))
		require.NoError(t, err)
		require.Equal(t, "crlf", config.LineSeparator)
		require.Equal(t, "lower", config.KeywordCase)

		d, err := config.Dialect()
		require.NoError(t, err)
		require.Equal(t, "oracle", d.Name)
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sqlindent.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), consts.ModeFile))

		config, err := LoadConfigFile(path)
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		config, err := LoadConfigFile("nonexistent.yaml")
		require.ErrorContains(t, err, "failed to open file")
		require.Nil(t, config)

		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("dialect: nope"), consts.ModeFile))

		config, err = LoadConfigFile(path)
		require.ErrorContains(t, err, "invalid config")
		require.ErrorIs(t, err, dialect.ErrUnknownDialect)
		require.Nil(t, config)
	})
}

func TestResolve(t *testing.T) {
	t.Run("defaults without a config file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv(consts.ConfigEnvVar, "")

		config, err := Resolve("")
		require.NoError(t, err)
		require.Equal(t, Default(), config)
	})

	t.Run("config file in working directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, consts.DefaultConfigFile), []byte(testConfigYAML), consts.ModeFile))

		t.Chdir(dir)
		t.Setenv(consts.ConfigEnvVar, "")

		config, err := Resolve("")
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("environment variable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("dialect: postgres"), consts.ModeFile))

		t.Chdir(t.TempDir())
		t.Setenv(consts.ConfigEnvVar, path)

		config, err := Resolve("")
		require.NoError(t, err)
		require.Equal(t, "postgres", config.DialectName)
	})

	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv(consts.ConfigEnvVar, "does-not-exist.yaml")

		path := filepath.Join(t.TempDir(), "explicit.yaml")
		require.NoError(t, os.WriteFile(path, []byte("dialect: sqlserver"), consts.ModeFile))

		config, err := Resolve(path)
		require.NoError(t, err)
		require.Equal(t, "sqlserver", config.DialectName)
	})

	t.Run("missing explicit path", func(t *testing.T) {
		_, err := Resolve(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorContains(t, err, "failed to open file")
	})
}

func TestConfig_Options(t *testing.T) {
	config, err := LoadConfig(strings.NewReader(testConfigYAML))
	require.NoError(t, err)

	require.Equal(t, format.FormatterOptions{
		IndentSize:              4,
		LineSeparator:           "\r\n",
		KeywordCase:             format.LowerCase,
		BreakBeforeCloseBracket: true,
		BreakBeforeComma:        true,
		Functions:               []string{"my_udf", "geo_distance"},
	}, config.Options())

	require.Equal(t, format.Defaults, Default().Options())
}

// validateTestConfig validates that a config contains the expected test data
func validateTestConfig(t *testing.T, config *Config) {
	t.Helper()
	require.NotNil(t, config)
	require.Equal(t, "mysql", config.DialectName)
	require.Equal(t, 4, config.IndentSize)
	require.False(t, config.UseTabs)
	require.Equal(t, "crlf", config.LineSeparator)
	require.Equal(t, "lower", config.KeywordCase)
	require.False(t, config.Compact)
	require.True(t, config.BreakBeforeCloseBracket)
	require.True(t, config.BreakBeforeComma)
	require.Equal(t, []string{"my_udf", "geo_distance"}, config.Functions)
	require.Equal(t, ClickHouse{
		DSN:      "localhost:9000",
		CAFile:   "certs/ca.crt",
		CertFile: "certs/client.crt",
		KeyFile:  "certs/client.key",
	}, config.ClickHouse)
}
