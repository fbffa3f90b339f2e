package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the project configuration looked up in the working directory
	DefaultConfigFile = "sqlindent.yaml"

	// ConfigEnvVar overrides the configuration file path
	ConfigEnvVar = "SQLINDENT_CONFIG"

	// DefaultDialect is used when neither flags nor configuration name one
	DefaultDialect = "standard"

	// DefaultIndentSize is the number of spaces per indent level
	DefaultIndentSize = 2

	// DefaultClickHouseVersion is the server image tag used by integration tests
	DefaultClickHouseVersion = "25.7"

	// SQLFileExt is the extension of files picked up when formatting directories
	SQLFileExt = ".sql"
)
