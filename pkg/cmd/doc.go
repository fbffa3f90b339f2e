// Package cmd provides the sqlindent command-line interface.
//
// # Available Commands
//
//   - fmt: Indent SQL files, directories or standard input
//   - dialects: List the built-in dialects
//
// # Global Options
//
//   - --config, -c: Configuration file (also SQLINDENT_CONFIG, default sqlindent.yaml)
//   - --log-level: debug, info, warn or error
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Example Usage
//
//	sqlindent fmt query.sql                          # Print the formatted file
//	sqlindent fmt -w queries/                        # Rewrite every .sql file in place
//	sqlindent fmt --check queries/                   # Fail when anything is unformatted
//	cat query.sql | sqlindent fmt --dialect mysql    # Filter standard input
//	sqlindent fmt --dsn localhost:9000 -w analytics/ # Use a ClickHouse server's functions
package cmd
