// Package logging configures log/slog for the sqlindent CLI.
//
// Records are rendered by github.com/lmittmann/tint on stderr so they never mix
// with formatted SQL written to stdout.
package logging
