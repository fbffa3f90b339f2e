// Package format lays out SQL scripts with dialect-aware indentation.
//
// The heart of the package is the Engine: a single forward pass over lexed
// tokens that only ever inserts or rewrites whitespace. It keeps an indent
// level and a stack of open brackets, and decides line breaks from the
// keywords, symbols, comments and commands it meets:
//
//   - SELECT, INSERT, UPDATE and DELETE start a statement and indent its body
//   - FROM, WHERE, GROUP BY and similar clauses sit one level out
//   - joins, set operators (UNION...), CASE/WHEN/ELSE/END and AND/OR get their
//     own lines, except the AND of BETWEEN x AND y
//   - function call arguments never break, nor do IN lists
//   - statement delimiters reset the indent and leave an empty line
//   - commands such as DELIMITER $$ sit on their own line and may replace the
//     statement delimiter for the rest of the script
//
// The Formatter wraps the Engine in a complete pipeline: tokenize with the
// dialect lexer, normalize whitespace and keyword case, run the Engine, then
// tidy spacing between tokens.
//
// Key features:
//   - Built-in dialects (see the dialect package) plus custom ones
//   - Spaces or tabs, configurable line separator
//   - Compact mode, break before closing brackets, leading commas
//   - Deterministic output: formatting formatted SQL changes nothing
//
// Usage:
//
//	// Object-oriented API with default options
//	formatter := format.New(format.Defaults, dialect.Default())
//	out, err := formatter.Format("select a, b from t where a = 1")
//
//	// Custom options for a specific dialect
//	mysql, _ := dialect.Lookup("mysql")
//	formatter := format.New(format.FormatterOptions{
//		IndentSize:       4,
//		KeywordCase:      format.LowerCase,
//		BreakBeforeComma: true,
//	}, mysql)
//
//	// Functional API
//	out, err := format.Format(sql, format.Defaults, dialect.Default())
//
//	// Streams
//	err := formatter.FormatReader(os.Stdout, os.Stdin)
//
// The Engine can also be driven directly with tokens from the lexer package,
// which is handy for editor integrations that keep their own token stream.
package format
