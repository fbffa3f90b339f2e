package format

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlindent/pkg/dialect"
	"github.com/pseudomuto/sqlindent/pkg/lexer"
	"github.com/pseudomuto/sqlindent/pkg/token"
)

// KeywordCase controls how keywords are written.
type KeywordCase string

const (
	// UpperCase writes keywords in upper case (the default)
	UpperCase KeywordCase = "upper"
	// LowerCase writes keywords in lower case
	LowerCase KeywordCase = "lower"
	// PreserveCase keeps keywords as written
	PreserveCase KeywordCase = "preserve"
)

func (c KeywordCase) apply(s string) string {
	switch c {
	case LowerCase:
		return strings.ToLower(s)
	case PreserveCase:
		return s
	default:
		return strings.ToUpper(s)
	}
}

type (
	// FormatterOptions controls formatting behavior
	FormatterOptions struct {
		// IndentSize specifies the number of spaces for each indent level
		IndentSize int
		// UseTabs indents with one tab per level instead of spaces
		UseTabs bool
		// LineSeparator ends every line (default "\n")
		LineSeparator string
		// KeywordCase controls keyword casing
		KeywordCase KeywordCase
		// Compact keeps clause bodies on the same line as their keyword
		Compact bool
		// BreakBeforeCloseBracket puts bracket contents on their own lines
		BreakBeforeCloseBracket bool
		// BreakBeforeComma starts list lines with the comma
		BreakBeforeComma bool
		// Functions are extra function names on top of the dialect's
		Functions []string
		// Logger receives debug output from the engine
		Logger *slog.Logger
	}

	// Formatter lays out SQL scripts for one dialect. A Formatter is safe for
	// concurrent use; every call runs its own Engine.
	Formatter struct {
		options FormatterOptions
		dialect *dialect.Dialect
		lexer   *lexer.Lexer
		err     error
	}
)

// Defaults are the standard formatting options.
var Defaults = FormatterOptions{
	IndentSize:    2,
	LineSeparator: "\n",
	KeywordCase:   UpperCase,
}

// New creates a Formatter for the given dialect. A nil dialect selects
// dialect.Default().
func New(opts FormatterOptions, d *dialect.Dialect) *Formatter {
	if d == nil {
		d = dialect.Default()
	}

	if len(opts.Functions) > 0 {
		d = d.WithFunctions(opts.Functions...)
	}

	if opts.LineSeparator == "" {
		opts.LineSeparator = "\n"
	}

	lex, err := lexer.New(d)
	return &Formatter{options: opts, dialect: d, lexer: lex, err: err}
}

// Format formats a SQL script. A trailing line break in sql is kept.
//
// Example:
//
//	out, err := format.New(format.Defaults, dialect.Default()).Format("select a, b from t where a = 1")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out)
//
// Output:
//
//	SELECT
//	  a,
//	  b
//	FROM
//	  t
//	WHERE
//	  a = 1
func (f *Formatter) Format(sql string) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	tokens, err := f.lexer.Tokenize(sql)
	if err != nil {
		return "", err
	}

	tokens = f.normalize(tokens)
	if len(tokens) == 0 {
		return "", nil
	}

	tokens = NewEngine(f.engineConfig(), f.dialect).Format(tokens)
	tokens = f.tidy(tokens)

	out := token.Join(tokens)
	if strings.HasSuffix(sql, "\n") {
		out += f.options.LineSeparator
	}

	return out, nil
}

// FormatReader formats everything read from r and writes the result to w.
func (f *Formatter) FormatReader(w io.Writer, r io.Reader) error {
	sql, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read SQL")
	}

	out, err := f.Format(string(sql))
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, out); err != nil {
		return errors.Wrap(err, "failed to write formatted SQL")
	}

	return nil
}

// Format formats sql with the given options and dialect (convenience function).
func Format(sql string, opts FormatterOptions, d *dialect.Dialect) (string, error) {
	return New(opts, d).Format(sql)
}

func (f *Formatter) engineConfig() EngineConfig {
	indent := "\t"
	if !f.options.UseTabs {
		indent = strings.Repeat(" ", max(f.options.IndentSize, 0))
	}

	return EngineConfig{
		Indent:                  indent,
		LineSeparator:           f.options.LineSeparator,
		Compact:                 f.options.Compact,
		BreakBeforeCloseBracket: f.options.BreakBeforeCloseBracket,
		BreakBeforeComma:        f.options.BreakBeforeComma,
		IsFunction:              f.dialect.IsFunction,
		Logger:                  f.options.Logger,
	}
}
