package format

import (
	"testing"

	"github.com/pseudomuto/sqlindent/pkg/dialect"
	"github.com/pseudomuto/sqlindent/pkg/lexer"
	"github.com/stretchr/testify/require"
)

func TestEngine_BracketStacksStayInStep(t *testing.T) {
	inputs := []string{
		"SELECT (a + (b * c)) FROM t",
		"SELECT count(*), max(x) FROM t WHERE a IN (1, 2) AND (b = 1 OR c = 2)",
		"SELECT a) FROM t",
		"SELECT ((( FROM t",
		"INSERT INTO t (a, b) VALUES (1, coalesce(2, 3))",
	}

	d := dialect.Default()
	for _, sql := range inputs {
		t.Run(sql, func(t *testing.T) {
			tokens, err := lexer.Tokenize(sql, d)
			require.NoError(t, err)

			for _, cfg := range []EngineConfig{{}, {BreakBeforeCloseBracket: true}} {
				cfg.IsFunction = d.IsFunction
				e := NewEngine(cfg, d)
				e.reset(tokens)

				for i := 0; i < len(e.tokens); i++ {
					i += e.dispatch(i)

					require.Equal(t, e.bracketDepth, len(e.bracketIndents))
					require.Equal(t, e.bracketDepth, len(e.functionBrackets))
					require.Equal(t, e.bracketDepth, len(e.conditionBrackets))
					require.GreaterOrEqual(t, e.bracketDepth, 0)
				}
			}
		})
	}
}

func TestEngine_BalancedBracketsRestoreIndent(t *testing.T) {
	d := dialect.Default()
	tokens, err := lexer.Tokenize("SELECT a FROM t WHERE x IN (SELECT y FROM u)", d)
	require.NoError(t, err)

	e := NewEngine(EngineConfig{Indent: "  ", BreakBeforeCloseBracket: true}, d)
	e.Format(tokens)

	require.Zero(t, e.bracketDepth)
	require.Empty(t, e.bracketIndents)
	require.Equal(t, 1, e.indent)
}

func TestDelimiters(t *testing.T) {
	d := newDelimiters([]string{";", "go", " "})
	require.Equal(t, delimiters{";", "GO"}, d)
	require.True(t, d.match("Go"))
	require.False(t, d.match("$$"))

	require.False(t, d.redefine("SET x = 1", "DELIMITER"))
	require.False(t, d.redefine("DELIMITER", "DELIMITER"))
	require.False(t, d.redefine("DELIMITER $$", ""))
	require.Equal(t, delimiters{";", "GO"}, d)

	require.True(t, d.redefine("delimiter $$", "DELIMITER"))
	require.Equal(t, delimiters{"$$"}, d)
	require.True(t, d.match("$$"))
	require.False(t, d.match(";"))
}
