package lexer_test

import (
	"testing"

	"github.com/pseudomuto/sqlindent/pkg/dialect"
	. "github.com/pseudomuto/sqlindent/pkg/lexer"
	"github.com/pseudomuto/sqlindent/pkg/token"
	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, name string) *dialect.Dialect {
	t.Helper()
	d, err := dialect.Lookup(name)
	require.NoError(t, err)
	return d
}

func render(tokens []*token.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.String()
	}
	return out
}

func TestNew_RequiresDialect(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "dialect is required")
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		sql     string
		want    []string
	}{
		{
			name:    "simple select",
			dialect: "standard",
			sql:     "SELECT a, count(*) FROM t -- c\nWHERE x = 'it''s';",
			want: []string{
				"KEYWORD(SELECT)", "SPACE( )", "OTHER(a)", "SYMBOL(,)", "SPACE( )",
				"OTHER(count)", "SYMBOL(()", "SYMBOL(*)", "SYMBOL())", "SPACE( )",
				"KEYWORD(FROM)", "SPACE( )", "OTHER(t)", "SPACE( )", "COMMENT(-- c\n)",
				"KEYWORD(WHERE)", "SPACE( )", "OTHER(x)", "SPACE( )", "SYMBOL(=)", "SPACE( )",
				"OTHER('it''s')", "SYMBOL(;)",
			},
		},
		{
			name:    "keywords are case insensitive",
			dialect: "standard",
			sql:     "select 1.5e3",
			want:    []string{"KEYWORD(select)", "SPACE( )", "OTHER(1.5e3)"},
		},
		{
			name:    "block comment",
			dialect: "standard",
			sql:     "/* multi\nline */SELECT",
			want:    []string{"COMMENT(/* multi\nline */)", "KEYWORD(SELECT)"},
		},
		{
			name:    "operators",
			dialect: "standard",
			sql:     "a >= b || c",
			want: []string{
				"OTHER(a)", "SPACE( )", "SYMBOL(>=)", "SPACE( )", "OTHER(b)", "SPACE( )",
				"SYMBOL(||)", "SPACE( )", "OTHER(c)",
			},
		},
		{
			name:    "control command",
			dialect: "standard",
			sql:     "@set x = 1\nSELECT 1",
			want:    []string{"COMMAND(@set x = 1)", "SPACE(\n)", "KEYWORD(SELECT)", "SPACE( )", "OTHER(1)"},
		},
		{
			name:    "hash comments in mysql",
			dialect: "mysql",
			sql:     "# note\nSELECT `a b`",
			want:    []string{"COMMENT(# note\n)", "KEYWORD(SELECT)", "SPACE( )", "OTHER(`a b`)"},
		},
		{
			name:    "bracket identifiers and GO in sqlserver",
			dialect: "sqlserver",
			sql:     "SELECT [my col]\nGO\n",
			want: []string{
				"KEYWORD(SELECT)", "SPACE( )", "OTHER([my col])", "SPACE(\n)", "KEYWORD(GO)", "SPACE(\n)",
			},
		},
		{
			name:    "backtick identifiers in clickhouse",
			dialect: "clickhouse",
			sql:     "SELECT toStartOfHour(`ts`) PREWHERE",
			want: []string{
				"KEYWORD(SELECT)", "SPACE( )", "OTHER(toStartOfHour)", "SYMBOL(()", "OTHER(`ts`)",
				"SYMBOL())", "SPACE( )", "KEYWORD(PREWHERE)",
			},
		},
		{
			name:    "delimiter redefinition",
			dialect: "mysql",
			sql:     "DELIMITER $$\nSELECT 1$$\nDELIMITER ;\n",
			want: []string{
				"COMMAND(DELIMITER $$)", "SPACE(\n)", "KEYWORD(SELECT)", "SPACE( )", "OTHER(1)",
				"SYMBOL($$)", "SPACE(\n)", "COMMAND(DELIMITER ;)", "SPACE(\n)",
			},
		},
		{
			name:    "redefined delimiter glued to a keyword",
			dialect: "mysql",
			sql:     "DELIMITER //\nEND//",
			want: []string{
				"COMMAND(DELIMITER //)", "SPACE(\n)", "KEYWORD(END)", "SYMBOL(//)",
			},
		},
		{
			name:    "redefiner only counts at line start",
			dialect: "mysql",
			sql:     "SELECT delimiter",
			want:    []string{"KEYWORD(SELECT)", "SPACE( )", "OTHER(delimiter)"},
		},
		{
			name:    "qualified names are identifiers in clickhouse",
			dialect: "clickhouse",
			sql:     "SELECT t.values, e.key FROM t",
			want: []string{
				"KEYWORD(SELECT)", "SPACE( )", "OTHER(t)", "SYMBOL(.)", "OTHER(values)", "SYMBOL(,)",
				"SPACE( )", "OTHER(e)", "SYMBOL(.)", "OTHER(key)", "SPACE( )", "KEYWORD(FROM)",
				"SPACE( )", "OTHER(t)",
			},
		},
		{
			name:    "qualified names are identifiers in standard",
			dialect: "standard",
			sql:     "SELECT table.id, cal.date",
			want: []string{
				"KEYWORD(SELECT)", "SPACE( )", "OTHER(table)", "SYMBOL(.)", "OTHER(id)", "SYMBOL(,)",
				"SPACE( )", "OTHER(cal)", "SYMBOL(.)", "OTHER(date)",
			},
		},
		{
			name:    "unterminated string",
			dialect: "standard",
			sql:     "SELECT 'abc",
			want:    []string{"KEYWORD(SELECT)", "SPACE( )", "OTHER(')", "OTHER(abc)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.sql, lookup(t, tt.dialect))
			require.NoError(t, err)
			require.Equal(t, tt.want, render(tokens))
			require.Equal(t, tt.sql, token.Join(tokens))
		})
	}
}

func TestTokenize_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"   \n\t",
		"SELECT *\r\nFROM t\r\n",
		"CREATE OR REPLACE PROCEDURE p IS BEGIN NULL; END;",
		"DELIMITER //\nCREATE PROCEDURE p() BEGIN SELECT 1; END//\nDELIMITER ;",
		"SELECT 'ünïcode', \"quoted \"\"id\"\"\" FROM t WHERE a <> b AND c != d",
		"SELECT a -- trailing comment without newline",
	}

	l, err := New(lookup(t, "mysql"))
	require.NoError(t, err)

	for _, sql := range inputs {
		tokens, err := l.Tokenize(sql)
		require.NoError(t, err)
		require.Equal(t, sql, token.Join(tokens))
	}
}

func TestTokenize_CustomDialect(t *testing.T) {
	d := dialect.New("tiny",
		dialect.Keywords("SELECT"),
		dialect.LineComments("//"),
		dialect.BlockComment("{", "}"),
		dialect.Delimiters("!!"),
	)

	tokens, err := Tokenize("SELECT 1 // one\n{ block }!!", d)
	require.NoError(t, err)
	require.Equal(t, []string{
		"KEYWORD(SELECT)", "SPACE( )", "OTHER(1)", "SPACE( )", "COMMENT(// one\n)",
		"COMMENT({ block })", "SYMBOL(!!)",
	}, render(tokens))
}
