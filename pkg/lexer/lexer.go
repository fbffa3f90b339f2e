package lexer

import (
	"regexp"
	"strings"

	participle "github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlindent/pkg/dialect"
	"github.com/pseudomuto/sqlindent/pkg/token"
)

const (
	ruleLineComment  = "LineComment"
	ruleBlockComment = "BlockComment"
	ruleCommand      = "Command"
	ruleString       = "String"
	ruleQuotedIdent  = "QuotedIdent"
	ruleNumber       = "Number"
	ruleIdent        = "Ident"
	ruleOperator     = "Operator"
	ruleSymbol       = "Symbol"
	ruleWhitespace   = "Whitespace"
	ruleChar         = "Char"
)

// Lexer turns SQL text into classified tokens for a single dialect. A Lexer is
// immutable after New and safe for concurrent use.
type Lexer struct {
	dialect *dialect.Dialect
	def     *participle.StatefulDefinition
	names   map[participle.TokenType]string
}

// New builds a lexer for the given dialect.
func New(d *dialect.Dialect) (*Lexer, error) {
	if d == nil {
		return nil, errors.New("dialect is required")
	}

	def, err := participle.NewSimple(rules(d))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build lexer for dialect %s", d.Name)
	}

	names := make(map[participle.TokenType]string)
	for name, typ := range def.Symbols() {
		names[typ] = name
	}

	return &Lexer{dialect: d, def: def, names: names}, nil
}

// Tokenize is a convenience wrapper that builds a lexer for d and tokenizes sql.
func Tokenize(sql string, d *dialect.Dialect) ([]*token.Token, error) {
	l, err := New(d)
	if err != nil {
		return nil, err
	}

	return l.Tokenize(sql)
}

// Tokenize splits sql into tokens. Concatenating the Text of the returned
// tokens reproduces sql exactly.
//
// Example:
//
//	l, _ := lexer.New(dialect.Default())
//	tokens, err := l.Tokenize("SELECT a FROM t;")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, t := range tokens {
//		fmt.Println(t)
//	}
func (l *Lexer) Tokenize(sql string) ([]*token.Token, error) {
	lex, err := l.def.LexString("", sql)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start lexer")
	}

	raw, err := participle.ConsumeAll(lex)
	if err != nil {
		return nil, errors.Wrap(err, "failed to tokenize SQL")
	}

	tokens := make([]*token.Token, 0, len(raw))
	for _, t := range raw {
		if t.EOF() {
			break
		}
		tokens = append(tokens, token.New(l.classify(t), t.Value))
	}

	return l.applyDelimiters(qualifiedNames(tokens)), nil
}

// qualifiedNames turns keywords that are part of a dotted name (t.values,
// table.id) back into plain identifiers.
func qualifiedNames(tokens []*token.Token) []*token.Token {
	isDot := func(i int) bool {
		return i >= 0 && i < len(tokens) && tokens[i].Kind == token.Symbol && tokens[i].Text == "."
	}

	for i, tok := range tokens {
		if tok.Kind == token.Keyword && (isDot(i-1) || isDot(i+1)) {
			tok.Kind = token.Other
		}
	}

	return tokens
}

func (l *Lexer) classify(t participle.Token) token.Kind {
	switch l.names[t.Type] {
	case ruleLineComment, ruleBlockComment:
		return token.Comment
	case ruleCommand:
		return token.Command
	case ruleWhitespace:
		return token.Space
	case ruleOperator, ruleSymbol:
		return token.Symbol
	case ruleIdent:
		if l.dialect.IsKeyword(t.Value) || containsFold(l.dialect.Delimiters, t.Value) {
			return token.Keyword
		}
	}

	return token.Other
}

// applyDelimiters folds delimiter redefinition lines into Command tokens and
// merges symbol runs that spell a multi-character delimiter into one token.
func (l *Lexer) applyDelimiters(tokens []*token.Token) []*token.Token {
	active := l.dialect.StatementDelimiters()
	redefiner := l.dialect.DelimiterRedefiner()

	out := make([]*token.Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if redefiner != "" && tok.Kind != token.Space && strings.EqualFold(tok.Text, redefiner) && atLineStart(out) {
			end := i + 1
			for end < len(tokens) && !(tokens[end].Kind == token.Space && strings.ContainsAny(tokens[end].Text, "\r\n")) {
				end++
			}

			text := strings.TrimSpace(token.Join(tokens[i:end]))
			out = append(out, token.New(token.Command, text))
			if fields := strings.Fields(text); len(fields) > 1 {
				active = []string{fields[len(fields)-1]}
			}

			// trailing blanks before the line break stay as a space token
			if trailing := token.Join(tokens[i:end])[len(text):]; trailing != "" {
				out = append(out, token.New(token.Space, trailing))
			}

			i = end - 1
			continue
		}

		if tok.Kind == token.Symbol || tok.Kind == token.Other {
			if merged, last := mergeDelimiter(tokens, i, active); last > i {
				out = append(out, merged)
				i = last
				continue
			}
		}

		out = append(out, tok)
	}

	return out
}

func mergeDelimiter(tokens []*token.Token, start int, active []string) (*token.Token, int) {
	for _, delim := range active {
		if len(delim) < 2 {
			continue
		}

		acc := tokens[start].Text
		last := start
		for len(acc) < len(delim) && hasPrefixFold(delim, acc) && last+1 < len(tokens) && tokens[last+1].Kind != token.Space {
			last++
			acc += tokens[last].Text
		}

		if last > start && strings.EqualFold(acc, delim) {
			return token.New(token.Symbol, acc), last
		}
	}

	return nil, start
}

func atLineStart(out []*token.Token) bool {
	if len(out) == 0 {
		return true
	}

	prev := out[len(out)-1]
	return (prev.Kind == token.Space || prev.Kind == token.Comment) && strings.HasSuffix(strings.TrimRight(prev.Text, " \t"), "\n")
}

func rules(d *dialect.Dialect) []participle.SimpleRule {
	var out []participle.SimpleRule

	if markers := quoteAll(d.LineComments); len(markers) > 0 {
		out = append(out, participle.SimpleRule{
			Name:    ruleLineComment,
			Pattern: `(?:` + strings.Join(markers, "|") + `)[^\r\n]*(?:\r?\n)?`,
		})
	}

	if open, close := d.BlockComment[0], d.BlockComment[1]; open != "" && close != "" {
		out = append(out, participle.SimpleRule{
			Name:    ruleBlockComment,
			Pattern: regexp.QuoteMeta(open) + `(?s:.*?)` + regexp.QuoteMeta(close),
		})
	}

	if d.CommandPrefix != "" {
		out = append(out, participle.SimpleRule{
			Name:    ruleCommand,
			Pattern: regexp.QuoteMeta(d.CommandPrefix) + `[A-Za-z][^\r\n]*`,
		})
	}

	out = append(out, participle.SimpleRule{Name: ruleString, Pattern: `'(?:[^'\\]|\\.|'')*'`})

	if quoted := quotedIdentPatterns(d.QuoteChars); len(quoted) > 0 {
		out = append(out, participle.SimpleRule{Name: ruleQuotedIdent, Pattern: strings.Join(quoted, "|")})
	}

	return append(out,
		participle.SimpleRule{Name: ruleNumber, Pattern: `\d+(?:\.\d*)?(?:[eE][+-]?\d+)?|\.\d+`},
		participle.SimpleRule{Name: ruleIdent, Pattern: `[\p{L}_][\p{L}\p{N}_]*`},
		participle.SimpleRule{Name: ruleOperator, Pattern: `::|<>|!=|<=|>=|\|\||:=|=>|->>|->`},
		participle.SimpleRule{Name: ruleSymbol, Pattern: `[(),.;=+\-*/%<>\[\]!:&|^~?@#${}]`},
		participle.SimpleRule{Name: ruleWhitespace, Pattern: `\s+`},
		participle.SimpleRule{Name: ruleChar, Pattern: `.`},
	)
}

func quotedIdentPatterns(chars []rune) []string {
	var out []string
	for _, c := range chars {
		switch c {
		case '[':
			out = append(out, `\[[^\]]*\]`)
		default:
			q := regexp.QuoteMeta(string(c))
			out = append(out, q+`(?:[^`+q+`]|`+q+q+`)*`+q)
		}
	}
	return out
}

func quoteAll(markers []string) []string {
	var out []string
	for _, m := range markers {
		if m != "" {
			out = append(out, regexp.QuoteMeta(m))
		}
	}
	return out
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
