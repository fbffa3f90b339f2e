package token

import "strings"

// Kind classifies a token produced by the lexer.
type Kind int

const (
	// Other covers identifiers, literals and anything not otherwise classified.
	Other Kind = iota
	Keyword
	Symbol
	Comment
	Command
	Space
)

var kindNames = [...]string{
	Other:   "OTHER",
	Keyword: "KEYWORD",
	Symbol:  "SYMBOL",
	Comment: "COMMENT",
	Command: "COMMAND",
	Space:   "SPACE",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// Token is a single classified unit of SQL text. Only the Text of Space tokens
// is rewritten by the formatter.
type Token struct {
	Kind Kind
	Text string
}

// New creates a token of the given kind.
func New(kind Kind, text string) *Token {
	return &Token{Kind: kind, Text: text}
}

// Is reports whether the token is of the given kind. A nil token is never of any kind.
func (t *Token) Is(kind Kind) bool {
	return t != nil && t.Kind == kind
}

// Upper returns the upper-cased text used for case-insensitive comparisons.
func (t *Token) Upper() string {
	return strings.ToUpper(t.Text)
}

func (t *Token) String() string {
	return t.Kind.String() + "(" + t.Text + ")"
}

// Join concatenates the text of all tokens.
func Join(tokens []*Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.Text)
	}
	return sb.String()
}

// NonSpace returns copies of every non-space token in order.
func NonSpace(tokens []*Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != Space {
			out = append(out, *t)
		}
	}
	return out
}
