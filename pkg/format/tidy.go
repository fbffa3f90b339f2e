package format

import (
	"slices"
	"strings"

	"github.com/pseudomuto/sqlindent/pkg/token"
)

// mergedKeywords are two-word clauses the engine treats as a single keyword.
var mergedKeywords = map[string]string{
	"ORDER":   "BY",
	"GROUP":   "BY",
	"CONNECT": "BY",
	"START":   "WITH",
}

// embeddedSymbols never get spaces around them when the input had none.
var embeddedSymbols = []string{":", "::", ".", ">", "<", "[", "]", "#", "-", "'", "\"", "`"}

// normalize prepares lexed tokens for the engine: outer whitespace is dropped,
// keywords are cased, whitespace collapses to a single space (and disappears
// next to comments), multi-word clauses become one keyword and "( + )" becomes
// the outer join marker "(+)".
func (f *Formatter) normalize(tokens []*token.Token) []*token.Token {
	tokens = trimSpace(tokens)

	out := make([]*token.Token, 0, len(tokens))
	for _, tok := range tokens {
		var prev *token.Token
		if len(out) > 0 {
			prev = out[len(out)-1]
		}

		switch {
		case tok.Kind == token.Keyword:
			tok.Text = f.options.KeywordCase.apply(tok.Text)
		case tok.Kind == token.Space && prev.Is(token.Comment):
			continue
		case tok.Kind == token.Comment && prev.Is(token.Space):
			out = out[:len(out)-1]
		case tok.Kind == token.Space:
			tok.Text = " "
		}

		out = append(out, tok)
	}

	for i := 0; i+2 < len(out); i++ {
		t0, t1, t2 := out[i], out[i+1], out[i+2]

		if t0.Kind == token.Keyword && t1.Kind == token.Space && t2.Kind == token.Keyword {
			if second, ok := mergedKeywords[t0.Upper()]; ok && t2.Upper() == second {
				t0.Text += " " + t2.Text
				out = slices.Delete(out, i+1, i+3)
				continue
			}
		}

		if t0.Text == "(" && t1.Text == "+" && t2.Text == ")" {
			t0.Text = "(+)"
			out = slices.Delete(out, i+1, i+3)
		}
	}

	return out
}

// tidy cleans up after the engine: whitespace around a single token in
// brackets is removed, a space is added between tokens the input ran together
// and outer whitespace is dropped.
func (f *Formatter) tidy(tokens []*token.Token) []*token.Token {
	tokens = collapseBrackets(tokens)

	delims := newDelimiters(f.dialect.StatementDelimiters())
	redefiner := f.dialect.DelimiterRedefiner()

	out := make([]*token.Token, 0, len(tokens)+len(tokens)/2)
	for i, tok := range tokens {
		if tok.Kind == token.Command {
			delims.redefine(tok.Text, redefiner)
		}

		if i > 0 && needsSpace(tokens[i-1], tok, delims) {
			out = append(out, token.New(token.Space, " "))
		}
		out = append(out, tok)
	}

	return trimSpace(out)
}

// collapseBrackets turns "( x )", "( x)" and "(x )" into "(x)".
func collapseBrackets(tokens []*token.Token) []*token.Token {
	isSpace := func(i int) bool { return i < len(tokens) && tokens[i].Kind == token.Space }
	isText := func(i int, text string) bool { return i < len(tokens) && tokens[i].Text == text }
	isItem := func(i int) bool {
		return i < len(tokens) && tokens[i].Kind != token.Space && tokens[i].Text != "(" && tokens[i].Text != ")"
	}

	out := make([]*token.Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		out = append(out, tok)

		if tok.Text != "(" {
			continue
		}

		switch {
		case isSpace(i+1) && isItem(i+2) && isSpace(i+3) && isText(i+4, ")"):
			out = append(out, tokens[i+2], tokens[i+4])
			i += 4
		case isSpace(i+1) && isItem(i+2) && isText(i+3, ")"):
			out = append(out, tokens[i+2], tokens[i+3])
			i += 3
		case isItem(i+1) && isSpace(i+2) && isText(i+3, ")"):
			out = append(out, tokens[i+1], tokens[i+3])
			i += 3
		}
	}

	return out
}

func needsSpace(prev, tok *token.Token, delims delimiters) bool {
	switch {
	case prev.Kind == token.Space || tok.Kind == token.Space:
		return false
	case prev.Text == "(" || prev.Text == ")" || tok.Text == ")" || strings.HasPrefix(tok.Text, "("):
		return false
	case tok.Text == "," || tok.Text == ";" || delims.match(tok.Text):
		return false
	case prev.Kind == token.Comment && strings.HasSuffix(prev.Text, "\n"):
		return false
	case tok.Kind == token.Symbol && slices.Contains(embeddedSymbols, tok.Text):
		return false
	case prev.Kind == token.Symbol && slices.Contains(embeddedSymbols, prev.Text):
		return false
	case tok.Kind == token.Symbol && prev.Kind == token.Symbol:
		return false
	}

	return true
}

func trimSpace(tokens []*token.Token) []*token.Token {
	for len(tokens) > 0 && tokens[0].Kind == token.Space {
		tokens = tokens[1:]
	}

	for len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.Space {
		tokens = tokens[:len(tokens)-1]
	}

	return tokens
}
