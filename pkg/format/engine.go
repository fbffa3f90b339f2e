package format

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/pseudomuto/sqlindent/pkg/token"
)

type (
	// Syntax is the part of a SQL dialect read by the Engine. *dialect.Dialect
	// satisfies it.
	Syntax interface {
		IsBlockHeader(word string) bool
		IsBlockStart(word string) bool
		IsBlockEnd(word string) bool
		IsLineComment(text string) bool
		IsBlockComment(text string) bool
		StatementDelimiters() []string
		DelimiterRedefiner() string
	}

	// EngineConfig controls the layout produced by an Engine.
	EngineConfig struct {
		// Indent is emitted once per indent level
		Indent string

		// LineSeparator starts every inserted line. Defaults to "\n".
		LineSeparator string

		// Compact keeps clause bodies on the keyword's line
		Compact bool

		// BreakBeforeCloseBracket puts bracket contents on their own indented
		// lines and the closing bracket on a line of its own
		BreakBeforeCloseBracket bool

		// BreakBeforeComma starts list items with the comma instead of ending
		// the previous item with it
		BreakBeforeComma bool

		// IsFunction reports whether an identifier names a function. Brackets
		// opened right after a function name never contain line breaks.
		IsFunction func(name string) bool

		// Logger receives debug output. Defaults to slog.Default().
		Logger *slog.Logger
	}

	// Engine rewrites the whitespace of a token sequence so that every clause
	// starts on its own line and nested blocks are indented. Only SPACE tokens
	// are inserted or rewritten; every other token keeps its kind, text and
	// relative order.
	//
	// An Engine carries state for the duration of a Format call and is not
	// safe for concurrent use. Use one Engine per goroutine.
	Engine struct {
		cfg    EngineConfig
		syntax Syntax
		log    *slog.Logger

		tokens []*token.Token
		delims delimiters

		indent            int
		bracketDepth      int
		bracketIndents    []int
		functionBrackets  []bool
		conditionBrackets []bool
		firstCondition    bool
		encounterBetween  bool
	}
)

// NewEngine creates an Engine for the given layout and dialect.
func NewEngine(cfg EngineConfig, syntax Syntax) *Engine {
	if cfg.LineSeparator == "" {
		cfg.LineSeparator = "\n"
	}

	if cfg.IsFunction == nil {
		cfg.IsFunction = func(string) bool { return false }
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Engine{cfg: cfg, syntax: syntax, log: log}
}

// Format lays out tokens and returns the resulting sequence. The input slice
// may be modified and must not be used afterwards; SPACE tokens are inserted
// into the returned slice as needed.
//
// Format never fails. A token whose handler hits something unexpected keeps
// its surrounding whitespace and formatting continues with the next token.
//
// Example:
//
//	tokens, _ := lexer.Tokenize("SELECT a, b FROM t", dialect.Default())
//	engine := format.NewEngine(format.EngineConfig{Indent: "  "}, dialect.Default())
//	fmt.Println(token.Join(engine.Format(tokens)))
func (e *Engine) Format(tokens []*token.Token) []*token.Token {
	e.reset(tokens)

	for i := 0; i < len(e.tokens); i++ {
		i += e.step(i)
	}

	return e.tokens
}

// step dispatches the token at i, skipping it when its handler panics.
func (e *Engine) step(i int) (shift int) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Debug("indent engine skipped a token", "panic", r, "index", i, "token", e.tokens[i].Text)
			shift = 0
		}
	}()

	return e.dispatch(i)
}

func (e *Engine) reset(tokens []*token.Token) {
	e.tokens = tokens
	e.delims = newDelimiters(e.syntax.StatementDelimiters())
	e.indent = 0
	e.bracketDepth = 0
	e.bracketIndents = nil
	e.functionBrackets = nil
	e.conditionBrackets = nil
	e.firstCondition = false
	e.encounterBetween = false
}

// dispatch handles the token at i and returns the number of tokens inserted
// before it.
func (e *Engine) dispatch(i int) int {
	tok := e.tokens[i]

	switch tok.Kind {
	case token.Symbol:
		return e.symbol(i, tok.Upper())
	case token.Keyword:
		return e.keyword(i, tok.Upper())
	case token.Comment:
		return e.comment(i, tok)
	case token.Command:
		return e.command(i, tok)
	}

	if e.delims.match(tok.Text) {
		e.indent = 0
		e.breakAt(i+1, e.indent)
	}

	return 0
}

// breakAt starts a new line at pos indented level times and returns the number
// of tokens inserted. Nothing happens when pos is out of range or when any
// enclosing bracket belongs to a function call.
//
// Breaking at a statement delimiter puts a doubled line separator after it
// instead. Otherwise an existing space token at pos or right before it is
// rewritten, and a new space token is inserted only when neither exists.
func (e *Engine) breakAt(pos, level int) int {
	if pos < 0 || pos >= len(e.tokens) || slices.Contains(e.functionBrackets, true) {
		return 0
	}

	target := e.tokens[pos]
	switch {
	case target.Kind == token.Space:
		// never narrow a break that is already there
		if ws := e.whitespace(pos, level); !strings.Contains(target.Text, ws) {
			target.Text = ws
		}
		return 0
	case e.delims.match(target.Text):
		if pos+1 >= len(e.tokens) {
			return 0
		}

		ws := e.whitespace(pos+1, level)
		if next := e.tokens[pos+1]; next.Kind == token.Space {
			next.Text = ws + ws
			return 0
		}

		e.insert(pos+1, ws+ws)
		return 1
	case pos > 0 && e.tokens[pos-1].Kind == token.Space:
		e.tokens[pos-1].Text = e.whitespace(pos-1, level)
		return 0
	}

	e.insert(pos, e.whitespace(pos, level))
	return 1
}

// whitespace builds the text of a space token sitting at pos. A line comment
// already ends the line, so no separator follows one.
func (e *Engine) whitespace(pos, level int) string {
	var sb strings.Builder
	if pos == 0 || !e.isLineComment(e.tokens[pos-1]) {
		sb.WriteString(e.cfg.LineSeparator)
	}

	for range level {
		sb.WriteString(e.cfg.Indent)
	}

	return sb.String()
}

func (e *Engine) insert(pos int, text string) {
	e.tokens = slices.Insert(e.tokens, pos, token.New(token.Space, text))
}

func (e *Engine) isLineComment(tok *token.Token) bool {
	return tok.Is(token.Comment) && e.syntax.IsLineComment(tok.Text)
}

func (e *Engine) prevNonSpace(i int) *token.Token {
	for j := i - 1; j >= 0; j-- {
		if e.tokens[j].Kind != token.Space {
			return e.tokens[j]
		}
	}
	return nil
}

// prevKeyword returns the upper-cased keyword closest before i, or "".
func (e *Engine) prevKeyword(i int) string {
	for j := i - 1; j >= 0; j-- {
		if e.tokens[j].Kind == token.Keyword {
			return e.tokens[j].Upper()
		}
	}
	return ""
}

// nextKeywordIndex returns the index of the first keyword after i, or -1.
func (e *Engine) nextKeywordIndex(i int) int {
	for j := i + 1; j < len(e.tokens); j++ {
		if e.tokens[j].Kind == token.Keyword {
			return j
		}
	}
	return -1
}

func (e *Engine) nextKeyword(i int) string {
	if j := e.nextKeywordIndex(i); j >= 0 {
		return e.tokens[j].Upper()
	}
	return ""
}

// lastInStatement returns the closest keyword before i that belongs to words,
// without looking past the start of the current statement.
func (e *Engine) lastInStatement(i int, words ...string) string {
	for j := i - 1; j >= 0; j-- {
		tok := e.tokens[j]
		if tok.Kind == token.Space {
			continue
		}

		if tok.Kind == token.Command || e.delims.match(tok.Text) {
			return ""
		}

		if tok.Kind == token.Keyword && slices.Contains(words, tok.Upper()) {
			return tok.Upper()
		}
	}
	return ""
}

// isJoinStart reports whether the join keyword at i begins a join clause such
// as LEFT OUTER JOIN. The clause must end with JOIN and no other join keyword
// may come right before i.
func (e *Engine) isJoinStart(i int) bool {
	for j := i - 1; j >= 0; j-- {
		tok := e.tokens[j]
		if tok.Kind == token.Space || tok.Kind == token.Symbol {
			continue
		}

		if slices.Contains(joinKeywords, tok.Upper()) {
			return false
		}
		break
	}

	for j := i; j < len(e.tokens); j++ {
		tok := e.tokens[j]
		if tok.Kind == token.Space || tok.Kind == token.Symbol {
			continue
		}

		word := tok.Upper()
		if word == "JOIN" {
			return true
		}

		if !slices.Contains(joinKeywords, word) {
			return false
		}
	}

	return false
}
