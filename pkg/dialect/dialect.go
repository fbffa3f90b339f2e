package dialect

import (
	"slices"
	"strings"
)

type (
	// Dialect describes the parts of a SQL dialect the lexer and the indent
	// engine care about. A Dialect is read-only once built; use WithFunctions
	// or WithKeywords to derive an extended copy.
	Dialect struct {
		// Name is the registry name, e.g. "mysql"
		Name string

		// BlockHeaders open a procedural block on their own (e.g. DECLARE)
		BlockHeaders []string

		// BlockBounds are begin/end keyword pairs (e.g. BEGIN/END)
		BlockBounds [][2]string

		// LineComments are the single-line comment markers (e.g. "--")
		LineComments []string

		// BlockComment is the multi-line comment open/close pair
		BlockComment [2]string

		// Delimiters separate statements (e.g. ";")
		Delimiters []string

		// Redefiner is the command that changes the statement delimiter at
		// runtime (e.g. MySQL's DELIMITER). Empty when unsupported.
		Redefiner string

		// CommandPrefix starts a client-side control command (e.g. "@set").
		// Empty disables control commands.
		CommandPrefix string

		// QuoteChars open quoted identifiers: '"', '`' or '['
		QuoteChars []rune

		keywords  map[string]struct{}
		functions map[string]struct{}
	}
)

// IsKeyword reports whether word is a keyword of the dialect. The check is case-insensitive.
func (d *Dialect) IsKeyword(word string) bool {
	_, ok := d.keywords[strings.ToUpper(word)]
	return ok
}

// IsFunction reports whether name is a known function of the dialect. The check is case-insensitive.
func (d *Dialect) IsFunction(name string) bool {
	_, ok := d.functions[strings.ToUpper(name)]
	return ok
}

// IsBlockHeader reports whether word opens a block on its own.
func (d *Dialect) IsBlockHeader(word string) bool {
	return containsFold(d.BlockHeaders, word)
}

// IsBlockStart reports whether word is the opening half of a block bound pair.
func (d *Dialect) IsBlockStart(word string) bool {
	for _, pair := range d.BlockBounds {
		if strings.EqualFold(pair[0], word) {
			return true
		}
	}
	return false
}

// IsBlockEnd reports whether word is the closing half of a block bound pair.
func (d *Dialect) IsBlockEnd(word string) bool {
	for _, pair := range d.BlockBounds {
		if strings.EqualFold(pair[1], word) {
			return true
		}
	}
	return false
}

// IsLineComment reports whether text starts with one of the single-line comment markers.
func (d *Dialect) IsLineComment(text string) bool {
	for _, marker := range d.LineComments {
		if marker != "" && strings.HasPrefix(text, marker) {
			return true
		}
	}
	return false
}

// IsBlockComment reports whether text starts with the multi-line comment opener.
func (d *Dialect) IsBlockComment(text string) bool {
	return d.BlockComment[0] != "" && strings.HasPrefix(text, d.BlockComment[0])
}

// StatementDelimiters returns a copy of the statement delimiters.
func (d *Dialect) StatementDelimiters() []string {
	return slices.Clone(d.Delimiters)
}

// DelimiterRedefiner returns the delimiter redefinition command, if any.
func (d *Dialect) DelimiterRedefiner() string {
	return d.Redefiner
}

// Keywords returns the sorted keyword list.
func (d *Dialect) Keywords() []string {
	return sortedKeys(d.keywords)
}

// Functions returns the sorted function name list.
func (d *Dialect) Functions() []string {
	return sortedKeys(d.functions)
}

// WithFunctions returns a copy of the dialect that also recognizes names as functions.
func (d *Dialect) WithFunctions(names ...string) *Dialect {
	c := d.clone()
	addAll(c.functions, names)
	return c
}

// WithKeywords returns a copy of the dialect that also recognizes words as keywords.
func (d *Dialect) WithKeywords(words ...string) *Dialect {
	c := d.clone()
	addAll(c.keywords, words)
	return c
}

func (d *Dialect) clone() *Dialect {
	c := *d
	c.BlockHeaders = slices.Clone(d.BlockHeaders)
	c.BlockBounds = slices.Clone(d.BlockBounds)
	c.LineComments = slices.Clone(d.LineComments)
	c.Delimiters = slices.Clone(d.Delimiters)
	c.QuoteChars = slices.Clone(d.QuoteChars)
	c.keywords = make(map[string]struct{}, len(d.keywords))
	c.functions = make(map[string]struct{}, len(d.functions))
	for k := range d.keywords {
		c.keywords[k] = struct{}{}
	}
	for k := range d.functions {
		c.functions[k] = struct{}{}
	}
	return &c
}

func containsFold(list []string, word string) bool {
	for _, s := range list {
		if strings.EqualFold(s, word) {
			return true
		}
	}
	return false
}

func addAll(set map[string]struct{}, words []string) {
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			set[strings.ToUpper(w)] = struct{}{}
		}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
