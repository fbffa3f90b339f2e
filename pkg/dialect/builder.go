package dialect

// Option configures a Dialect built with New.
type Option func(*Dialect)

// New builds a dialect. Without options it has no keywords, "--" line comments,
// "/* */" block comments, ";" as the only delimiter and double-quoted identifiers.
func New(name string, opts ...Option) *Dialect {
	d := &Dialect{
		Name:         name,
		LineComments: []string{"--"},
		BlockComment: [2]string{"/*", "*/"},
		Delimiters:   []string{";"},
		QuoteChars:   []rune{'"'},
		keywords:     make(map[string]struct{}),
		functions:    make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Keywords adds words to the keyword set.
func Keywords(words ...string) Option {
	return func(d *Dialect) { addAll(d.keywords, words) }
}

// Functions adds names to the function set.
func Functions(names ...string) Option {
	return func(d *Dialect) { addAll(d.functions, names) }
}

// Headers sets the block header keywords. Headers are also registered as keywords.
func Headers(words ...string) Option {
	return func(d *Dialect) {
		d.BlockHeaders = append(d.BlockHeaders, words...)
		addAll(d.keywords, words)
	}
}

// Bounds adds a begin/end block pair. Both words are also registered as keywords.
func Bounds(begin, end string) Option {
	return func(d *Dialect) {
		d.BlockBounds = append(d.BlockBounds, [2]string{begin, end})
		addAll(d.keywords, []string{begin, end})
	}
}

// LineComments replaces the single-line comment markers.
func LineComments(markers ...string) Option {
	return func(d *Dialect) { d.LineComments = markers }
}

// BlockComment replaces the multi-line comment markers.
func BlockComment(open, close string) Option {
	return func(d *Dialect) { d.BlockComment = [2]string{open, close} }
}

// Delimiters replaces the statement delimiters.
func Delimiters(delims ...string) Option {
	return func(d *Dialect) { d.Delimiters = delims }
}

// Redefiner sets the delimiter redefinition command.
func Redefiner(cmd string) Option {
	return func(d *Dialect) { d.Redefiner = cmd }
}

// CommandPrefix sets the control command prefix.
func CommandPrefix(prefix string) Option {
	return func(d *Dialect) { d.CommandPrefix = prefix }
}

// QuoteChars replaces the quoted identifier openers.
func QuoteChars(chars ...rune) Option {
	return func(d *Dialect) { d.QuoteChars = chars }
}
