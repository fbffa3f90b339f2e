// Package lexer splits SQL text into the classified tokens consumed by the
// indent engine.
//
// The lexer is built on participle's regular expression lexer, with rules
// generated from a dialect: comment markers, the control command prefix and
// quoted identifier characters all come from the dialect definition.
// Identifiers are classified as keywords when the dialect knows them, and
// word delimiters such as GO are keywords too.
//
// Two passes run after lexing:
//
//   - a line starting with the dialect's delimiter redefiner (e.g. MySQL's
//     DELIMITER) is folded into a single COMMAND token and the active
//     delimiter changes for the rest of the input
//   - symbol runs that spell a multi-character delimiter (e.g. "$$") are
//     merged into one SYMBOL token
//
// Lexing never drops input: joining the Text of every token returns the
// original SQL.
//
//	tokens, err := lexer.Tokenize("SELECT a FROM t;", dialect.Default())
package lexer
