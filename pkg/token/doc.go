// Package token defines the flat token model shared by the lexer and the formatter.
//
// A statement is represented as an ordered slice of *Token. Every token carries a
// Kind and its literal Text. Space tokens hold the whitespace found between two
// semantic tokens; they are the only tokens the formatter is allowed to insert,
// drop or rewrite.
//
// Example:
//
//	tokens := []*token.Token{
//		token.New(token.Keyword, "SELECT"),
//		token.New(token.Space, " "),
//		token.New(token.Other, "a"),
//	}
//	fmt.Println(token.Join(tokens)) // SELECT a
package token
