// Package dialect describes the SQL dialects understood by the lexer and the
// indent engine.
//
// A Dialect is plain data: keyword and function sets, block header and block
// bound keywords, comment markers, statement delimiters and the optional
// delimiter redefinition command. Built-in dialects are available by name:
//
//	d, err := dialect.Lookup("oracle")
//
// Custom dialects are assembled with New and options, which keeps the engine
// testable against synthetic grammars:
//
//	d := dialect.New("tiny",
//		dialect.Keywords("SELECT", "FROM"),
//		dialect.Bounds("BEGIN", "END"),
//		dialect.Redefiner("DELIMITER"),
//	)
package dialect
