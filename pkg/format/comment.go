package format

import "github.com/pseudomuto/sqlindent/pkg/token"

func (e *Engine) comment(i int, tok *token.Token) int {
	switch {
	case e.syntax.IsLineComment(tok.Text):
		shift := e.breakAt(i, e.indent)

		// the comment ends its line; indent whatever follows it
		e.breakAt(i+shift+1, e.indent)
		return shift
	case e.syntax.IsBlockComment(tok.Text):
		e.breakAt(i+1, e.indent)
	}

	return 0
}

// command puts a control command on a line of its own at indent 0. Delimiter
// redefinitions (e.g. DELIMITER $$) replace the active statement delimiters.
func (e *Engine) command(i int, tok *token.Token) int {
	e.indent = 0

	shift := 0
	if i > 0 {
		shift = e.breakAt(i, 0)
	}
	e.breakAt(i+shift+1, 0)

	if e.delims.redefine(tok.Text, e.syntax.DelimiterRedefiner()) {
		e.log.Debug("statement delimiter redefined", "delimiter", e.delims[0])
	}

	return shift
}
