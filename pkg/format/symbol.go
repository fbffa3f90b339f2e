package format

import "slices"

func (e *Engine) symbol(i int, text string) int {
	switch text {
	case "(":
		return e.openBracket(i)
	case ")":
		return e.closeBracket(i)
	case ",":
		return e.comma(i)
	}

	if e.delims.match(text) {
		e.indent = 0
		return e.breakAt(i, e.indent)
	}

	return 0
}

func (e *Engine) openBracket(i int) int {
	prev := e.prevNonSpace(i)

	e.functionBrackets = append(e.functionBrackets, prev != nil && e.cfg.IsFunction(prev.Text))
	e.conditionBrackets = append(e.conditionBrackets, e.lastInStatement(i, conditionKeywords...) != "")
	e.bracketIndents = append(e.bracketIndents, e.indent)
	e.bracketDepth++
	e.firstCondition = true

	if !e.cfg.Compact && e.cfg.BreakBeforeCloseBracket {
		e.indent++
		e.breakAt(i+1, e.indent)
	}

	return 0
}

func (e *Engine) closeBracket(i int) int {
	n := len(e.bracketIndents)
	if n == 0 || len(e.functionBrackets) == 0 {
		return 0
	}

	e.indent = e.bracketIndents[n-1]
	e.bracketIndents = e.bracketIndents[:n-1]

	// still inside the bracket here, so a function call's own ")" stays put
	shift := 0
	if !e.cfg.Compact && e.cfg.BreakBeforeCloseBracket {
		shift = e.breakAt(i, e.indent)
	}

	e.functionBrackets = e.functionBrackets[:len(e.functionBrackets)-1]
	e.conditionBrackets = e.conditionBrackets[:len(e.conditionBrackets)-1]
	e.bracketDepth--

	return shift
}

// comma breaks top level lists and lists in plain brackets such as column
// definitions. Function arguments and IN lists stay on one line.
func (e *Engine) comma(i int) int {
	if e.cfg.Compact {
		return 0
	}

	if e.bracketDepth > 0 && (slices.Contains(e.functionBrackets, true) || e.prevKeyword(i) == "IN") {
		return 0
	}

	if e.cfg.BreakBeforeComma {
		return e.breakAt(i, e.indent)
	}

	e.breakAt(i+1, e.indent)
	return 0
}
