package format

import (
	"slices"

	"github.com/pseudomuto/sqlindent/pkg/token"
)

var (
	joinKeywords      = []string{"LEFT", "RIGHT", "INNER", "OUTER", "FULL", "CROSS", "JOIN"}
	dmlKeywords       = []string{"SELECT", "UPDATE", "INSERT", "DELETE"}
	conditionKeywords = []string{"WHERE", "PREWHERE", "ON", "HAVING"}
)

// keywordRule lays out a keyword. Rules are evaluated in order and the first
// rule that matches the keyword and whose condition holds wins. A rule without
// an action matches but changes nothing.
type keywordRule struct {
	match func(e *Engine, word string) bool
	when  func(e *Engine, i int) bool
	apply func(e *Engine, i int) int
}

var keywordRules = []keywordRule{
	{match: isDelimiter, apply: (*Engine).statementKeyword},
	{match: isBlockHeader, apply: (*Engine).openBlock},
	{match: isBlockStart, when: (*Engine).outsideSelect, apply: (*Engine).openBlock},
	{match: isBlockEnd, apply: (*Engine).dedent},
	{match: words("CREATE"), when: (*Engine).hasOrReplace, apply: (*Engine).breakAfterReplace},
	{match: words("CREATE", "DROP", "ALTER", "TABLE")},
	{match: words("DELETE", "SELECT", "UPDATE", "INSERT", "INTO", "TRUNCATE"), when: notCompact, apply: (*Engine).openStatement},
	{match: words("CASE"), when: notCompact, apply: (*Engine).openCase},
	{match: words("END"), when: notCompact, apply: (*Engine).dedent},
	{match: words("FROM", "WHERE", "PREWHERE", "START WITH", "CONNECT BY", "ORDER BY", "GROUP BY", "HAVING"), apply: (*Engine).clause},
	{match: words(joinKeywords...), when: (*Engine).isJoinStart, apply: (*Engine).breakDedented},
	{match: words("VALUES", "LIMIT"), apply: (*Engine).dedent},
	{match: words("OR"), when: prevKeywordIsNot("CREATE"), apply: (*Engine).or},
	{match: words("WHEN"), when: prevKeywordIsNot("CASE"), apply: (*Engine).breakBefore},
	{match: words("ELSE"), apply: (*Engine).breakBefore},
	{match: words("SET"), apply: (*Engine).set},
	{match: words("ON"), apply: (*Engine).breakAfter},
	{match: words("USING"), apply: (*Engine).using},
	{match: words("TOP"), apply: (*Engine).top},
	{match: words("UNION", "INTERSECT", "EXCEPT"), apply: (*Engine).setOperator},
	{match: words("BETWEEN"), apply: (*Engine).between},
	{match: words("AND"), apply: (*Engine).and},
}

func (e *Engine) keyword(i int, word string) int {
	for _, rule := range keywordRules {
		if !rule.match(e, word) || (rule.when != nil && !rule.when(e, i)) {
			continue
		}

		if rule.apply == nil {
			return 0
		}
		return rule.apply(e, i)
	}

	return 0
}

func words(list ...string) func(*Engine, string) bool {
	return func(_ *Engine, word string) bool { return slices.Contains(list, word) }
}

func isDelimiter(e *Engine, word string) bool   { return e.delims.match(word) }
func isBlockHeader(e *Engine, word string) bool { return e.syntax.IsBlockHeader(word) }
func isBlockStart(e *Engine, word string) bool  { return e.syntax.IsBlockStart(word) }
func isBlockEnd(e *Engine, word string) bool    { return e.syntax.IsBlockEnd(word) }

func notCompact(e *Engine, _ int) bool { return !e.cfg.Compact }

func prevKeywordIsNot(word string) func(*Engine, int) bool {
	return func(e *Engine, i int) bool { return e.prevKeyword(i) != word }
}

func (e *Engine) statementKeyword(i int) int {
	e.indent = 0

	shift := 0
	if i > 0 {
		shift = e.breakAt(i-1, e.indent)
	}
	e.breakAt(i+shift+1, e.indent)

	return shift
}

// openBlock puts a block opener (DECLARE, BEGIN) on its own line one level out
// and indents the block body.
func (e *Engine) openBlock(i int) int {
	shift := 0
	if i > 0 {
		shift = e.breakAt(i, e.indent-1)
	}

	e.indent++
	e.breakAt(i+shift+1, e.indent)

	return shift
}

// outsideSelect reports whether the statement around i is not a SELECT, where
// a block start keyword cannot open a procedural block.
func (e *Engine) outsideSelect(i int) bool {
	return e.lastInStatement(i, dmlKeywords...) != "SELECT"
}

func (e *Engine) dedent(i int) int {
	e.indent--
	return e.breakAt(i, e.indent)
}

// replaceIndex returns the index of REPLACE in CREATE OR REPLACE, or -1.
func (e *Engine) replaceIndex(i int) int {
	or := e.nextKeywordIndex(i)
	if or < 0 || e.tokens[or].Upper() != "OR" {
		return -1
	}

	replace := e.nextKeywordIndex(or)
	if replace < 0 || e.tokens[replace].Upper() != "REPLACE" {
		return -1
	}

	return replace
}

func (e *Engine) hasOrReplace(i int) bool {
	return !e.cfg.Compact && e.replaceIndex(i) > 0
}

func (e *Engine) breakAfterReplace(i int) int {
	e.breakAt(e.replaceIndex(i)+1, e.indent)
	return 0
}

// openStatement starts a DML statement or clause (SELECT, INSERT, INTO...) on
// a fresh line and indents its body. Outside brackets it restarts at level 0.
func (e *Engine) openStatement(i int) int {
	shift := 0
	switch {
	case e.bracketDepth > 0:
		shift = e.breakAt(i, e.indent)
	case i > 0:
		e.indent = 0
		shift = e.breakAt(i-1, e.indent)
	}

	e.indent++
	e.breakAt(i+shift+1, e.indent)

	return shift
}

func (e *Engine) openCase(i int) int {
	shift := 0
	if i > 0 {
		shift = e.breakAt(i, e.indent)
	}

	if e.nextKeyword(i+shift) == "WHEN" {
		e.indent++
		e.breakAt(i+shift+1, e.indent)
	}

	return shift
}

// clause puts FROM, WHERE, GROUP BY and friends one level out and their body
// on the next line.
func (e *Engine) clause(i int) int {
	shift := e.breakAt(i, e.indent-1)
	if !e.cfg.Compact {
		e.breakAt(i+shift+1, e.indent)
	}

	e.firstCondition = false
	return shift
}

func (e *Engine) breakBefore(i int) int {
	return e.breakAt(i, e.indent)
}

func (e *Engine) breakDedented(i int) int {
	return e.breakAt(i, e.indent-1)
}

func (e *Engine) breakAfter(i int) int {
	e.breakAt(i+1, e.indent)
	return 0
}

func (e *Engine) using(i int) int {
	return e.breakAt(i, e.indent+1)
}

func (e *Engine) set(i int) int {
	shift := 0
	if i > 1 && e.prevKeyword(i) == "UPDATE" {
		shift = e.breakAt(i, e.indent-1)
	}
	e.breakAt(i+shift+1, e.indent)

	return shift
}

// top breaks before SQL Server's TOP and again after its row count, so the
// count stays on the TOP line. The second break keys on the row count token
// rather than on how many tokens remain in the statement.
func (e *Engine) top(i int) int {
	shift := e.breakAt(i, e.indent)
	if n := i + shift + 2; n < len(e.tokens) && e.tokens[n].Kind == token.Other {
		e.breakAt(n+1, e.indent)
	}

	return shift
}

// setOperator sits UNION, INTERSECT and EXCEPT one level below the queries
// they join.
func (e *Engine) setOperator(i int) int {
	e.indent -= 2
	shift := e.breakAt(i, e.indent)
	e.indent++

	return shift
}

func (e *Engine) between(int) int {
	e.encounterBetween = true
	return 0
}

func (e *Engine) and(i int) int {
	if e.encounterBetween {
		e.encounterBetween = false
		return 0
	}

	shift := e.breakAt(i, e.indent)
	if e.firstCondition {
		shift += e.nestCondition(i + shift)
	}

	return shift
}

func (e *Engine) or(i int) int {
	shift := 0
	if e.firstCondition {
		shift = e.nestCondition(i)
	}

	return shift + e.breakAt(i+shift, e.indent)
}

// nestCondition indents the first AND/OR inside a bracket that was opened in
// a WHERE, ON or HAVING condition.
func (e *Engine) nestCondition(i int) int {
	if n := len(e.conditionBrackets); n == 0 || !e.conditionBrackets[n-1] {
		return 0
	}

	e.indent++
	e.firstCondition = false
	return e.breakAt(i, e.indent)
}
