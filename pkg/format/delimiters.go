package format

import (
	"slices"
	"strings"
)

// delimiters is the active set of upper-cased statement delimiters.
type delimiters []string

func newDelimiters(src []string) delimiters {
	out := make(delimiters, 0, len(src))
	for _, d := range src {
		if strings.TrimSpace(d) != "" {
			out = append(out, strings.ToUpper(d))
		}
	}
	return out
}

func (d delimiters) match(text string) bool {
	return slices.Contains(d, strings.ToUpper(text))
}

// redefine replaces the set with the last field of a redefinition command such
// as "DELIMITER $$". It reports whether the set changed. Commands that do not
// start with redefiner, or carry no argument, leave the set untouched.
func (d *delimiters) redefine(command, redefiner string) bool {
	if redefiner == "" || !hasPrefixFold(command, redefiner) {
		return false
	}

	cmd := strings.ToUpper(strings.TrimSpace(command))
	pos := strings.LastIndexByte(cmd, ' ')
	if pos <= 0 {
		return false
	}

	delim := strings.TrimSpace(cmd[pos:])
	if delim == "" {
		return false
	}

	*d = delimiters{delim}
	return true
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
