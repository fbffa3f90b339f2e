package clickhouse

import (
	"regexp"
	"slices"
	"strings"
)

// identifierPattern matches names the SQL lexer reads as a single word.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// cleanNames keeps the single-word names from a system table, drops case
// insensitive duplicates and sorts the result.
func cleanNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if !identifierPattern.MatchString(name) {
			continue
		}

		key := strings.ToUpper(name)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, name)
	}

	slices.Sort(out)
	return out
}
