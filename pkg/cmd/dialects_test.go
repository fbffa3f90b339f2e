package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/pseudomuto/sqlindent/pkg/consts"
	"github.com/pseudomuto/sqlindent/pkg/dialect"
	"github.com/stretchr/testify/require"
)

func TestDialectsCommand(t *testing.T) {
	dir := isolate(t)

	t.Run("lists every dialect", func(t *testing.T) {
		out, _, err := runApp(t, "", "dialects")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, len(dialect.Names())+1)
		require.True(t, strings.HasPrefix(lines[0], "  NAME"))

		for i, name := range dialect.Names() {
			require.Contains(t, lines[i+1], name)
		}

		require.Contains(t, out, "* standard ")
		require.Contains(t, out, "; GO")
		require.Contains(t, out, "-- # /*")
	})

	t.Run("marks the configured dialect", func(t *testing.T) {
		writeFile(t, filepath.Join(dir, consts.DefaultConfigFile), "dialect: mysql\n")

		out, _, err := runApp(t, "", "dialects")
		require.NoError(t, err)
		require.Contains(t, out, "* mysql ")
		require.Contains(t, out, "  standard ")
	})

	t.Run("show", func(t *testing.T) {
		out, _, err := runApp(t, "", "dialects", "--show", "mysql")
		require.NoError(t, err)
		require.Contains(t, out, "Keywords:\n")
		require.Contains(t, out, "AUTO_INCREMENT")
		require.Contains(t, out, "Functions:\n")
		require.Contains(t, out, "GROUP_CONCAT")

		_, _, err = runApp(t, "", "dialects", "--show", "cobol")
		require.ErrorIs(t, err, dialect.ErrUnknownDialect)
	})
}
