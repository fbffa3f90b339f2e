package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/pseudomuto/sqlindent/pkg/dialect"
	"github.com/urfave/cli/v3"
)

// dialectsCmd lists the built-in dialects. The configured dialect is marked
// with an asterisk.
//
// Example:
//
//	sqlindent dialects
//	sqlindent dialects --show mysql
func dialectsCmd(s *session) *cli.Command {
	return &cli.Command{
		Name:  "dialects",
		Usage: "List the built-in SQL dialects",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "show",
				Usage: "Print the keywords and functions of one dialect",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer

			if name := cmd.String("show"); name != "" {
				d, err := dialect.Lookup(name)
				if err != nil {
					return err
				}

				showDialect(w, d)
				return nil
			}

			return listDialects(w, s.config.DialectName)
		},
	}
}

func listDialects(w io.Writer, configured string) error {
	var buf bytes.Buffer

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  NAME\tDELIMITERS\tCOMMENTS\tKEYWORDS\tFUNCTIONS")

	current := -1
	for i, name := range dialect.Names() {
		d, err := dialect.Lookup(name)
		if err != nil {
			return err
		}

		marker := "  "
		if strings.EqualFold(name, configured) {
			marker, current = "* ", i
		}

		comments := append(slices.Clone(d.LineComments), d.BlockComment[0])
		fmt.Fprintf(tw, "%s%s\t%s\t%s\t%d\t%d\n",
			marker,
			name,
			strings.Join(d.StatementDelimiters(), " "),
			strings.Join(comments, " "),
			len(d.Keywords()),
			len(d.Functions()),
		)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	// colors are applied after alignment; escape codes would skew the columns
	highlight := color.New(color.FgGreen, color.Bold)
	lines := strings.SplitAfter(buf.String(), "\n")
	for i, line := range lines {
		if i == current+1 {
			line = highlight.Sprint(line)
		}

		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}

	return nil
}

func showDialect(w io.Writer, d *dialect.Dialect) {
	heading := color.New(color.Bold)

	_, _ = heading.Fprintln(w, "Keywords:")
	fmt.Fprintln(w, "  "+strings.Join(d.Keywords(), " "))

	_, _ = heading.Fprintln(w, "Functions:")
	fmt.Fprintln(w, "  "+strings.Join(d.Functions(), " "))
}
