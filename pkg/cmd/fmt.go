package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlindent/pkg/consts"
	"github.com/pseudomuto/sqlindent/pkg/format"
	"github.com/sourcegraph/conc/iter"
	"github.com/urfave/cli/v3"
)

const stdinName = "<standard input>"

// errUnformatted is returned by --check when at least one input would change.
var errUnformatted = errors.New("some files are not formatted")

type (
	fmtOptions struct {
		write bool
		list  bool
		check bool
	}

	// fileResult is the outcome of formatting one input.
	fileResult struct {
		path      string
		mode      fs.FileMode
		original  string
		formatted string
		err       error
	}
)

func (r fileResult) changed() bool {
	return r.original != r.formatted
}

// fmtCmd creates a CLI command for indenting SQL files. It works like gofmt:
// files, directories and standard input are supported.
//
// Path handling:
//   - No path or "-": Read standard input, write to standard output
//   - File paths: Format the specified SQL file directly
//   - Directory paths: Recursively find and format all .sql files
//
// Flags:
//   - -w: Write formatted results back to source files instead of stdout
//   - -l: List files whose formatting differs
//   - --check: Report files whose formatting differs and fail
//   - --dialect: Override the configured dialect
//   - --dsn: Extend the dialect with a ClickHouse server's functions
//
// Examples:
//
//	# Format single file to stdout
//	sqlindent fmt query.sql
//
//	# Format all SQL files in a directory tree in-place
//	sqlindent fmt -w queries/
//
//	# Fail in CI when anything is unformatted
//	sqlindent fmt --check queries/
func fmtCmd(s *session) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "[path|-]...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List files whose formatting differs",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Exit with an error when any file is not formatted",
			},
			&cli.StringFlag{
				Name:  "dialect",
				Usage: "SQL dialect, overriding the configured one",
			},
			&cli.StringFlag{
				Name:  "dsn",
				Usage: "ClickHouse server whose functions and keywords extend the dialect",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			formatter, err := newFormatter(ctx, s.config, cmd.String("dialect"), cmd.String("dsn"))
			if err != nil {
				return err
			}

			opts := fmtOptions{
				write: cmd.Bool("write"),
				list:  cmd.Bool("list"),
				check: cmd.Bool("check"),
			}

			root := cmd.Root()
			paths := cmd.Args().Slice()
			if len(paths) == 0 || (len(paths) == 1 && paths[0] == "-") {
				if opts.write {
					return errors.New("cannot use -w with standard input")
				}

				return reportResults(root.Writer, root.ErrWriter, opts, []fileResult{formatStdin(formatter, root.Reader)})
			}

			files, err := collectFiles(paths)
			if err != nil {
				return err
			}

			return reportResults(root.Writer, root.ErrWriter, opts, formatFiles(formatter, files))
		},
	}
}

// collectFiles expands directories into the .sql files below them. Explicit
// file arguments are kept whatever their extension.
func collectFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to access path: %s", path)
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		var found int
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && strings.EqualFold(filepath.Ext(d.Name()), consts.SQLFileExt) {
				files = append(files, p)
				found++
			}

			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to walk directory: %s", path)
		}

		if found == 0 {
			return nil, errors.Errorf("no SQL files found in directory: %s", path)
		}
	}

	return files, nil
}

// formatFiles formats files concurrently. Results keep the order of files.
func formatFiles(formatter *format.Formatter, files []string) []fileResult {
	mapper := iter.Mapper[string, fileResult]{MaxGoroutines: runtime.GOMAXPROCS(0)}

	return mapper.Map(files, func(path *string) fileResult {
		return formatFile(formatter, *path)
	})
}

func formatFile(formatter *format.Formatter, path string) fileResult {
	res := fileResult{path: path}

	info, err := os.Stat(path)
	if err != nil {
		res.err = errors.Wrapf(err, "failed to access path: %s", path)
		return res
	}
	res.mode = info.Mode().Perm()

	content, err := os.ReadFile(path)
	if err != nil {
		res.err = errors.Wrapf(err, "failed to read file: %s", path)
		return res
	}
	res.original = string(content)

	slog.Debug("Formatting file", "path", path)
	if res.formatted, err = formatter.Format(res.original); err != nil {
		res.err = errors.Wrapf(err, "failed to format SQL in file: %s", path)
	}

	return res
}

func formatStdin(formatter *format.Formatter, r io.Reader) fileResult {
	res := fileResult{path: stdinName}

	content, err := io.ReadAll(r)
	if err != nil {
		res.err = errors.Wrap(err, "failed to read standard input")
		return res
	}
	res.original = string(content)

	if res.formatted, err = formatter.Format(res.original); err != nil {
		res.err = errors.Wrap(err, "failed to format SQL from standard input")
	}

	return res
}

// reportResults writes, lists or prints every result according to opts.
// Without -w, -l or --check the formatted SQL goes to out.
func reportResults(out, errOut io.Writer, opts fmtOptions, results []fileResult) error {
	warn := color.New(color.FgYellow)

	var unformatted int
	for _, res := range results {
		if res.err != nil {
			return res.err
		}

		switch {
		case opts.check:
			if res.changed() {
				unformatted++
				_, _ = warn.Fprintf(errOut, "%s is not formatted\n", res.path)
			}
			continue
		case opts.list:
			if res.changed() {
				fmt.Fprintln(out, res.path)
			}
		case !opts.write:
			if _, err := io.WriteString(out, res.formatted); err != nil {
				return errors.Wrap(err, "failed to write formatted content to output")
			}
		}

		if opts.write && res.changed() {
			if err := os.WriteFile(res.path, []byte(res.formatted), res.mode); err != nil {
				return errors.Wrapf(err, "failed to write formatted content to file: %s", res.path)
			}
			slog.Info("Formatted file", "path", res.path)
		}
	}

	if unformatted > 0 {
		return errors.Wrapf(errUnformatted, "%d of %d", unformatted, len(results))
	}

	return nil
}
