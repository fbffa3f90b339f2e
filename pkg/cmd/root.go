package cmd

import (
	"context"
	"fmt"

	"github.com/pseudomuto/sqlindent/pkg/config"
	"github.com/pseudomuto/sqlindent/pkg/consts"
	"github.com/pseudomuto/sqlindent/pkg/logging"
	"github.com/urfave/cli/v3"
)

type (
	// Version describes the build, set by GoReleaser in the binary.
	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}

	// session carries what the root command resolved for its subcommands.
	session struct {
		config *config.Config
	}
)

// New creates the sqlindent command tree.
//
// The root command resolves the configuration (--config, SQLINDENT_CONFIG or
// sqlindent.yaml in the working directory) and installs the logger before any
// subcommand runs.
//
// Global Flags:
//   - --config, -c: Configuration file
//   - --log-level: One of debug, info, warn or error (default warn)
//
// Example usage:
//
//	app := cmd.New(cmd.Version{Version: "v1.0.0"})
//	err := app.Run(ctx, []string{"sqlindent", "fmt", "-w", "queries/"})
func New(v Version) *cli.Command {
	s := &session{}

	return &cli.Command{
		Name:  "sqlindent",
		Usage: "Indent SQL scripts",
		Description: `sqlindent lays out SQL scripts one clause per line, indenting clause
bodies, bracketed groups and procedural blocks. Only whitespace changes.`,
		Version: v.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqlindent config file",
				Sources: cli.EnvVars(consts.ConfigEnvVar),
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
				Value: "warn",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if _, err := logging.Setup(cmd.Root().ErrWriter, cmd.String("log-level")); err != nil {
				return ctx, err
			}

			cfg, err := config.Resolve(cmd.String("config"))
			if err != nil {
				return ctx, err
			}

			s.config = cfg
			return ctx, nil
		},
		Commands: []*cli.Command{
			fmtCmd(s),
			dialectsCmd(s),
		},
	}
}

// Run executes the command tree with the given arguments.
func Run(ctx context.Context, v Version, args []string) error {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Root().Writer, "Version:", v.Version)
		fmt.Fprintln(cmd.Root().Writer, "Commit:", v.Commit)
		fmt.Fprintln(cmd.Root().Writer, "Date:", v.Timestamp)
	}

	return New(v).Run(ctx, args)
}
