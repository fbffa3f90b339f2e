package cmd

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlindent/pkg/clickhouse"
	"github.com/pseudomuto/sqlindent/pkg/config"
	"github.com/pseudomuto/sqlindent/pkg/dialect"
	"github.com/pseudomuto/sqlindent/pkg/format"
)

// newFormatter builds the formatter for a run. Flag values override the
// configuration; an empty dialectName or dsn keeps the configured one.
func newFormatter(ctx context.Context, cfg *config.Config, dialectName, dsn string) (*format.Formatter, error) {
	if dialectName == "" {
		dialectName = cfg.DialectName
	}

	d, err := dialect.Lookup(dialectName)
	if err != nil {
		return nil, err
	}

	if dsn == "" {
		dsn = cfg.ClickHouse.DSN
	}

	if dsn != "" {
		if d, err = extendFromServer(ctx, d, dsn, cfg.ClickHouse); err != nil {
			return nil, err
		}
	}

	opts := cfg.Options()
	opts.Logger = slog.Default()

	return format.New(opts, d), nil
}

func extendFromServer(ctx context.Context, d *dialect.Dialect, dsn string, settings config.ClickHouse) (*dialect.Dialect, error) {
	client, err := clickhouse.NewClientWithOptions(ctx, dsn, clickhouse.ClientOptions{
		TLSSettings: clickhouse.TLSSettings{
			CAFile:   settings.CAFile,
			CertFile: settings.CertFile,
			KeyFile:  settings.KeyFile,
		},
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	extended, err := client.Extend(ctx, d)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ClickHouse catalog")
	}

	slog.Info("Extended dialect from ClickHouse", "dialect", d.Name)
	return extended, nil
}
