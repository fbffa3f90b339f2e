package clickhouse

import (
	"context"
	"log/slog"
	"slices"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlindent/pkg/dialect"
)

// Catalog is the vocabulary of a ClickHouse server.
type Catalog struct {
	Version   *VersionInfo
	Functions []string
	Keywords  []string
}

// LoadCatalog reads the server version, functions and keywords.
func (c *Client) LoadCatalog(ctx context.Context) (*Catalog, error) {
	version, err := c.Version(ctx)
	if err != nil {
		return nil, err
	}

	functions, err := c.Functions(ctx)
	if err != nil {
		return nil, err
	}

	keywords, err := c.Keywords(ctx)
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded ClickHouse catalog",
		"version", version.String(),
		"functions", len(functions),
		"keywords", len(keywords),
	)

	return &Catalog{Version: version, Functions: functions, Keywords: keywords}, nil
}

// Extend returns a copy of d that knows the catalog's keywords and functions.
//
// Function names that are keywords of the extended dialect are skipped: the
// server lists operators such as and/or/in as functions, and a bracket after
// AND must stay an ordinary bracket.
func (cat *Catalog) Extend(d *dialect.Dialect) *dialect.Dialect {
	extended := d.WithKeywords(cat.Keywords...)

	functions := slices.DeleteFunc(slices.Clone(cat.Functions), extended.IsKeyword)
	return extended.WithFunctions(functions...)
}

// Extend loads the catalog and extends d with it.
//
// Example:
//
//	client, err := clickhouse.NewClient(ctx, "localhost:9000")
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	base, _ := dialect.Lookup("clickhouse")
//	d, err := client.Extend(ctx, base)
func (c *Client) Extend(ctx context.Context, d *dialect.Dialect) (*dialect.Dialect, error) {
	if d == nil {
		return nil, errors.New("dialect is required")
	}

	cat, err := c.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return cat.Extend(d), nil
}
