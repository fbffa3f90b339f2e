package clickhouse

import (
	"context"

	"github.com/pkg/errors"
)

// Functions returns the names of every function known to the server, built-in
// and user-defined, including aliases.
func (c *Client) Functions(ctx context.Context) ([]string, error) {
	names, err := c.queryStrings(ctx, "SELECT name FROM system.functions ORDER BY name")
	if err != nil {
		return nil, errors.Wrap(err, "failed to query system.functions")
	}

	return cleanNames(names), nil
}
