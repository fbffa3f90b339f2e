package clickhouse

import (
	"context"

	"github.com/pkg/errors"
)

// Keywords returns the single-word keywords listed in system.keywords. Servers
// without that table yield an empty list.
func (c *Client) Keywords(ctx context.Context) ([]string, error) {
	var exists uint64
	err := c.conn.
		QueryRow(ctx, "SELECT count() FROM system.tables WHERE database = 'system' AND name = 'keywords'").
		Scan(&exists)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up system.keywords")
	}

	if exists == 0 {
		return nil, nil
	}

	words, err := c.queryStrings(ctx, "SELECT keyword FROM system.keywords")
	if err != nil {
		return nil, errors.Wrap(err, "failed to query system.keywords")
	}

	return cleanNames(words), nil
}
