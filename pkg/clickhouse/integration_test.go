package clickhouse_test

import (
	"context"
	"testing"
	"time"

	"github.com/pseudomuto/sqlindent/pkg/clickhouse"
	"github.com/pseudomuto/sqlindent/pkg/dialect"
	"github.com/pseudomuto/sqlindent/pkg/docker"
	"github.com/pseudomuto/sqlindent/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestClient_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if !docker.Available() {
		t.Skip("Docker not available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	container := docker.New()
	require.NoError(t, container.Start(ctx))
	defer func() { _ = container.Stop(ctx) }()

	dsn, err := container.DSN(ctx)
	require.NoError(t, err)

	client, err := clickhouse.NewClient(ctx, dsn)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	t.Run("version", func(t *testing.T) {
		version, err := client.Version(ctx)
		require.NoError(t, err)
		require.True(t, version.IsAtLeast(24, 1), version.String())
	})

	t.Run("catalog", func(t *testing.T) {
		cat, err := client.LoadCatalog(ctx)
		require.NoError(t, err)
		require.Contains(t, cat.Functions, "toStartOfFifteenMinutes")
		require.NotEmpty(t, cat.Keywords)
	})

	t.Run("extend", func(t *testing.T) {
		base, err := dialect.Lookup("clickhouse")
		require.NoError(t, err)
		require.False(t, base.IsFunction("toStartOfFifteenMinutes"))

		d, err := client.Extend(ctx, base)
		require.NoError(t, err)
		require.True(t, d.IsFunction("toStartOfFifteenMinutes"))
		require.False(t, d.IsFunction("and"))

		out, err := format.New(format.Defaults, d).Format("select toStartOfFifteenMinutes(ts, 'UTC') from events")
		require.NoError(t, err)
		require.Equal(t, "SELECT\n  toStartOfFifteenMinutes(ts, 'UTC')\nFROM\n  events", out)
	})
}
