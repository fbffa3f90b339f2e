// Package docker runs disposable ClickHouse servers for integration tests.
//
// Containers are managed by testcontainers-go, so they are removed even when a
// test fails. Tests using them should skip when Docker is unavailable (see
// Available).
//
// Usage:
//
//	container := docker.NewWithOptions(docker.DockerOptions{Version: "25.7"})
//	if err := container.Start(ctx); err != nil {
//		t.Fatal(err)
//	}
//	defer container.Stop(ctx)
//
//	dsn, _ := container.DSN(ctx)
//	client, _ := clickhouse.NewClient(ctx, dsn)
package docker
