package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlindent/pkg/consts"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/wait"
)

const startupTimeout = 5 * time.Minute

type (
	// DockerOptions represents options for running ClickHouse in Docker
	DockerOptions struct {
		// Version is the clickhouse-server image tag (default consts.DefaultClickHouseVersion)
		Version string
	}

	// Container is a disposable ClickHouse server for integration tests
	Container struct {
		options   DockerOptions
		container *clickhouse.ClickHouseContainer
	}
)

// New creates a container with default options.
//
// Example:
//
//	container := docker.New()
//	if err := container.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer container.Stop(ctx)
//
//	dsn, _ := container.DSN(ctx)
func New() *Container {
	return NewWithOptions(DockerOptions{})
}

// NewWithOptions creates a container with custom options.
func NewWithOptions(opts DockerOptions) *Container {
	if opts.Version == "" {
		opts.Version = consts.DefaultClickHouseVersion
	}

	return &Container{options: opts}
}

// Image returns the image reference the container runs.
func (c *Container) Image() string {
	return fmt.Sprintf("clickhouse/clickhouse-server:%s-alpine", c.options.Version)
}

// Start runs the server and waits until its HTTP interface answers.
func (c *Container) Start(ctx context.Context) error {
	if c.container != nil {
		return errors.New("container is already running")
	}

	container, err := clickhouse.Run(ctx, c.Image(),
		clickhouse.WithUsername("default"),
		clickhouse.WithPassword(""),
		testcontainers.WithWaitStrategyAndDeadline(
			startupTimeout,
			wait.NewHTTPStrategy("/").
				WithPort("8123/tcp").
				WithStatusCodeMatcher(func(status int) bool { return status == 200 }),
		),
	)
	if err != nil {
		return errors.Wrap(err, "failed to start ClickHouse container")
	}

	c.container = container
	return nil
}

// Stop terminates the container. Stopping a container that is not running is
// a no-op.
func (c *Container) Stop(ctx context.Context) error {
	if c.container == nil {
		return nil
	}

	err := c.container.Terminate(ctx)
	c.container = nil

	return errors.Wrap(err, "failed to stop ClickHouse container")
}

// DSN returns a clickhouse:// URL for the native protocol.
func (c *Container) DSN(ctx context.Context) (string, error) {
	if c.container == nil {
		return "", errors.New("container is not running")
	}

	dsn, err := c.container.ConnectionString(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to get connection string")
	}

	return dsn, nil
}

// IsRunning reports whether Start succeeded and Stop has not been called
func (c *Container) IsRunning() bool {
	return c.container != nil
}
