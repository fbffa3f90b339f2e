package clickhouse

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+))?`)

// VersionInfo is a parsed ClickHouse server version.
type VersionInfo struct {
	Major int
	Minor int
	Patch int
	Raw   string
}

// String returns the version as "major.minor.patch".
func (v VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsAtLeast reports whether v is major.minor or newer.
func (v VersionInfo) IsAtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

// Version retrieves and parses the server version.
func (c *Client) Version(ctx context.Context) (*VersionInfo, error) {
	var raw string
	if err := c.conn.QueryRow(ctx, "SELECT version()").Scan(&raw); err != nil {
		return nil, errors.Wrap(err, "failed to query ClickHouse version")
	}

	return parseVersion(raw)
}

// parseVersion accepts "25.7.1.3997", "22.8.2.11-testing" and
// "21.10.3.9 (official build)" style strings.
func parseVersion(raw string) (*VersionInfo, error) {
	cleaned, _, _ := strings.Cut(strings.TrimSpace(raw), " ")
	cleaned, _, _ = strings.Cut(cleaned, "-")

	m := versionPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return nil, errors.Errorf("invalid ClickHouse version: %q", raw)
	}

	v := &VersionInfo{Raw: raw}
	v.Major, _ = strconv.Atoi(m[1])
	v.Minor, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		v.Patch, _ = strconv.Atoi(m[3])
	}

	return v, nil
}
