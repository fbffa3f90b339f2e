package docker

import (
	"context"
	"os/exec"
	"time"
)

// Available reports whether a Docker daemon answers on this machine.
func Available() bool {
	if _, err := exec.LookPath("docker"); err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return exec.CommandContext(ctx, "docker", "info").Run() == nil
}
