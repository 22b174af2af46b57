package helpers

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

var gitTimeout = 10 * time.Second

// GitCommit returns the commit hash of HEAD in dir. There is no
// fallback value: a stack generated outside a checkout is untraceable
// and generation should fail instead.
func GitCommit(dir string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "rev-parse", "HEAD")
	cmd.Dir = dir

	out, err := cmd.Output()
	if err != nil {
		return "", EnvironmentError(fmt.Sprintf("could not read git commit: %s", err))
	}

	return strings.TrimSpace(string(out)), nil
}
