package git

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// Client answers read-only questions about the surrounding git checkout.
type Client struct{}

func NewClient() *Client {
	return &Client{}
}

// execCommand allows mocking in tests.
var execCommand = exec.CommandContext

// ShortSHA returns the abbreviated HEAD revision of dir.
func (c *Client) ShortSHA(dir string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd := execCommand(ctx, "git", "rev-parse", "--short", "HEAD")
	if dir != "" {
		cmd.Dir = dir
	}
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Revision is ShortSHA with the failure mode folded in: runs in a directory
// that is not a repository (or without git installed) still get recorded,
// just stamped "unknown".
func (c *Client) Revision(dir string) string {
	sha, err := c.ShortSHA(dir)
	if err != nil || sha == "" {
		return "unknown"
	}
	return sha
}
