package downloads

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"jellytube/internal/domain/errconsts"
)

const (
	// maxStderr caps how much yt-dlp stderr is kept for the failure log line.
	maxStderr = 4096

	// waitDelay bounds how long Wait lingers on pipes held open by killed children (ffmpeg).
	waitDelay = 30 * time.Second
)

// Runner runs an external command to completion.
type Runner interface {
	// Run executes name with args and returns its captured stderr.
	// A non-zero exit, a start failure or context expiry is returned as an error.
	Run(ctx context.Context, name string, args []string) (stderr string, err error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := tail(strings.TrimSpace(stderr.String()), maxStderr)

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return out, errconsts.ErrTimeout
		}
		return out, ctxErr
	}
	if err != nil {
		return out, fmt.Errorf(errconsts.YTDLPFailure, err)
	}
	return out, nil
}

// tail keeps the last n bytes of s.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
