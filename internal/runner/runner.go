package runner

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// Runner executes an external command and returns its stdout as text.
// Discovery code treats any failure as "no data", so implementations
// should not wrap errors with extra context.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// Exec is the real Runner backed by os/exec. A zero value uses no
// default timeout; callers bound individual calls via the context.
type Exec struct {
	// Timeout, when non-zero, caps every Run call in addition to
	// whatever deadline the caller's context carries.
	Timeout time.Duration
}

func (e Exec) Run(ctx context.Context, name string, args ...string) (string, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(out), "\n"), nil
}
