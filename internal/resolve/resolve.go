package resolve

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/oneminch/devmenu/internal/runner"
	"github.com/oneminch/devmenu/pkg/model"
)

// fallbackTimeout bounds the open-file-descriptor lookup. It is the only
// external query with real tail-latency risk, and a stalled lookup must
// not stall the whole poll cycle.
const fallbackTimeout = time.Second

// Resolver maps a running process back to its project checkout. Every
// step degrades independently; Resolve never returns an error, only the
// best partial result it could get in time.
type Resolver struct {
	Runner  runner.Runner
	Timeout time.Duration
}

func New(r runner.Runner) *Resolver {
	return &Resolver{Runner: r, Timeout: fallbackTimeout}
}

// Resolve infers the project directory for (pid, cmdline) and reads its
// metadata. An empty directory with a nil project is an accepted unknown.
func (r *Resolver) Resolve(ctx context.Context, pid int, cmdline string) (string, *model.ProjectInfo) {
	dir := inferDir(cmdline)
	if dir == "" {
		dir = r.cwdFallback(ctx, pid)
	}
	if dir == "" {
		return "", nil
	}

	info := readManifest(dir)
	if info != nil && info.RepositoryURL == "" {
		info.RepositoryURL = gitRemoteURL(dir)
	}
	return dir, info
}

// cwdFallback asks the OS for the process's current working directory via
// fd inspection. Bounded by Timeout; failure or timeout means unknown.
func (r *Resolver) cwdFallback(ctx context.Context, pid int) string {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = fallbackTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := r.Runner.Run(ctx, "lsof", "-a", "-p", strconv.Itoa(pid), "-d", "cwd", "-Fn")
	if err != nil {
		return ""
	}
	// -Fn output is field-per-line; the cwd path is the "n" record.
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 1 && line[0] == 'n' {
			return strings.TrimRight(line[1:], "/")
		}
	}
	return ""
}
