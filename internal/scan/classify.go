package scan

import (
	"context"
	"strconv"
	"strings"

	"github.com/oneminch/devmenu/internal/runner"
)

// frameworkKeywords are the secondary signal: a listener only counts as a
// dev server when its process-table line mentions one of these.
var frameworkKeywords = []string{"next", "nuxt", "vite"}

// placeholderCommand stands in for the real invocation when the process
// table could not be read at all.
const placeholderCommand = "node (details unavailable)"

// commandColumn is the first ps aux column belonging to the invocation
// itself (after USER PID %CPU %MEM VSZ RSS TTY STAT START TIME).
const commandColumn = 10

// ProcessTable is one poll's snapshot of the process listing. The zero
// value behaves as a failed fetch.
type ProcessTable struct {
	text string
	ok   bool
}

// LoadProcessTable fetches the process listing once per poll cycle so
// every candidate is classified against the same snapshot.
func LoadProcessTable(ctx context.Context, r runner.Runner) ProcessTable {
	out, err := r.Run(ctx, "ps", "aux")
	if err != nil {
		return ProcessTable{}
	}
	return ProcessTable{text: out, ok: true}
}

// Classify decides whether pid is a genuine dev server and extracts a
// display command for it.
//
// When the table fetch failed entirely we accept the candidate anyway: a
// confirmed listening port outranks a flaky secondary source, even though
// it can let an unrelated node process through.
func (t ProcessTable) Classify(pid int) (bool, string) {
	if !t.ok {
		return true, placeholderCommand
	}

	pidStr := strconv.Itoa(pid)
	for _, line := range strings.Split(t.text, "\n") {
		fields := strings.Fields(line)
		if len(fields) <= commandColumn || fields[1] != pidStr {
			continue
		}
		if !containsKeyword(line) {
			continue
		}
		return true, strings.Join(fields[commandColumn:], " ")
	}

	return false, ""
}

func containsKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range frameworkKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
