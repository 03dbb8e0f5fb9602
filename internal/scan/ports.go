package scan

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/oneminch/devmenu/internal/runner"
)

// Default port range scanned for dev servers.
const (
	DefaultFromPort = 3000
	DefaultToPort   = 3010
)

// engineKeyword filters listener lines down to node processes. Anything
// else on the scanned range is not a candidate.
const engineKeyword = "node"

// PortRange is the inclusive range handed to the socket enumeration.
type PortRange struct {
	From int
	To   int
}

func DefaultPortRange() PortRange {
	return PortRange{From: DefaultFromPort, To: DefaultToPort}
}

// Listener is one (pid, port) pair parsed out of the socket listing.
type Listener struct {
	PID  int
	Port int
}

var trailingPort = regexp.MustCompile(`:(\d+)$`)

// ScanPorts enumerates listening TCP sockets on the range and returns the
// pairs owned by the engine process. A failing or silent underlying
// command means no servers, never an error.
func ScanPorts(ctx context.Context, r runner.Runner, pr PortRange) []Listener {
	out, err := r.Run(ctx, "lsof",
		"-nP",
		fmt.Sprintf("-iTCP:%d-%d", pr.From, pr.To),
		"-sTCP:LISTEN")
	if err != nil || out == "" {
		return nil
	}
	return parseListeners(out)
}

// parseListeners walks raw lsof output. Expected fields per line:
// COMMAND PID USER FD TYPE DEVICE SIZE/OFF NODE NAME, where NAME ends in
// ":port". Malformed lines are skipped silently.
func parseListeners(out string) []Listener {
	var listeners []Listener
	seenPort := make(map[int]bool)

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 9 {
			continue
		}
		if !strings.Contains(strings.ToLower(fields[0]), engineKeyword) {
			continue
		}
		pid, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		m := trailingPort.FindStringSubmatch(fields[8])
		if m == nil {
			continue
		}
		port, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		// first match wins per port
		if seenPort[port] {
			continue
		}
		seenPort[port] = true
		listeners = append(listeners, Listener{PID: pid, Port: port})
	}

	return listeners
}
