package scan

import (
	"context"

	"github.com/oneminch/devmenu/internal/runner"
	"github.com/oneminch/devmenu/pkg/model"
)

// Detect runs one discovery pass: enumerate listeners on the port range,
// then confirm each against the process table. The returned slice is this
// poll's candidate list, rebuilt from scratch every cycle.
func Detect(ctx context.Context, r runner.Runner, pr PortRange) []model.ServerProcess {
	listeners := ScanPorts(ctx, r, pr)
	if len(listeners) == 0 {
		return nil
	}

	table := LoadProcessTable(ctx, r)

	var servers []model.ServerProcess
	for _, l := range listeners {
		match, cmd := table.Classify(l.PID)
		if !match {
			continue
		}
		servers = append(servers, model.ServerProcess{
			PID:     l.PID,
			Port:    l.Port,
			Command: cmd,
		})
	}
	return servers
}
