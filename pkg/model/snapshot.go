package model

import "strconv"

// Entry is one row of the rendered menu: a current server joined with
// whatever details the store has for it.
type Entry struct {
	Server  ServerProcess
	Details ResolvedDetails
}

// DisplayName returns the project name when one resolved, otherwise a
// port-based fallback so the entry is still actionable.
func (e Entry) DisplayName() string {
	if e.Details.Project != nil && e.Details.Project.Name != "" {
		return e.Details.Project.Name
	}
	return "Port " + strconv.Itoa(e.Server.Port)
}

// Snapshot is the store's read view after a reconcile. Readers only ever
// see a complete snapshot, never a half-rebuilt one.
type Snapshot struct {
	Entries []Entry
}

// ByPort groups entries by listening port, preserving entry order within
// a port. Ports come back in ascending order.
func (s Snapshot) ByPort() []PortGroup {
	idx := make(map[int]int)
	var groups []PortGroup
	for _, e := range s.Entries {
		i, ok := idx[e.Server.Port]
		if !ok {
			i = len(groups)
			idx[e.Server.Port] = i
			groups = append(groups, PortGroup{Port: e.Server.Port})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	for i := 1; i < len(groups); i++ {
		for j := i; j > 0 && groups[j-1].Port > groups[j].Port; j-- {
			groups[j-1], groups[j] = groups[j], groups[j-1]
		}
	}
	return groups
}

// PortGroup is the per-port section of the menu.
type PortGroup struct {
	Port    int
	Entries []Entry
}
