package model

import "testing"

func TestDisplayNameFallback(t *testing.T) {
	e := Entry{Server: ServerProcess{PID: 1, Port: 3000}}
	if got := e.DisplayName(); got != "Port 3000" {
		t.Errorf("DisplayName() = %q, want \"Port 3000\"", got)
	}

	e.Details.Project = &ProjectInfo{Name: "my-app"}
	if got := e.DisplayName(); got != "my-app" {
		t.Errorf("DisplayName() = %q, want \"my-app\"", got)
	}

	// an empty manifest name still falls back
	e.Details.Project = &ProjectInfo{Version: "1.0.0"}
	if got := e.DisplayName(); got != "Port 3000" {
		t.Errorf("DisplayName() = %q, want \"Port 3000\"", got)
	}
}

func TestByPortGroupsAndSorts(t *testing.T) {
	snap := Snapshot{Entries: []Entry{
		{Server: ServerProcess{PID: 3, Port: 3005}},
		{Server: ServerProcess{PID: 1, Port: 3000}},
		{Server: ServerProcess{PID: 2, Port: 3005}},
	}}

	groups := snap.ByPort()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Port != 3000 || groups[1].Port != 3005 {
		t.Errorf("ports out of order: %d, %d", groups[0].Port, groups[1].Port)
	}
	if len(groups[1].Entries) != 2 {
		t.Fatalf("port 3005 should hold 2 entries, got %d", len(groups[1].Entries))
	}
	// entry order within a port is preserved
	if groups[1].Entries[0].Server.PID != 3 || groups[1].Entries[1].Server.PID != 2 {
		t.Errorf("entry order changed: %+v", groups[1].Entries)
	}
}
