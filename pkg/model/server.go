package model

// ServerProcess is one candidate dev server discovered during a poll.
// It is rebuilt from scratch every cycle and never mutated.
type ServerProcess struct {
	PID     int
	Port    int
	Command string
}

// ProjectInfo holds metadata read from a project's manifest and
// version-control config. Empty string means the field never resolved.
type ProjectInfo struct {
	Name          string
	Version       string
	RepositoryURL string
}

// ResolvedDetails is everything we managed to learn about a process.
// Every field is optional: a server with no known directory, project or
// resource sample is still a perfectly valid entry.
type ResolvedDetails struct {
	Dir      string
	Project  *ProjectInfo
	MemoryMB *int
	CPU      *float64
}
