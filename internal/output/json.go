package output

import (
	"encoding/json"

	"github.com/oneminch/devmenu/pkg/model"
)

type jsonEntry struct {
	Port     int      `json:"port"`
	PID      int      `json:"pid"`
	Name     string   `json:"name"`
	Command  string   `json:"command,omitempty"`
	Dir      string   `json:"dir,omitempty"`
	Version  string   `json:"version,omitempty"`
	RepoURL  string   `json:"repositoryUrl,omitempty"`
	MemoryMB *int     `json:"memoryMb,omitempty"`
	CPU      *float64 `json:"cpuPercent,omitempty"`
}

// ToJSON encodes a snapshot for scripting consumers.
func ToJSON(snap model.Snapshot) (string, error) {
	entries := make([]jsonEntry, 0, len(snap.Entries))
	for _, e := range snap.Entries {
		je := jsonEntry{
			Port:     e.Server.Port,
			PID:      e.Server.PID,
			Name:     e.DisplayName(),
			Command:  e.Server.Command,
			Dir:      e.Details.Dir,
			MemoryMB: e.Details.MemoryMB,
			CPU:      e.Details.CPU,
		}
		if p := e.Details.Project; p != nil {
			je.Version = p.Version
			je.RepoURL = p.RepositoryURL
		}
		entries = append(entries, je)
	}
	enc, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(enc), nil
}
