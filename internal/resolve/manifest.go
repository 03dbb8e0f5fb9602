package resolve

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/oneminch/devmenu/pkg/model"
)

const manifestFile = "package.json"

type manifest struct {
	Name       string          `json:"name"`
	Version    string          `json:"version"`
	Repository json.RawMessage `json:"repository"`
}

// readManifest parses <dir>/package.json. A missing or unparseable file
// yields nil; the caller renders a port-based fallback instead.
func readManifest(dir string) *model.ProjectInfo {
	data, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if err != nil {
		return nil
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}

	return &model.ProjectInfo{
		Name:          m.Name,
		Version:       m.Version,
		RepositoryURL: repositoryURL(m.Repository),
	}
}

// repositoryURL handles both manifest forms of the repository field: a
// bare string, or an object with a url member.
func repositoryURL(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.URL
	}
	return ""
}
