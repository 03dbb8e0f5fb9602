package resolve

import "strings"

// NormalizeRepoURL rewrites the URL forms found in manifests and git
// configs into something a browser can open:
//
//	git+https://github.com/a/b.git -> https://github.com/a/b
//	git@github.com:a/b.git         -> https://github.com/a/b
func NormalizeRepoURL(raw string) string {
	url := strings.TrimPrefix(strings.TrimSpace(raw), "git+")

	if rest, ok := strings.CutPrefix(url, "git@"); ok {
		if host, path, found := strings.Cut(rest, ":"); found {
			url = "https://" + host + "/" + path
		}
	}

	return strings.TrimSuffix(url, ".git")
}
