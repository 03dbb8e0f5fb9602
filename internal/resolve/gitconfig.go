package resolve

import (
	"os"
	"path/filepath"
	"regexp"
)

const gitConfigPath = ".git/config"

// originURL pulls the url line out of the [remote "origin"] section. The
// negated class keeps the match inside that one section, and the line
// anchor keeps a preceding pushurl line from matching as url.
var originURL = regexp.MustCompile(`(?m)\[remote "origin"\][^\[]*?^\s*url\s*=\s*(\S+)`)

// gitRemoteURL reads the repo's local git config and extracts the origin
// remote URL. Any failure leaves the field absent.
func gitRemoteURL(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, gitConfigPath))
	if err != nil {
		return ""
	}
	m := originURL.FindSubmatch(data)
	if m == nil {
		return ""
	}
	return string(m[1])
}
