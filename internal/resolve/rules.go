package resolve

import (
	"regexp"
	"strings"
)

// dirRule captures the project root out of a command line. Rules are
// tried in order and the first hit wins, so explicit directory flags must
// come before the generic path patterns.
type dirRule struct {
	name string
	re   *regexp.Regexp
}

var dirRules = []dirRule{
	// launcher was told where to run: `next dev -C /srv/proj`
	{"chdir-flag", regexp.MustCompile(`(?:^|\s)-C[ =](\S+)`)},
	// npm-style prefix: `npm --prefix /srv/proj run dev`
	{"prefix-flag", regexp.MustCompile(`(?:^|\s)--prefix[ =](\S+)`)},
	// binary launched out of the project's own node_modules
	{"node-modules", regexp.MustCompile(`(\S+)/node_modules/`)},
	// framework build output living under the project root
	{"next-build-dir", regexp.MustCompile(`(\S+)/\.next(?:/|$|\s)`)},
	{"nuxt-output-dir", regexp.MustCompile(`(\S+)/\.output/`)},
}

// inferDir applies the rule table to a command line. Empty string means
// no rule matched; the caller falls back to asking the OS.
func inferDir(cmdline string) string {
	for _, rule := range dirRules {
		m := rule.re.FindStringSubmatch(cmdline)
		if m == nil {
			continue
		}
		dir := strings.TrimRight(m[1], "/")
		if dir == "" {
			continue
		}
		return dir
	}
	return ""
}
