package output

import (
	"fmt"
	"io"

	"github.com/oneminch/devmenu/pkg/model"
)

var (
	colorReset = ansiString("\033[0m")
	colorCyan  = ansiString("\033[36m")
	colorGreen = ansiString("\033[32m")
	colorDim   = ansiString("\033[2m")
)

// ansiString marks color codes we emit ourselves, so the printer lets
// them through while sanitizing everything else.
type ansiString string

// Render writes the one-shot, grouped-by-port view of a snapshot.
// Untrusted fields are sanitized before they touch the terminal.
func Render(w io.Writer, snap model.Snapshot, colorEnabled bool) {
	p := newPrinter(w)

	if len(snap.Entries) == 0 {
		p.println("No dev servers running.")
		return
	}

	for _, group := range snap.ByPort() {
		if colorEnabled {
			p.printf("%sPort %d%s\n", colorCyan, group.Port, colorReset)
		} else {
			p.printf("Port %d\n", group.Port)
		}
		for _, e := range group.Entries {
			renderEntry(p, e, colorEnabled)
		}
	}
}

func renderEntry(p printer, e model.Entry, colorEnabled bool) {
	name := e.DisplayName()
	if colorEnabled {
		p.printf("  %s%s%s", colorGreen, name, colorReset)
	} else {
		p.printf("  %s", name)
	}
	if e.Details.Project != nil && e.Details.Project.Version != "" {
		p.printf(" v%s", e.Details.Project.Version)
	}
	if colorEnabled {
		p.printf("  %s(pid %d)%s\n", colorDim, e.Server.PID, colorReset)
	} else {
		p.printf("  (pid %d)\n", e.Server.PID)
	}

	if e.Details.MemoryMB != nil || e.Details.CPU != nil {
		p.print("   ")
		if e.Details.MemoryMB != nil {
			p.printf(" memory %d MB", *e.Details.MemoryMB)
		}
		if e.Details.CPU != nil {
			p.printf(" cpu %.1f%%", *e.Details.CPU)
		}
		p.println()
	}
	if e.Details.Dir != "" {
		p.printf("    dir  %s\n", e.Details.Dir)
	}
	if e.Details.Project != nil && e.Details.Project.RepositoryURL != "" {
		p.printf("    repo %s\n", e.Details.Project.RepositoryURL)
	}
}

// printer sanitizes every string-like argument before printing.
type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) printer {
	return printer{w: w}
}

func (p printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, sanitizeArgs(args)...)
}

func (p printer) print(args ...any) {
	fmt.Fprint(p.w, sanitizeArgs(args)...)
}

func (p printer) println(args ...any) {
	fmt.Fprintln(p.w, sanitizeArgs(args)...)
}

func sanitizeArgs(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	out := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case ansiString: // our own escape codes render as-is
			out[i] = string(v)
		case string:
			out[i] = SanitizeTerminal(v)
		case fmt.Stringer:
			out[i] = SanitizeTerminal(v.String())
		default:
			out[i] = a
		}
	}
	return out
}
