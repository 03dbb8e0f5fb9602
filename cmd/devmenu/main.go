//go:build linux || darwin

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/oneminch/devmenu/internal/menu"
	"github.com/oneminch/devmenu/internal/output"
	"github.com/oneminch/devmenu/internal/resolve"
	"github.com/oneminch/devmenu/internal/runner"
	"github.com/oneminch/devmenu/internal/sample"
	"github.com/oneminch/devmenu/internal/scan"
	"github.com/oneminch/devmenu/internal/store"
	"github.com/oneminch/devmenu/pkg/model"
)

var version = "dev"
var commit = ""
var buildDate = ""

func printHelp() {
	fmt.Println("Usage: devmenu [--once] [--json] [--from N] [--to N] [--interval D] [--no-color] [--help] [--version]")
	fmt.Println("  --once            Print the current server list and exit")
	fmt.Println("  --json            Print the current server list as JSON and exit")
	fmt.Println("  --from <n>        First port of the scanned range (default 3000)")
	fmt.Println("  --to <n>          Last port of the scanned range (default 3010)")
	fmt.Println("  --interval <d>    Ambient poll interval in interactive mode (default 5s)")
	fmt.Println("  --no-color        Disable colorized output")
	fmt.Println("  --help            Show this help message")
	fmt.Println("  --version         Show version and exit")
}

func main() {
	onceFlag := flag.Bool("once", false, "print the server list once and exit")
	jsonFlag := flag.Bool("json", false, "print the server list as JSON and exit")
	fromFlag := flag.Int("from", scan.DefaultFromPort, "first port of the scanned range")
	toFlag := flag.Int("to", scan.DefaultToPort, "last port of the scanned range")
	intervalFlag := flag.Duration("interval", 5*time.Second, "ambient poll interval")
	noColorFlag := flag.Bool("no-color", false, "disable colorized output")
	helpFlag := flag.Bool("help", false, "show help")
	versionFlag := flag.Bool("version", false, "show version and exit")

	flag.Parse()

	if *helpFlag {
		printHelp()
		os.Exit(0)
	}
	if *versionFlag {
		fmt.Printf("devmenu %s (commit %s, built %s)\n", version, commit, buildDate)
		os.Exit(0)
	}
	if *fromFlag > *toFlag {
		fmt.Fprintln(os.Stderr, "Error: --from must not exceed --to")
		os.Exit(1)
	}

	run := runner.Exec{}
	resolver := resolve.New(run)
	st := store.New(resolver.Resolve, sample.Proc{})
	ports := scan.PortRange{From: *fromFlag, To: *toFlag}

	poll := func(ctx context.Context) model.Snapshot {
		return st.Reconcile(ctx, scan.Detect(ctx, run, ports))
	}

	switch {
	case *jsonFlag:
		enc, err := output.ToJSON(poll(context.Background()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(enc)
	case *onceFlag:
		output.Render(os.Stdout, poll(context.Background()), !*noColorFlag)
	default:
		if err := menu.Run(poll, *intervalFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
