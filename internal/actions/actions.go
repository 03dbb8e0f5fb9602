package actions

import (
	"fmt"
	"os/exec"
	"runtime"
	"syscall"

	"github.com/oneminch/devmenu/internal/resolve"
)

// Stop forcefully terminates a server process. The caller reports
// failure to the user once; there is no automatic retry, and the next
// poll's reconcile picks up the disappearance.
func Stop(pid int) error {
	if err := syscall.Kill(pid, syscall.SIGKILL); err != nil {
		return fmt.Errorf("stop pid %d: %w", pid, err)
	}
	return nil
}

// OpenBrowser opens the default browser on the local server.
func OpenBrowser(port int) error {
	return openURL(fmt.Sprintf("http://localhost:%d", port))
}

// OpenRepo normalizes a raw repository URL from a manifest or git config
// and opens it in the browser.
func OpenRepo(rawURL string) error {
	url := resolve.NormalizeRepoURL(rawURL)
	if url == "" {
		return fmt.Errorf("no repository url")
	}
	return openURL(url)
}

func openURL(url string) error {
	opener := "xdg-open"
	if runtime.GOOS == "darwin" {
		opener = "open"
	}
	if err := exec.Command(opener, url).Start(); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}
