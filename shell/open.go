// Package shell opens files and URLs with the platform's default handler.
package shell

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// OpenURL opens a URL in the default browser.
func OpenURL(url string) error {
	return open(url)
}

// OpenFile opens a file or directory with its default application. The
// path must exist; a dangling settings entry should not spawn a viewer.
func OpenFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	return open(path)
}

func open(target string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	case "darwin":
		cmd = exec.Command("open", target)
	default: // Linux and the BSDs
		cmd = exec.Command("xdg-open", target)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}
	return nil
}
