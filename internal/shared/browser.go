package shared

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Seam for tests; exercising every branch would otherwise need three OSes.
var getRuntime = func() string { return runtime.GOOS }

// OpenBrowser launches the default system browser at the given URL. The
// authorization-code flow uses it to send the user to Spotify's consent
// page; callers fall back to printing the URL when it fails.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd

	switch platform := getRuntime(); platform {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return fmt.Errorf("unsupported platform: %s", platform)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}
