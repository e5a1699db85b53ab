package export

import (
	"os/exec"
	"runtime"
)

// commandStarter starts an external command without waiting for it.
// Tests replace it to observe what would be opened.
var commandStarter = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Open hands path to the system's default application, which for an HTML
// document is the browser.
func Open(path string) error {
	switch runtime.GOOS {
	case "windows":
		return commandStarter("rundll32", "url.dll,FileProtocolHandler", path)
	case "darwin":
		return commandStarter("open", path)
	default:
		return commandStarter("xdg-open", path)
	}
}
