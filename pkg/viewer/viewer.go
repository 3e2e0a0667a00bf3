// Package viewer hands an image file to the platform viewer.
package viewer

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open launches the system image viewer on path and blocks until the
// viewer command exits.
func Open(path string) error {
	name, args := viewerCommand(runtime.GOOS)
	if name == "" {
		return fmt.Errorf("no image viewer known for %s", runtime.GOOS)
	}

	cmd := exec.Command(name, append(args, path)...)
	return cmd.Run()
}

func viewerCommand(goos string) (string, []string) {
	switch goos {
	case "linux":
		return "xdg-open", nil
	case "darwin":
		// -W keeps open(1) alive until the viewer quits
		return "open", []string{"-W"}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	}
	return "", nil
}
