// Package osutil holds platform names, exit codes and file modes
package osutil

import "runtime"

const (
	Windows = "windows"
	Darwin  = "darwin"
)

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

const (
	DirPermission  = 0o755
	FilePermission = 0o644
)

// DefaultEditor is the editor used by edit-config when neither VISUAL nor
// EDITOR is set.
func DefaultEditor() string {
	if runtime.GOOS == Windows {
		return "C:\\Windows\\system32\\notepad.exe"
	}

	return "nano"
}

// OpenCommand returns the program and arguments that open url in the
// default browser.
func OpenCommand(url string) (string, []string) {
	switch runtime.GOOS {
	case Windows:
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case Darwin:
		return "open", []string{url}
	default:
		return "xdg-open", []string{url}
	}
}
