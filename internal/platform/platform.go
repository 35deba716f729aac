package platform

import (
	"os"
	"runtime"
)

// Build script file names for the two supported platform families.
const (
	UnixBuildScript    = "build.sh"
	WindowsBuildScript = "build.bat"
)

// BuildScript returns the build script file name for the current platform.
func BuildScript() string {
	if runtime.GOOS == "windows" {
		return WindowsBuildScript
	}
	return UnixBuildScript
}

// ScriptArgv returns the argument vector that invokes the named build
// script from its own directory. Batch files need the cmd interpreter;
// shell scripts rely on their shebang and executable bit.
func ScriptArgv(script string) []string {
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/C", script}
	}
	return []string{"./" + script}
}

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
