package config

import (
	"os"
	"path/filepath"

	"github.com/wasmhub-labs/wasmhub/internal/branding"
)

// LearnDirName is the directory that marks a checkout of the learning
// repository. HubRoot walks upward from the working directory until it
// finds one.
const LearnDirName = "learn"

// HubRoot resolves the root of the learning repository. Resolution order:
// the WASMHUB_ROOT environment variable, the hub.root config key, the
// nearest ancestor of the working directory containing a learn/ directory,
// and finally the working directory itself.
func HubRoot() string {
	if root := os.Getenv(branding.EnvVar("ROOT")); root != "" {
		return root
	}
	if root := Get(KeyHubRoot); root != "" {
		return root
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	if root, ok := findHubRoot(cwd); ok {
		return root
	}
	return cwd
}

// findHubRoot walks from dir toward the filesystem root looking for a
// directory that contains learn/.
func findHubRoot(dir string) (string, bool) {
	for {
		marker := filepath.Join(dir, LearnDirName)
		if info, err := os.Stat(marker); err == nil && info.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
