package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// stubPath builds a PATH containing stub executables for the given names.
func stubPath(t *testing.T, names ...string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub executables use /bin/sh")
	}

	dir := t.TempDir()
	for _, name := range names {
		script := "#!/bin/sh\necho '" + name + " 99.0.0'\n"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0755); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("PATH", dir)
}

func TestRunCheckAllPresent(t *testing.T) {
	stubPath(t, "emcc", "node", "wat2wasm", "git")

	var out bytes.Buffer
	if !runCheck(&out) {
		t.Errorf("runCheck = false with all tools present:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "99.0.0") {
		t.Errorf("report missing probed versions:\n%s", out.String())
	}
}

func TestRunCheckMissingRequired(t *testing.T) {
	// PATH with no tools at all: every probe must classify as not found
	// without an uncaught error.
	stubPath(t)

	var out bytes.Buffer
	if runCheck(&out) {
		t.Errorf("runCheck = true with nothing installed:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Not found") {
		t.Errorf("report missing not-found entries:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "(optional)") {
		t.Errorf("optional tools not marked:\n%s", out.String())
	}
}
