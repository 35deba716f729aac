package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestBuildScript(t *testing.T) {
	got := BuildScript()
	if runtime.GOOS == "windows" {
		if got != WindowsBuildScript {
			t.Errorf("BuildScript() = %q, want %q", got, WindowsBuildScript)
		}
	} else if got != UnixBuildScript {
		t.Errorf("BuildScript() = %q, want %q", got, UnixBuildScript)
	}
}

func TestScriptArgv(t *testing.T) {
	argv := ScriptArgv(BuildScript())
	if len(argv) == 0 {
		t.Fatal("ScriptArgv returned an empty vector")
	}
	if runtime.GOOS == "windows" {
		if argv[0] != "cmd" {
			t.Errorf("argv[0] = %q, want cmd", argv[0])
		}
	} else if argv[0] != "./"+UnixBuildScript {
		t.Errorf("argv[0] = %q, want ./%s", argv[0], UnixBuildScript)
	}
}

func TestChmod(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "build.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(path, 0755); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0755 {
			t.Errorf("permissions = %o, want %o", perm, 0755)
		}
	}
}
