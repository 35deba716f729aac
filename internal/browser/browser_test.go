package browser

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestFileURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.html")

	url, err := FileURL(path)
	if err != nil {
		t.Fatalf("FileURL() error: %v", err)
	}
	if !strings.HasPrefix(url, "file://") {
		t.Errorf("url = %q, want file scheme", url)
	}
	if !strings.HasSuffix(url, "demo.html") {
		t.Errorf("url = %q, want demo.html suffix", url)
	}
	if strings.Contains(url, `\`) {
		t.Errorf("url %q contains backslashes", url)
	}
}

func TestFileURLRelative(t *testing.T) {
	url, err := FileURL("demo.html")
	if err != nil {
		t.Fatalf("FileURL() error: %v", err)
	}
	abs, _ := filepath.Abs("demo.html")
	want := "file://" + filepath.ToSlash(abs)
	if url != want {
		t.Errorf("url = %q, want %q", url, want)
	}
}
