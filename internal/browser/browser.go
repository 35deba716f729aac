// Package browser abstracts launching the user's default web browser.
// Commands depend on the Opener interface so tests can substitute a fake
// instead of spawning a real browser window.
package browser

import (
	"path/filepath"

	"github.com/pkg/browser"
)

// Opener launches a URL in the default browser.
type Opener interface {
	Open(url string) error
}

type systemOpener struct{}

func (systemOpener) Open(url string) error {
	return browser.OpenURL(url)
}

// System returns the Opener backed by the real default browser.
func System() Opener {
	return systemOpener{}
}

// FileURL converts a filesystem path into a file-scheme URL the browser
// can open. Relative paths are made absolute first.
func FileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return "file://" + filepath.ToSlash(abs), nil
}
