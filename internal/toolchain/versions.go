package toolchain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionToken matches the first semver-looking token in a version line,
// e.g. "3.1.61" in "emcc (Emscripten gcc/clang-like replacement) 3.1.61".
var versionToken = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// ExtractVersion pulls a comparable version number out of a raw
// `--version` line. Returns an error when no version token is present.
func ExtractVersion(line string) (string, error) {
	tok := versionToken.FindString(line)
	if tok == "" {
		return "", fmt.Errorf("no version number in %q", line)
	}
	return tok, nil
}

// MeetsMinimum reports whether the version embedded in line is at least
// min. Tolerates a leading "v" and extra vendor text around the number.
func MeetsMinimum(line, min string) (bool, error) {
	raw, err := ExtractVersion(strings.TrimPrefix(line, "v"))
	if err != nil {
		return false, err
	}
	have, err := semver.NewVersion(raw)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", raw, err)
	}
	want, err := semver.NewVersion(min)
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", min, err)
	}
	return have.Compare(want) >= 0, nil
}
