package lessons

import (
	"fmt"
	"io"
	"os"

	"github.com/wasmhub-labs/wasmhub/internal/browser"
	"github.com/wasmhub-labs/wasmhub/internal/ui"
)

// Open resolves lesson n under root, prints its README path when present,
// and opens its demo page in the browser when present. The number is
// validated before any filesystem access.
func Open(root string, n int, out io.Writer, opener browser.Opener) error {
	lesson, err := Lookup(n)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s\n\n", ui.Title(fmt.Sprintf("Opening lesson %d: %s", lesson.Number, lesson.Title)))

	readme := lesson.ReadmePath(root)
	if _, err := os.Stat(readme); err == nil {
		fmt.Fprintf(out, "  README: %s\n", readme)
	}

	demo := lesson.DemoPath(root)
	if _, err := os.Stat(demo); err != nil {
		fmt.Fprintf(out, "  %s\n", ui.Warn("No "+DemoFile+" found for this lesson"))
		return nil
	}

	fmt.Fprintf(out, "  Demo:   %s\n", demo)

	url, err := browser.FileURL(demo)
	if err != nil {
		return fmt.Errorf("resolving demo URL: %w", err)
	}
	fmt.Fprintf(out, "\n  %s\n", ui.Accent("Opening demo in browser..."))
	if err := opener.Open(url); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	return nil
}
