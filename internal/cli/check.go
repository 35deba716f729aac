package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wasmhub-labs/wasmhub/internal/branding"
	"github.com/wasmhub-labs/wasmhub/internal/toolchain"
	"github.com/wasmhub-labs/wasmhub/internal/ui"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check which toolchains are installed",
	Long:  `Probe the external tools the hub relies on and report each one's presence and version.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runCheck(cmd.OutOrStdout())
		return nil
	},
}

// runCheck probes every tool in the table and prints a report. Returns
// true when all required tools are present.
func runCheck(out io.Writer) bool {
	fmt.Fprintf(out, "\n%s\n\n", ui.Title("Checking development environment"))
	fmt.Fprintln(out, strings.Repeat("=", 50))

	allGood := true
	for _, tool := range toolchain.Tools() {
		status := toolchain.ProbeWithTimeout(tool.Binary)
		switch {
		case status.Found:
			fmt.Fprintf(out, "  %s %s: %s\n", ui.Success("✓"), tool.Name, ui.Accent(status.Version))
			if tool.MinVersion != "" {
				if ok, err := toolchain.MeetsMinimum(status.Version, tool.MinVersion); err == nil && !ok {
					fmt.Fprintf(out, "      %s\n", ui.Warn("older than recommended "+tool.MinVersion))
				}
			}
		case tool.Required:
			fmt.Fprintf(out, "  %s %s: %s - %s\n", ui.Error("✗"), tool.Name, ui.Warn("Not found"), tool.Description)
			allGood = false
		default:
			fmt.Fprintf(out, "  %s %s: %s - %s\n", ui.Warn("○"), tool.Name, ui.Warn("Not found (optional)"), tool.Description)
		}
	}

	fmt.Fprintln(out, strings.Repeat("=", 50))

	if allGood {
		fmt.Fprintf(out, "\n%s\n\n", ui.Success("All required tools installed! You're ready to go."))
	} else {
		fmt.Fprintf(out, "\n%s\n\n",
			ui.Warn(fmt.Sprintf("Some required tools are missing. Run '%s setup' for instructions.", branding.CLIName())))
	}
	return allGood
}
