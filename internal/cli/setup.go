package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/wasmhub-labs/wasmhub/internal/branding"
	"github.com/wasmhub-labs/wasmhub/internal/toolchain"
	"github.com/wasmhub-labs/wasmhub/internal/ui"
)

func init() {
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Print setup instructions for missing prerequisites",
	Long:  `Check the required toolchains and print platform-specific installation guidance for any that are missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runSetup(cmd.OutOrStdout())
		return nil
	},
}

// setupStep is one manual installation task with its instructions.
type setupStep struct {
	name         string
	instructions []string
}

func runSetup(out io.Writer) {
	fmt.Fprintf(out, "\n%s\n\n", ui.Title("Setting up the WASM development environment"))

	var steps []setupStep

	if status := toolchain.ProbeWithTimeout("emcc"); status.Found {
		fmt.Fprintf(out, "  %s Emscripten already installed\n", ui.Success("✓"))
	} else {
		steps = append(steps, setupStep{
			name:         "Install Emscripten",
			instructions: emsdkInstructions(runtime.GOOS),
		})
	}

	if status := toolchain.ProbeWithTimeout("node"); status.Found {
		fmt.Fprintf(out, "  %s Node.js already installed\n", ui.Success("✓"))
	} else {
		steps = append(steps, setupStep{
			name:         "Install Node.js",
			instructions: []string{"Visit https://nodejs.org/ and download the LTS version"},
		})
	}

	if len(steps) == 0 {
		fmt.Fprintf(out, "\n%s\n", ui.Success("Setup complete! Start learning with:"))
		fmt.Fprintf(out, "%s\n\n", ui.Accent("   "+branding.CLIName()+" lesson 1"))
		return
	}

	fmt.Fprintf(out, "\n%s\n\n", ui.Warn("Manual steps required:"))
	for i, step := range steps {
		fmt.Fprintf(out, "  %d. %s\n", i+1, ui.Title(step.name))
		for _, line := range step.instructions {
			fmt.Fprintf(out, "     %s\n", line)
		}
		fmt.Fprintln(out)
	}
}

// emsdkInstructions returns the Emscripten install steps for a platform.
func emsdkInstructions(goos string) []string {
	switch goos {
	case "windows":
		return []string{
			"git clone https://github.com/emscripten-core/emsdk.git",
			"cd emsdk",
			"emsdk install latest",
			"emsdk activate latest",
			"emsdk_env.bat  (run in each new terminal)",
		}
	case "darwin":
		return []string{
			"brew install emscripten",
			"Or: git clone https://github.com/emscripten-core/emsdk.git && cd emsdk && ./emsdk install latest && ./emsdk activate latest",
		}
	default:
		return []string{
			"git clone https://github.com/emscripten-core/emsdk.git",
			"cd emsdk && ./emsdk install latest && ./emsdk activate latest",
			"source ./emsdk_env.sh",
		}
	}
}
