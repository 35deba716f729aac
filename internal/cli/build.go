package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wasmhub-labs/wasmhub/internal/branding"
	"github.com/wasmhub-labs/wasmhub/internal/builder"
	"github.com/wasmhub-labs/wasmhub/internal/config"
	"github.com/wasmhub-labs/wasmhub/internal/lessons"
	"github.com/wasmhub-labs/wasmhub/internal/toolchain"
	"github.com/wasmhub-labs/wasmhub/internal/ui"
)

// cLessonNumber is the lesson whose project the build command compiles.
const cLessonNumber = 4

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the C WASM project with Emscripten",
	Long:  `Run the build script of the C lesson project, streaming compiler output to the console.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		lesson, err := lessons.Lookup(cLessonNumber)
		if err != nil {
			return err
		}
		projectDir := lesson.Path(config.HubRoot())

		if _, err := os.Stat(filepath.Join(projectDir, "src", "main.c")); err != nil {
			return fmt.Errorf("C project not found at %s", projectDir)
		}

		if status := toolchain.ProbeWithTimeout("emcc"); !status.Found {
			fmt.Fprintf(out, "%s\n",
				ui.Error(fmt.Sprintf("Emscripten (emcc) not found. Run '%s setup' for installation instructions.", branding.CLIName())))
			return fmt.Errorf("emcc not found")
		}

		fmt.Fprintf(out, "\n%s\n\n", ui.Title("Building C → WASM..."))

		runner := &builder.Runner{Stdout: out, Stderr: cmd.ErrOrStderr()}
		result, err := runner.Run(cmd.Context(), projectDir)
		if err != nil {
			return err
		}
		if !result.Success() {
			fmt.Fprintf(out, "\n%s\n", ui.Error("Build failed. Check the errors above."))
			return fmt.Errorf("build script exited with code %d", result.ExitCode)
		}

		fmt.Fprintf(out, "\n%s\n", ui.Success("Build successful!"))
		fmt.Fprintf(out, "   Output: %s\n", filepath.Join(projectDir, "www"))
		fmt.Fprintf(out, "\n%s\n", ui.Accent("   Start server with: "+branding.CLIName()+" serve"))
		return nil
	},
}
