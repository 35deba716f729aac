package cli

import (
	"fmt"
	"path/filepath"
	"regexp"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/wasmhub-labs/wasmhub/internal/config"
	"github.com/wasmhub-labs/wasmhub/internal/platform"
	"github.com/wasmhub-labs/wasmhub/internal/scaffold"
	"github.com/wasmhub-labs/wasmhub/internal/ui"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// projectsDirName is where scaffolded projects live under the hub root.
const projectsDirName = "projects"

func init() {
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new C/WASM project from the template",
	Long: `Scaffold a fresh C/WASM project under projects/<name>: a C source stub,
an HTML harness, the platform build script, and a project manifest.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := validateName(name); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\n%s\n\n", ui.Title("Creating new C/WASM project: "+name))

		projectsDir := filepath.Join(config.HubRoot(), projectsDirName)
		result, err := scaffold.Generate(scaffold.NewData(name), projectsDir)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "  %s Created %s\n", ui.Success("✓"), result.ProjectDir)
		for _, f := range result.Files {
			fmt.Fprintf(out, "      %s\n", f)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  %s %s\n", ui.Warn("!"), w)
		}

		fmt.Fprintf(out, "\n  Next steps:\n")
		fmt.Fprintf(out, "    cd %s\n", result.ProjectDir)
		if runtime.GOOS == "windows" {
			fmt.Fprintf(out, "    %s\n", platform.WindowsBuildScript)
		} else {
			fmt.Fprintf(out, "    ./%s\n", platform.UnixBuildScript)
		}
		fmt.Fprintf(out, "    # Then open www/index.html\n")
		return nil
	},
}

// validateName enforces the project name pattern: lowercase letters,
// digits, and hyphens, starting with an alphanumeric.
func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match %s", name, namePattern.String())
	}
	return nil
}
