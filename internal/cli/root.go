package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wasmhub-labs/wasmhub/internal/branding"
	"github.com/wasmhub-labs/wasmhub/internal/config"
	"github.com/wasmhub-labs/wasmhub/internal/ui"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` helps you set up and navigate the WebAssembly learning
repository: it checks your toolchain, opens lessons, builds the C/WASM
project, runs a local dev server, and scaffolds new projects.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	Run: func(cmd *cobra.Command, args []string) {
		// No subcommand: banner plus usage.
		_ = cmd.Help()
	},
}

func init() {
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd == rootCmd {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Banner())
			fmt.Fprintf(out, "  %s\n\n", ui.Title(branding.DisplayName()+" CLI"))
		}
		defaultHelp(cmd, args)
	})
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
