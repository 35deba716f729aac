package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wasmhub-labs/wasmhub/internal/browser"
	"github.com/wasmhub-labs/wasmhub/internal/config"
	"github.com/wasmhub-labs/wasmhub/internal/lessons"
)

func init() {
	rootCmd.AddCommand(lessonCmd)
}

var lessonCmd = &cobra.Command{
	Use:   "lesson <number>",
	Short: fmt.Sprintf("Open a specific lesson (1-%d)", lessons.Count()),
	Long:  `Print a lesson's README path and open its demo page in the default browser.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("lesson number must be an integer, got %q", args[0])
		}
		return lessons.Open(config.HubRoot(), n, cmd.OutOrStdout(), browser.System())
	},
}
