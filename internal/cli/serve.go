package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wasmhub-labs/wasmhub/internal/browser"
	"github.com/wasmhub-labs/wasmhub/internal/config"
	"github.com/wasmhub-labs/wasmhub/internal/hubserver"
	"github.com/wasmhub-labs/wasmhub/internal/ui"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve [port]",
	Short: "Start a local dev server (default port: 8080)",
	Long:  `Serve the hub root over HTTP, open it in the browser, and block until interrupted.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		port := hubserver.DefaultPort
		if cfg := config.GetInt(config.KeyServePort); cfg != 0 {
			port = cfg
		}
		if len(args) == 1 {
			p, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("port must be an integer, got %q", args[0])
			}
			port = p
		}

		srv := hubserver.New(config.HubRoot(), port)
		ln, err := srv.Listen()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		url := srv.URL(ln)
		fmt.Fprintf(out, "\n%s\n\n", ui.Title(fmt.Sprintf("Starting development server on port %d...", port)))
		fmt.Fprintf(out, "  Server running at: %s\n", ui.Accent(url))
		fmt.Fprintf(out, "  Press Ctrl+C to stop\n\n")

		if err := browser.System().Open(url); err != nil {
			fmt.Fprintf(out, "  %s\n", ui.Warn("Could not open browser: "+err.Error()))
		}

		if err := srv.Serve(ctx, ln); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s\n", ui.Warn("Server stopped"))
		return nil
	},
}
