package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timeflowhq/timeflow/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run a JSON API over the entry store. Callers identify themselves with
an X-User-ID header; authentication itself is left to whatever sits in
front of the service.`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("listen")
		if addr == "" {
			addr = cfg.ListenAddr
		}
		fmt.Printf("🌐 Listening on %s\n", addr)
		if err := server.NewRouter(svc).Run(addr); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

func init() {
	serveCmd.Flags().String("listen", "", "Bind address (overrides config)")
}
