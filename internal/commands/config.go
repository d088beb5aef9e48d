package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timeflowhq/timeflow/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("user:               %s\n", cfg.UserID)
		fmt.Printf("db.driver:          %s\n", cfg.Driver)
		fmt.Printf("db.dsn:             %s\n", cfg.DSN)
		fmt.Printf("max_interval_hours: %d\n", int(cfg.MaxInterval.Hours()))
		fmt.Printf("server.listen:      %s\n", cfg.ListenAddr)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration key and write the config file",
	Long: `Set a configuration key. Known keys: user, db.driver, db.dsn,
max_interval_hours, server.listen.

Example:
  timeflow config set db.driver postgres
  timeflow config set db.dsn "host=db.example.com user=me dbname=timeflow"`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := config.Load(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		config.Set(args[0], args[1])
		if err := config.Write(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		path, _ := config.FilePath()
		fmt.Printf("✅ %s = %s (saved to %s)\n", args[0], args[1], path)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
