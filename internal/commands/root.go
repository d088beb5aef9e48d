package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timeflowhq/timeflow/internal/config"
	"github.com/timeflowhq/timeflow/internal/db"
	"github.com/timeflowhq/timeflow/internal/timeclock"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfg *config.Config
	svc *timeclock.Service
)

var rootCmd = &cobra.Command{
	Use:   "timeflow",
	Short: "A personal clock-in/clock-out time tracker",
	Long: `timeflow tracks your working day as a log of clock events: clock in and
out, start and end breaks, and record permissions. It derives your
current state and daily/weekly/yearly totals from that log.`,
}

// initApp loads configuration and the store, and panics on failure
func initApp() {
	loaded, err := config.Load()
	if err != nil {
		panic(err)
	}
	cfg = loaded
	if err := db.Initialize(cfg.Driver, cfg.DSN); err != nil {
		panic(err)
	}
	svc = timeclock.NewService(db.NewEntryStore(nil),
		timeclock.WithMaxInterval(cfg.MaxInterval))
}

// withApp wraps a command function to initialize config and store first
func withApp(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initApp()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("timeflow %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(breakCmd)
	rootCmd.AddCommand(othersCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
