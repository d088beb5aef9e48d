package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/timeflowhq/timeflow/internal/timeutil"
	"github.com/timeflowhq/timeflow/internal/tui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current state and today's totals",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		status, err := svc.Status(cfg.UserID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if status.Since.IsZero() {
			fmt.Println("Clocked out (no entries yet)")
		} else {
			elapsed := time.Since(status.Since)
			fmt.Printf("⏱️  Currently %s\n", modeText(status.Mode))
			fmt.Printf("Since: %s\n", status.Since.Format("15:04:05"))
			fmt.Printf("Elapsed: %s\n", timeutil.FormatClock(elapsed))
		}

		totals, err := svc.DailyTotals(cfg.UserID, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Today: %s worked, %s on break, %s others\n",
			timeutil.FormatHoursMinutes(totals.Working),
			timeutil.FormatHoursMinutes(totals.Break),
			timeutil.FormatHoursMinutes(totals.Others))
	}),
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long: `Open a live dashboard showing your current state, a ticking elapsed
timer, and today's totals. Quick actions are bound to keys.`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		if err := tui.RunDashboardTUI(svc, cfg.UserID); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}
