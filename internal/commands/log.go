package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/timeflowhq/timeflow/internal/timeutil"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "List a day's entries",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		dateStr, _ := cmd.Flags().GetString("date")
		day := time.Now()
		if dateStr != "" {
			parsed, err := time.ParseInLocation("2006-01-02", dateStr, day.Location())
			if err != nil {
				fmt.Printf("Error: invalid date %q (want YYYY-MM-DD)\n", dateStr)
				return
			}
			day = parsed
		}

		start := timeutil.StartOfDay(day)
		entries, err := svc.Entries(cfg.UserID, start, start.AddDate(0, 0, 1))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(entries) == 0 {
			fmt.Printf("No entries on %s.\n", start.Format("2006-01-02"))
			return
		}

		fmt.Printf("Activity for %s\n", start.Format("Mon, 02 Jan 2006"))
		fmt.Printf("%-36s %-8s %-14s %s\n", "ID", "TIME", "TYPE", "NOTE")
		fmt.Println(strings.Repeat("-", 80))
		for _, e := range entries {
			fmt.Printf("%-36s %-8s %-14s %s\n",
				e.ID,
				e.EffectiveTime().Format("15:04"),
				e.EntryType,
				e.Description)
		}
	}),
}

func init() {
	logCmd.Flags().String("date", "", "Day to list (YYYY-MM-DD, default today)")
}
