package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/timeflowhq/timeflow/internal/timeclock"
	"github.com/timeflowhq/timeflow/internal/timeutil"
)

var editCmd = &cobra.Command{
	Use:   "edit <entry-id>",
	Short: "Correct an entry's time or note",
	Long: `Move an entry to a new time and/or change its note. The new time must
stay between the neighboring entries.

Examples:
  timeflow edit 4f7c... --time 12:45
  timeflow edit 4f7c... --date 2026-08-28 --time 09:00 --note "Forgot to clock in"`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		id := args[0]
		entry, err := svc.Entry(id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if entry == nil {
			fmt.Printf("Error: entry %s not found.\n", id)
			return
		}

		dateStr, _ := cmd.Flags().GetString("date")
		timeStr, _ := cmd.Flags().GetString("time")
		note, _ := cmd.Flags().GetString("note")

		newTime := entry.EffectiveTime()
		if timeStr != "" {
			ref := entry.EffectiveTime()
			if dateStr == "" {
				dateStr = ref.Format("2006-01-02")
			}
			newTime, err = timeutil.ParseDayTime(dateStr, timeStr, time.Now())
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		}
		if !cmd.Flags().Changed("note") {
			note = entry.Description
		}

		if err := svc.EditEntry(id, newTime, note); err != nil {
			if timeclock.IsRejection(err) {
				fmt.Printf("❌ Not changed: %v\n", err)
			} else {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}
		fmt.Printf("✅ %s updated to %s\n", entry.EntryType.Label(), newTime.Format("2006-01-02 15:04"))
	}),
}

func init() {
	editCmd.Flags().String("date", "", "New date (YYYY-MM-DD)")
	editCmd.Flags().String("time", "", "New time of day (HH:MM)")
	editCmd.Flags().String("note", "", "New description")
}
