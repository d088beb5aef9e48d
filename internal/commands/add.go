package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeclock"
	"github.com/timeflowhq/timeflow/internal/timeutil"
	"github.com/timeflowhq/timeflow/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a manual (back-dated) entry",
	Long: `Record an entry at an explicit date and time. Opens an interactive
form by default; use flags with --no-ui for a direct submission.

Examples:
  timeflow add                                        # interactive form
  timeflow add --no-ui -t clock-in --time 08:30
  timeflow add --no-ui -t others-out --date 2026-08-28 --time 11:00 --note "Errand"`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		noUI, _ := cmd.Flags().GetBool("no-ui")
		if !noUI {
			if err := tui.RunEntryFormTUI(svc, cfg.UserID); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		typeStr, _ := cmd.Flags().GetString("type")
		dateStr, _ := cmd.Flags().GetString("date")
		timeStr, _ := cmd.Flags().GetString("time")
		note, _ := cmd.Flags().GetString("note")

		typ := models.EntryType(typeStr)
		if !typ.Valid() {
			fmt.Printf("Error: invalid type %q (want one of clock-in, clock-out, break-start, break-end, others-out, others-in)\n", typeStr)
			return
		}
		if timeStr == "" {
			fmt.Println("Error: --time is required with --no-ui")
			return
		}
		occurredAt, err := timeutil.ParseDayTime(dateStr, timeStr, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		entry, err := svc.SubmitAction(cfg.UserID, typ, occurredAt, note)
		if err != nil {
			if timeclock.IsRejection(err) {
				fmt.Printf("❌ Not recorded: %v\n", err)
			} else {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}
		fmt.Printf("✅ %s recorded at %s - ID: %s\n",
			entry.EntryType.Label(),
			entry.EffectiveTime().Format("2006-01-02 15:04"),
			entry.ID)
	}),
}

func init() {
	addCmd.Flags().Bool("no-ui", false, "Submit directly from flags without the form")
	addCmd.Flags().StringP("type", "t", "", "Entry type")
	addCmd.Flags().String("date", "", "Date (YYYY-MM-DD, default today)")
	addCmd.Flags().String("time", "", "Time of day (HH:MM)")
	addCmd.Flags().String("note", "", "Description (required for others-*)")
}
