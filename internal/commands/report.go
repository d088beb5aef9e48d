package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/timeflowhq/timeflow/internal/timeclock"
	"github.com/timeflowhq/timeflow/internal/timeutil"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show aggregated totals",
	Long: `Show time distribution for a day (default), an ISO week, or a year.

Examples:
  timeflow report
  timeflow report --date 2026-08-28
  timeflow report --week
  timeflow report --year`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		dateStr, _ := cmd.Flags().GetString("date")
		week, _ := cmd.Flags().GetBool("week")
		year, _ := cmd.Flags().GetBool("year")

		ref := time.Now()
		if dateStr != "" {
			parsed, err := time.ParseInLocation("2006-01-02", dateStr, ref.Location())
			if err != nil {
				fmt.Printf("Error: invalid date %q (want YYYY-MM-DD)\n", dateStr)
				return
			}
			ref = parsed
		}

		var (
			totals timeclock.Totals
			label  string
			err    error
		)
		switch {
		case year:
			totals, err = svc.YearlyTotals(cfg.UserID, ref)
			label = ref.Format("2006")
		case week:
			totals, err = svc.WeeklyTotals(cfg.UserID, ref)
			start, _ := timeutil.WeekWindow(ref)
			label = fmt.Sprintf("week of %s", start.Format("02 Jan 2006"))
		default:
			totals, err = svc.DailyTotals(cfg.UserID, ref)
			label = ref.Format("Mon, 02 Jan 2006")
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Time distribution for %s\n\n", label)
		printBucket("Working", totals.Working, totals)
		printBucket("Break", totals.Break, totals)
		printBucket("Others", totals.Others, totals)
		printBucket("Free", totals.Free, totals)
	}),
}

func printBucket(name string, d time.Duration, totals timeclock.Totals) {
	fmt.Printf("  %-8s %10s  (%d%%)\n", name, timeutil.FormatHoursMinutes(d), totals.Percent(d))
}

func init() {
	reportCmd.Flags().String("date", "", "Reference date (YYYY-MM-DD, default today)")
	reportCmd.Flags().Bool("week", false, "Aggregate the ISO week containing the date")
	reportCmd.Flags().Bool("year", false, "Aggregate the year containing the date")
}
