package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/timeflowhq/timeflow/internal/export"
	"github.com/timeflowhq/timeflow/internal/timeutil"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries as CSV or PDF",
	Long: `Export the entry log for a date range. CSV goes to stdout unless
--out is set; PDF requires --out.

Examples:
  timeflow export                                  # this week, CSV, stdout
  timeflow export --from 2026-08-01 --to 2026-08-31 --format pdf --out august.pdf`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		fromStr, _ := cmd.Flags().GetString("from")
		toStr, _ := cmd.Flags().GetString("to")
		outPath, _ := cmd.Flags().GetString("out")

		now := time.Now()
		from, to := timeutil.WeekWindow(now)
		if fromStr != "" {
			parsed, err := time.ParseInLocation("2006-01-02", fromStr, now.Location())
			if err != nil {
				fmt.Printf("Error: invalid date %q (want YYYY-MM-DD)\n", fromStr)
				return
			}
			from = parsed
		}
		if toStr != "" {
			parsed, err := time.ParseInLocation("2006-01-02", toStr, now.Location())
			if err != nil {
				fmt.Printf("Error: invalid date %q (want YYYY-MM-DD)\n", toStr)
				return
			}
			// Inclusive end date.
			to = parsed.AddDate(0, 0, 1)
		}

		entries, err := svc.Entries(cfg.UserID, from, to)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		switch format {
		case "pdf":
			if outPath == "" {
				fmt.Println("Error: --out is required for PDF export")
				return
			}
			if err := export.WritePDF(outPath, entries, from, to); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("📄 Wrote %d entries to %s\n", len(entries), outPath)
		default: // csv
			w := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					fmt.Printf("Error: %v\n", err)
					return
				}
				defer f.Close()
				w = f
			}
			if err := export.WriteCSV(w, entries); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if outPath != "" {
				fmt.Printf("📄 Wrote %d entries to %s\n", len(entries), outPath)
			}
		}
	}),
}

func init() {
	exportCmd.Flags().String("format", "csv", "Output format: csv, pdf")
	exportCmd.Flags().String("from", "", "Range start (YYYY-MM-DD, default Monday of this week)")
	exportCmd.Flags().String("to", "", "Range end, inclusive (YYYY-MM-DD, default Sunday)")
	exportCmd.Flags().String("out", "", "Output file (stdout for CSV when omitted)")
}
