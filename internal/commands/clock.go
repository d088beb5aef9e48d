package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeclock"
)

// submit records a quick action at the current moment and prints the
// outcome.
func submit(typ models.EntryType, description string) {
	entry, err := svc.SubmitAction(cfg.UserID, typ, time.Time{}, description)
	if err != nil {
		if timeclock.IsRejection(err) {
			fmt.Printf("❌ Not recorded: %v\n", err)
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		return
	}
	fmt.Printf("✅ %s at %s\n", entry.EntryType.Label(), entry.EffectiveTime().Format("15:04:05"))

	status, err := svc.Status(cfg.UserID)
	if err == nil {
		fmt.Printf("Now %s\n", modeText(status.Mode))
	}
}

// modeText is the status line wording for each mode.
func modeText(mode models.Mode) string {
	switch mode {
	case models.ModeWorking:
		return "working"
	case models.ModeBreak:
		return "on a break"
	case models.ModeOthers:
		return "out on a permission"
	default:
		return "clocked out"
	}
}

var inCmd = &cobra.Command{
	Use:   "in",
	Short: "Clock in to work",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		submit(models.ClockIn, "")
	}),
}

var outCmd = &cobra.Command{
	Use:   "out",
	Short: "Clock out of work",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		submit(models.ClockOut, "")
	}),
}

var breakCmd = &cobra.Command{
	Use:   "break",
	Short: "Start or end a break",
}

var breakStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a break",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		submit(models.BreakStart, "")
	}),
}

var breakEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the current break",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		submit(models.BreakEnd, "")
	}),
}

var othersCmd = &cobra.Command{
	Use:   "others",
	Short: "Record a permission (medical visit, errand, ...)",
}

var othersOutCmd = &cobra.Command{
	Use:   "out <reason>",
	Short: "Leave on a permission",
	Long: `Leave work on a logged permission. A reason is required.

Example:
  timeflow others out "Medical appointment"`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		submit(models.OthersOut, strings.Join(args, " "))
	}),
}

var othersInCmd = &cobra.Command{
	Use:   "in <reason>",
	Short: "Return from a permission",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		submit(models.OthersIn, strings.Join(args, " "))
	}),
}

func init() {
	breakCmd.AddCommand(breakStartCmd)
	breakCmd.AddCommand(breakEndCmd)
	othersCmd.AddCommand(othersOutCmd)
	othersCmd.AddCommand(othersInCmd)
}
