package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timeflowhq/timeflow/internal/timeclock"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete the most recent entry",
	Long: `Delete an entry. Only the most recent entry in your history can be
deleted; when it closes a break or a permission, the matching opening
entry is removed with it.`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		cascadedID, err := svc.DeleteEntry(args[0])
		if err != nil {
			if timeclock.IsRejection(err) {
				fmt.Printf("❌ Not deleted: %v\n", err)
			} else {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}
		fmt.Println("🗑️  Entry deleted.")
		if cascadedID != "" {
			fmt.Printf("Also removed the paired opening entry %s.\n", cascadedID)
		}
	}),
}
