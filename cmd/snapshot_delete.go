package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	deleteForce bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Remove a snapshot from the catalog",
	Long:  "Remove a snapshot from the local catalog. The snapshot itself is not touched.",
	Args:  cobra.ExactArgs(1),
	Run:   runDelete,
}

func runDelete(cmd *cobra.Command, args []string) {
	key := args[0]

	catalog, err := openCatalog()
	if err != nil {
		fail("failed to open catalog: %v", err)
	}

	entry, err := catalog.Get(key)
	if err != nil {
		fail("%v", err)
	}

	if !deleteForce {
		layout := configManager.GetConfig().Output.TimeFormat
		snap := &entry.Snapshot

		fmt.Println(titleStyle.Render("==> delete snapshot"))
		fmt.Println()
		fmt.Println(labelStyle.Render("  snapshot details:"))
		fmt.Printf("    %s %s\n", dimStyle.Render("id:"), valueStyle.Render(entry.Key))
		fmt.Printf("    %s %s\n", dimStyle.Render("cluster:"), valueStyle.Render(snapshotName(snap)))
		fmt.Printf("    %s %s\n", dimStyle.Render("status:"), styledStatus(snap.Status))
		fmt.Printf("    %s %s\n", dimStyle.Render("created:"), valueStyle.Render(formatTime(snap.CreatedAt, layout)))
		fmt.Printf("    %s %s\n", dimStyle.Render("size:"), valueStyle.Render(formatSize(snap.StorageSizeBytes)))
		fmt.Println()
		fmt.Print(labelStyle.Render("type 'delete' to confirm: "))

		var confirmation string
		fmt.Scanln(&confirmation)

		if strings.TrimSpace(strings.ToLower(confirmation)) != "delete" {
			fmt.Println(labelStyle.Render("\ndeletion cancelled."))
			return
		}
		fmt.Println()
	}

	fmt.Println(progressStyle.Render("  --> removing snapshot..."))

	if err := catalog.Delete(key); err != nil {
		fail("failed to delete snapshot: %v", err)
	}

	fmt.Println(successStyle.Render("  [done] snapshot removed from catalog"))
	fmt.Println()
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "skip confirmation")
	rootCmd.AddCommand(deleteCmd)
}
