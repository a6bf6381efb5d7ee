package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Drop expired snapshots from the catalog",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		catalog, err := openCatalog()
		if err != nil {
			fail("failed to open catalog: %v", err)
		}

		removed, err := catalog.Prune(time.Now())
		if err != nil {
			fail("failed to prune catalog: %v", err)
		}

		if removed == 0 {
			fmt.Println(dimStyle.Render("no expired snapshots"))
			return
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("  [done] removed %d expired snapshot(s)", removed)))
	},
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}
