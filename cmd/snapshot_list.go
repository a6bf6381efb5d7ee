package cmd

import (
	"fmt"
	"os"

	"github.com/aelpxy/atlassnap/internal/backup"
	"github.com/aelpxy/atlassnap/internal/config"
	"github.com/aelpxy/atlassnap/internal/utils"
	"github.com/aelpxy/atlassnap/pkg/models"
	"github.com/spf13/cobra"
)

var (
	listReplicaSet string
	listStatus     string
	listType       string
	listOutput     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cataloged snapshots",
	Long:  "List snapshots in the local catalog, newest first",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	catalog, err := openCatalog()
	if err != nil {
		fail("failed to open catalog: %v", err)
	}

	filter := backup.Filter{ReplicaSetName: listReplicaSet}
	if listStatus != "" {
		filter.Status = models.ParseSnapshotStatus(listStatus)
	}
	if listType != "" {
		filter.Type = models.ParseClusterType(listType)
	}

	entries := catalog.List(filter)
	if len(entries) == 0 {
		fmt.Println(dimStyle.Render("no snapshots found"))
		fmt.Println()
		fmt.Println(dimStyle.Render("import some with: atlassnap import <file>"))
		return
	}

	cfg := configManager.GetConfig()
	format := cfg.Output.Format
	if listOutput != "" {
		format = listOutput
	}

	keys := make([]string, len(entries))
	snaps := make([]*models.CloudBackupSnapshot, len(entries))
	var totalSize int64
	for i := range entries {
		keys[i] = entries[i].Key
		snaps[i] = &entries[i].Snapshot
		if snaps[i].StorageSizeBytes != nil {
			totalSize += *snaps[i].StorageSizeBytes
		}
	}

	if format == "" || format == config.FormatTable {
		fmt.Println(titleStyle.Render(fmt.Sprintf("==> snapshots (%d)", len(entries))))
		fmt.Println()
	}

	if err := renderSnapshots(os.Stdout, format, cfg.Output.TimeFormat, keys, snaps); err != nil {
		fail("%v", err)
	}

	if format == "" || format == config.FormatTable {
		fmt.Println()
		fmt.Println(dimStyle.Render(fmt.Sprintf("  total: %s", utils.FormatBytes(totalSize))))
		fmt.Println()
		fmt.Println(dimStyle.Render("  commands:"))
		fmt.Printf("    %s\n", dimStyle.Render("atlassnap show <id>        # snapshot details"))
		fmt.Printf("    %s\n", dimStyle.Render("atlassnap delete <id>      # remove from catalog"))
		fmt.Println()
	}
}

func init() {
	listCmd.Flags().StringVar(&listReplicaSet, "replica-set", "", "only snapshots of this replica set")
	listCmd.Flags().StringVar(&listStatus, "status", "", "only snapshots with this status")
	listCmd.Flags().StringVar(&listType, "type", "", "only snapshots of this cluster type")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "", "output format: table, json or yaml")
	rootCmd.AddCommand(listCmd)
}
