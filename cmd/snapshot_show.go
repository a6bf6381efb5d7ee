package cmd

import (
	"os"

	"github.com/aelpxy/atlassnap/internal/config"
	"github.com/aelpxy/atlassnap/pkg/models"
	"github.com/spf13/cobra"
)

var showOutput string

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a cataloged snapshot",
	Args:  cobra.ExactArgs(1),
	Run:   runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	catalog, err := openCatalog()
	if err != nil {
		fail("failed to open catalog: %v", err)
	}

	entry, err := catalog.Get(args[0])
	if err != nil {
		fail("%v", err)
	}

	cfg := configManager.GetConfig()
	format := cfg.Output.Format
	if showOutput != "" {
		format = showOutput
	}

	if format == config.FormatTable {
		renderDetail(os.Stdout, entry.Key, &entry.Snapshot, cfg.Output.TimeFormat)
		return
	}

	snaps := []*models.CloudBackupSnapshot{&entry.Snapshot}
	if err := renderSnapshots(os.Stdout, format, cfg.Output.TimeFormat, []string{entry.Key}, snaps); err != nil {
		fail("%v", err)
	}
}

func init() {
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "", "output format: table, json or yaml")
	rootCmd.AddCommand(showCmd)
}
