package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/aelpxy/atlassnap/internal/backup"
	"github.com/aelpxy/atlassnap/internal/utils"
	"github.com/aelpxy/atlassnap/pkg/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	inspectOutput  string
	inspectLenient bool
	inspectYAML    bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Parse and display snapshot documents",
	Long:  "Parse a snapshot document, an array of them, or a list response from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	Run:   runInspect,
}

func runInspect(cmd *cobra.Command, args []string) {
	var path string
	if len(args) > 0 {
		path = args[0]
	}

	snaps, _, err := readSnapshots(path, os.Stdin, newParser(inspectLenient), inspectYAML)
	if err != nil {
		fail("%v", err)
	}

	cfg := configManager.GetConfig()
	format := cfg.Output.Format
	if inspectOutput != "" {
		format = inspectOutput
	}

	keys := make([]string, len(snaps))
	for i, s := range snaps {
		keys[i] = deref(s.ID)
	}

	if err := renderSnapshots(os.Stdout, format, cfg.Output.TimeFormat, keys, snaps); err != nil {
		fail("%v", err)
	}
}

// readSnapshots reads path (stdin when empty) and parses every document in it.
func readSnapshots(path string, stdin io.Reader, p *backup.Parser, yamlInput bool) ([]*models.CloudBackupSnapshot, string, error) {
	data, source, err := utils.ReadInput(path, stdin)
	if err != nil {
		return nil, "", err
	}

	snaps, err := backup.ParsePayload(p, data, yamlInput)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", source, err)
	}

	logrus.WithFields(logrus.Fields{"source": source, "count": len(snaps)}).Debug("parsed snapshots")
	return snaps, source, nil
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectOutput, "output", "o", "", "output format: table, json or yaml")
	inspectCmd.Flags().BoolVar(&inspectLenient, "lenient", false, "keep unrecognized enum values instead of failing")
	inspectCmd.Flags().BoolVar(&inspectYAML, "yaml", false, "input is yaml")
	rootCmd.AddCommand(inspectCmd)
}
