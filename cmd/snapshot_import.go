package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	importLenient bool
	importYAML    bool
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Add snapshots to the local catalog",
	Long:  "Parse snapshot documents from a file or stdin and store them in the local catalog",
	Args:  cobra.MaximumNArgs(1),
	Run:   runImport,
}

func runImport(cmd *cobra.Command, args []string) {
	var path string
	if len(args) > 0 {
		path = args[0]
	}

	snaps, source, err := readSnapshots(path, os.Stdin, newParser(importLenient), importYAML)
	if err != nil {
		fail("%v", err)
	}

	catalog, err := openCatalog()
	if err != nil {
		fail("failed to open catalog: %v", err)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("==> importing %d snapshot(s) from %s", len(snaps), source)))
	fmt.Println()

	for _, s := range snaps {
		entry, err := catalog.Add(*s, source)
		if err != nil {
			fail("failed to add snapshot: %v", err)
		}
		fmt.Printf("  %s %s %s\n", successStyle.Render("[done]"), valueStyle.Render(entry.Key), dimStyle.Render(s.String()))
	}

	fmt.Println()
	fmt.Println(dimStyle.Render(fmt.Sprintf("  catalog: %s", catalog.Path())))
	fmt.Println()
}

func init() {
	importCmd.Flags().BoolVar(&importLenient, "lenient", false, "keep unrecognized enum values instead of failing")
	importCmd.Flags().BoolVar(&importYAML, "yaml", false, "input is yaml")
	rootCmd.AddCommand(importCmd)
}
