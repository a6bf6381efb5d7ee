package cmd

import (
	"fmt"
	"strconv"

	"github.com/aelpxy/atlassnap/internal/backup"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "manage atlassnap configuration",
	Long:  "manage global atlassnap configuration settings",
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "change a setting",
	Long: "change a setting by its dotted key: log.level, catalog.path, output.format,\n" +
		"output.time_format or parse.lenient_enums",
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := configManager.Set(args[0], args[1]); err != nil {
			fail("%v", err)
		}
		if err := configManager.Save(); err != nil {
			fail("failed to save config: %v", err)
		}
		fmt.Println(successStyle.Render("  [done]") + " " + args[0] + " = " + infoStyle.Render(args[1]))
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "display current configuration",
	Long:  "show current atlassnap configuration settings",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := configManager.GetConfig()

		catalogPath := cfg.Catalog.Path
		if catalogPath == "" {
			if p, err := backup.DefaultCatalogPath(); err == nil {
				catalogPath = p + " " + dimStyle.Render("(default)")
			}
		}

		fmt.Println()
		fmt.Println(titleStyle.Render("==> atlassnap configuration"))
		fmt.Println("  " + dimStyle.Render(configManager.Path()))
		fmt.Println()

		fmt.Println("  " + labelStyle.Render("log:"))
		fmt.Println("    level: " + infoStyle.Render(cfg.Log.Level))
		fmt.Println("  " + labelStyle.Render("catalog:"))
		fmt.Println("    path: " + infoStyle.Render(catalogPath))
		fmt.Println("  " + labelStyle.Render("output:"))
		fmt.Println("    format: " + infoStyle.Render(cfg.Output.Format))
		fmt.Println("    time format: " + infoStyle.Render(cfg.Output.TimeFormat))
		fmt.Println("  " + labelStyle.Render("parse:"))
		fmt.Println("    lenient enums: " + infoStyle.Render(strconv.FormatBool(cfg.Parse.LenientEnums)))
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
}
