package cmd

import (
	"fmt"
	"os"

	"github.com/aelpxy/atlassnap/internal/backup"
	"github.com/aelpxy/atlassnap/internal/config"
	applog "github.com/aelpxy/atlassnap/internal/log"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("213"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true)
)

var (
	configPath string
	logLevel   string
	debugLog   bool

	configManager *config.ConfigManager
)

var rootCmd = &cobra.Command{
	Use:   "atlassnap",
	Short: "inspect and catalog managed database cloud backup snapshots",
	Long: titleStyle.Render("atlassnap") + "\n" + subtitleStyle.Render("cloud backup snapshots, offline") + "\n\n" +
		"Parses snapshot documents exported from the managed database API\n" +
		"and keeps a local catalog of them.",
	Version:           "0.1.0",
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func SetVersionInfo(v, bt, gc string) {
	version = v
	buildTime = bt
	gitCommit = gc
	rootCmd.Version = fmt.Sprintf("%s (built: %s, commit: %s)", version, buildTime, gitCommit)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("[error] Error: %v", err)))
		os.Exit(1)
	}
}

// setup loads the config file and configures logging before any command runs.
// Flags override the config file.
func setup(cmd *cobra.Command, args []string) error {
	cm, err := config.NewConfigManager(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	configManager = cm

	invalid := cm.Validate()
	if invalid != nil && !underConfigCmd(cmd) {
		return fmt.Errorf("invalid config %s: %w", cm.Path(), invalid)
	}

	level := cm.GetConfig().Log.Level
	if invalid != nil {
		level = ""
	}
	if logLevel != "" {
		level = logLevel
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose && logLevel == "" {
		level = logrus.DebugLevel.String()
	}

	if err := applog.Setup(logrus.StandardLogger(), os.Stderr, level, debugLog); err != nil {
		return err
	}
	if invalid != nil {
		logrus.WithField("path", cm.Path()).Warnf("config has invalid settings: %v", invalid)
	}
	return nil
}

// underConfigCmd reports whether cmd is the config command or one of its
// children. Those must run against a broken config file so it can be fixed.
func underConfigCmd(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}

func newParser(lenientFlag bool) *backup.Parser {
	opts := []backup.Option{backup.WithLogger(logrus.StandardLogger())}
	if lenientFlag || configManager.GetConfig().Parse.LenientEnums {
		opts = append(opts, backup.WithLenientEnums())
	}
	return backup.NewParser(opts...)
}

func openCatalog() (*backup.Catalog, error) {
	catalog, err := backup.NewCatalog(configManager.GetConfig().Catalog.Path)
	if err != nil {
		return nil, err
	}
	if err := catalog.Initialize(); err != nil {
		return nil, err
	}
	logrus.WithField("path", catalog.Path()).Debug("catalog loaded")
	return catalog, nil
}

func fail(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("[error] "+fmt.Sprintf(format, args...)))
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "debug logging with caller details")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.atlassnap/config.toml)")
}
