package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/patternbook/internal/demo"
	"github.com/mesh-intelligence/patternbook/internal/paths"
	"github.com/mesh-intelligence/patternbook/internal/ui"
)

var (
	// flagConfigDir is set by the --config-dir flag.
	flagConfigDir string

	// flagNoColor disables styled output regardless of config.
	flagNoColor bool

	// flagVerbose enables debug logging to stderr.
	flagVerbose bool

	// cfg is the loaded configuration, initialized on startup.
	cfg *viper.Viper

	// registry holds every runnable demo.
	registry = demo.Default()

	// logger is the process logger, initialized on startup.
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "patternbook",
	Short: "Patternbook is a runnable catalog of classic design patterns",
	Long: `Patternbook is a teaching catalog of classic object design patterns.
Each pattern family ships as a small library package together with narrated
demos that exercise it. Use "list" to browse the catalog and "run" to watch
a demo walk through its scenario.`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable styled output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig resolves the config directory, loads configuration, and builds
// the process logger.
func initConfig(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err = loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err = newLogger(flagVerbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	logger.Debug("configuration loaded",
		zap.String("config_dir", configDir),
		zap.String("color", cfg.GetString(cfgKeyColor)),
		zap.Int("width", cfg.GetInt(cfgKeyWidth)))
	return nil
}

// newLogger builds the process logger. Verbose mode logs debug output to
// stderr; otherwise logging is disabled.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	logCfg := zap.NewDevelopmentConfig()
	logCfg.OutputPaths = []string{"stderr"}
	return logCfg.Build()
}

// styles resolves the effective style set from flags and config.
func styles() ui.Styles {
	return ui.New(colorEnabled(), cfg.GetInt(cfgKeyWidth))
}

// colorEnabled resolves the color mode: the --no-color flag wins, then the
// config key, with "auto" honoring the NO_COLOR convention.
func colorEnabled() bool {
	if flagNoColor {
		return false
	}
	switch cfg.GetString(cfgKeyColor) {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		return os.Getenv("NO_COLOR") == ""
	}
}

// newRunner builds the demo runner writing to the command's stdout.
func newRunner(cmd *cobra.Command) *demo.Runner {
	return demo.NewRunner(cmd.OutOrStdout(), styles(), logger)
}
