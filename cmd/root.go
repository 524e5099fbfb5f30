package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/xll-gen/tilerect/internal/config"
	"github.com/xll-gen/tilerect/pkg/log"
)

var (
	configPath string
	logLevel   string
	logFile    string

	// appConfig is loaded once per invocation before any subcommand runs.
	appConfig *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tilerect",
	Short: "Find the largest vertex-spanned rectangle inside a rectilinear polygon",
	Long: `tilerect reads a closed loop of x,y vertices describing a rectilinear polygon and
reports the largest rectangle spanned by two vertices, both ignoring the polygon and
restricted to rectangles that lie entirely inside it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Logging.Level = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.Logging.Path = logFile
		}
		if err := config.Validate(cfg); err != nil {
			return err
		}
		appConfig = cfg

		return log.Init(log.Options{
			Level:      cfg.Logging.Level,
			Path:       cfg.Logging.Path,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Close()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// init initializes the root command and its flags.
func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the tilerect.yaml configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this rotating file instead of stderr")
}
