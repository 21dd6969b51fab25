package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arqui-vision/trackfusion/internal/config"
)

var (
	configLoader *config.Loader
	globalConfig *config.Config
	cfgFile      string
)

var rootCmd = &cobra.Command{
	Use:   "trackfusion",
	Short: "Fuse pairwise feature matches into tracks",
	Long: `trackfusion turns pairwise feature-match correspondences into tracks: it
interns every observed (image, feature) pair, unites matched pairs
transitively, drops classes that revisit the same image or fall short of a
minimum length, optionally prunes tracks with too little pairwise support,
and exports the survivors to text, SQLite, or S3.

Examples:
  trackfusion build matches.json --min-track-length 3
  trackfusion export --run-id 3e5a1e2e-...
  trackfusion serve-metrics --listen-addr :9090`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. It is called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default search: ., $HOME, $HOME/.config/trackfusion, /etc/trackfusion)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("store-path", "trackfusion.db", "path to the SQLite track store")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("store.path", rootCmd.PersistentFlags().Lookup("store-path"))

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if globalConfig == nil {
			initConfig()
		}

		level := slog.LevelInfo
		if globalConfig.Verbose {
			level = slog.LevelDebug
		} else {
			switch globalConfig.LogLevel {
			case "debug":
				level = slog.LevelDebug
			case "warn":
				level = slog.LevelWarn
			case "error":
				level = slog.LevelError
			}
		}

		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
	}

	rootCmd.AddCommand(buildCmd, exportCmd, serveMetricsCmd)
}

func initConfig() {
	configLoader = config.NewLoader()

	var err error
	if cfgFile != "" {
		globalConfig, err = configLoader.LoadWithFile(cfgFile)
	} else {
		globalConfig, err = configLoader.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
}

// GetConfig returns the resolved global configuration, loading it on first use.
func GetConfig() *config.Config {
	if globalConfig == nil {
		initConfig()
	}
	return globalConfig
}
