package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/claimshift/internal/model"
)

const version = "claimshift v0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "claimshift",
	Short: "claimshift - merge and split moderated land claims",
	Long: `claimshift lets a moderator merge several land claims into one, or split
one claim into several, as a single business transaction.

Claims are collected into a source list and a result list. Every candidate
must exist, be moderated and carry no active restriction before it is added.
The merge or split is committed once; after that the session is read-only.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.claimshift/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().String("db", "", "claim store path (overrides store.path)")
	rootCmd.PersistentFlags().String("locale", "", "message language: en, fr, ru (overrides locale)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("store.path", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("locale", rootCmd.PersistentFlags().Lookup("locale"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	setDefaults(model.DefaultConfig())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(model.DefaultHomeDir())
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match CLAIMSHIFT_* (store.path -> CLAIMSHIFT_STORE_PATH)
	viper.SetEnvPrefix("CLAIMSHIFT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setDefaults registers every config key so env vars and Unmarshal see them
func setDefaults(cfg model.Config) {
	viper.SetDefault("store.path", cfg.Store.Path)
	viper.SetDefault("session.ttl", cfg.Session.TTL)
	viper.SetDefault("session.cleanup_interval", cfg.Session.CleanupInterval)
	viper.SetDefault("auth.roles", cfg.Auth.Roles)
	viper.SetDefault("locale", cfg.Locale)
	viper.SetDefault("batch.workers", cfg.Batch.Workers)
	viper.SetDefault("batch.rate_per_second", cfg.Batch.RatePerSecond)
	viper.SetDefault("batch.burst", cfg.Batch.Burst)
	viper.SetDefault("log.level", cfg.Log.Level)
	viper.SetDefault("log.format", cfg.Log.Format)
}

// loadConfig merges defaults, config file, env and flags
func loadConfig() (model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if viper.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = filepath.Join(model.DefaultHomeDir(), "claims.db")
	}
	return cfg, nil
}
