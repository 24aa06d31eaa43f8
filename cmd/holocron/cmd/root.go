// Package cmd contains all CLI commands for the holocron tool.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/f3rmion/holocron/internal/config"
	"github.com/f3rmion/holocron/internal/swapi"
	"github.com/f3rmion/holocron/internal/tui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "holocron",
	Short: "Browse Star Wars characters in the terminal",
	Long: `Holocron is a terminal browser for the Star Wars API (swapi.dev).

It loads the character catalog once, lets you search by name and filter by
homeworld, film and species, and shows one character card at a time. Press
enter on a card to open its details, including its homeworld.

Running 'holocron' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runBrowser,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/holocron)")
	flags.String("api-url", "", "catalog base URL (default https://swapi.dev/api)")
	flags.Duration("timeout", 0, "HTTP timeout per request (default 15s)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Bool("no-images", false, "disable the card pictures")

	viper.BindPFlag("api_url", flags.Lookup("api-url"))
	viper.BindPFlag("timeout", flags.Lookup("timeout"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
	viper.BindPFlag("no_images", flags.Lookup("no-images"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("HOLOCRON")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadConfig reads config.yaml and applies flag and environment overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(getConfigDir())
	if err != nil {
		return nil, err
	}

	if viper.IsSet("api_url") && viper.GetString("api_url") != "" {
		cfg.API.BaseURL = viper.GetString("api_url")
	}
	if viper.IsSet("timeout") && viper.GetDuration("timeout") > 0 {
		cfg.API.Timeout = viper.GetDuration("timeout")
	}
	if viper.IsSet("log_level") && viper.GetString("log_level") != "" {
		cfg.Logging.Level = viper.GetString("log_level")
	}
	if viper.GetBool("no_images") {
		cfg.Images.Enabled = false
	}

	return cfg, nil
}

func newClient(cfg *config.Config, logger zerolog.Logger) *swapi.Client {
	return swapi.NewClient(
		swapi.WithBaseURL(cfg.API.BaseURL),
		swapi.WithTimeout(cfg.API.Timeout),
		swapi.WithLogger(logger),
	)
}

// runBrowser launches the interactive browser.
func runBrowser(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file.
	logger, closer, err := config.OpenLogFile(cfg.Logging.Level, cfg.LogFile(getConfigDir()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = zerolog.Nop()
	} else {
		defer closer.Close()
	}

	return tui.Run(cmd.Context(), cfg, newClient(cfg, logger), logger)
}

// newConsoleLogger is the stderr logger used by the non-interactive commands.
func newConsoleLogger(cfg *config.Config) zerolog.Logger {
	return config.NewConsoleLogger(cfg.Logging.Level)
}
