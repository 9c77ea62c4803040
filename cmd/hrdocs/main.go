// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the hrdocs CLI, a terminal client for
// the TechVista HR document portal. Each portal operation is a subcommand;
// browse runs the interactive session.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/techvista/hrdocs/internal/portal"
	"github.com/techvista/hrdocs/internal/secrets"
	"github.com/techvista/hrdocs/pkg/types"
)

const defaultUserAgent = "hrdocs/0.1"

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the hrdocs CLI.
var rootCmd = &cobra.Command{
	Use:   "hrdocs",
	Short: "Terminal client for the TechVista HR document portal",
	Long: `hrdocs searches, previews, favorites, and downloads policy, form, and
template documents from the HR document portal API. The portal owns all
data; hrdocs holds nothing locally beyond the shareable link it prints.

One-shot subcommands cover each operation (search, recents, suggested,
bookmarks, favorite, resolve); browse runs the full interactive session
with the login gate, filter panel, and bookmarks view.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./hrdocs.yaml or ~/.config/hrdocs/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log portal calls to stderr")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("hrdocs")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "hrdocs"))
		}
	}

	viper.SetEnvPrefix("HRDOCS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the app configuration from viper with documented
// defaults. The portal base URL defaults to "" (same-origin: a local
// port-forward or the portal's reverse proxy).
func loadConfig() types.AppConfig {
	viper.SetDefault("portal.user_agent", defaultUserAgent)
	viper.SetDefault("portal.max_retries", 3)
	viper.SetDefault("browse.page_size", 20)

	return types.AppConfig{
		Portal: types.PortalConfig{
			HTTPConfig: types.HTTPConfig{
				// Zero keeps the transport default; the portal
				// specifies no timeout of its own.
				Timeout:   viper.GetDuration("portal.timeout"),
				UserAgent: viper.GetString("portal.user_agent"),
			},
			BaseURL:    viper.GetString("portal.base_url"),
			LinkBase:   viper.GetString("portal.link_base"),
			MaxRetries: viper.GetInt("portal.max_retries"),
		},
		Browse: types.BrowseConfig{
			PageSize:    viper.GetInt("browse.page_size"),
			MetricsAddr: viper.GetString("browse.metrics_addr"),
		},
	}
}

// newLogger builds the CLI logger: silent by default, console output with
// --verbose, JSON with HRDOCS_LOG=json.
func newLogger(cmd *cobra.Command) *zap.Logger {
	if viper.GetString("log") == "json" {
		l, err := zap.NewProduction()
		if err == nil {
			return l
		}
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			return l
		}
	}
	return zap.NewNop()
}

// newPortalClient wires the portal client with logging, optional metrics,
// and the API token secret when present.
func newPortalClient(cfg types.PortalConfig, log *zap.Logger, reg prometheus.Registerer) (*portal.Client, error) {
	obs, err := portal.NewObserver(log, reg)
	if err != nil {
		return nil, err
	}

	opts := []portal.Option{portal.WithObserver(obs)}
	if token := loadedSecrets[secrets.KeyAPIToken]; token != "" {
		opts = append(opts, portal.WithToken(token))
	}
	return portal.New(cfg, opts...), nil
}

// identity resolves the acting user: the --user flag when given, otherwise
// the portal-email secret. Empty means unauthenticated.
func identity(cmd *cobra.Command) string {
	if user, _ := cmd.Flags().GetString("user"); user != "" {
		return user
	}
	return loadedSecrets[secrets.KeyEmail]
}

// linkBase returns the page URL shareable links are built on.
func linkBase(cfg types.PortalConfig) string {
	if cfg.LinkBase != "" {
		return cfg.LinkBase
	}
	return cfg.BaseURL
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
