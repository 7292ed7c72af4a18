// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperstat CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paperstat CLI.
var rootCmd = &cobra.Command{
	Use:   "paperstat",
	Short: "Readability statistics for arXiv paper PDFs",
	Long: `paperstat turns a directory of arXiv PDFs into plain-text files and an
aggregate table of readability statistics. Equations are isolated behind
placeholders so math markup never pollutes sentence or word counts, and each
paper is enriched with arXiv catalog metadata when available.

Each stage is a subcommand: process runs the batch pipeline, lookup queries
the arXiv catalog for a single ID, and store manages a searchable SQLite
database of processed papers.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env if present for PAPERSTAT_* settings.
		_ = godotenv.Load()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperstat.yaml or ~/.config/paperstat/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperstat")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperstat"))
		}
	}

	viper.SetEnvPrefix("PAPERSTAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a string setting: an explicitly set flag wins, then
// the viper key (config file or PAPERSTAT_* environment), then the fallback.
func stringSetting(cmd *cobra.Command, flag, key, fallback string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return fallback
}

// durationSetting resolves a duration setting with the same precedence as
// stringSetting.
func durationSetting(cmd *cobra.Command, flag, key string, fallback time.Duration) time.Duration {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetDuration(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
