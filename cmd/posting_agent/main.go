// Package main provides the entry point for the posting optimizer.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/posting-optimizer/internal/config"
	"github.com/jonathan/posting-optimizer/internal/logger"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "posting_agent",
	Short: "Job posting SEO optimizer",
	Long: "posting_agent analyzes job postings for SEO quality, restructures their " +
		"content into clean sections, and pushes the optimized result back to the " +
		"content system.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.Setup(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// loadConfig merges the optional config file with env vars and defaults.
func loadConfig() (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Config{Port: 8080, LogLevel: logLevel})
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
