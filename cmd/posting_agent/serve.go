package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/posting-optimizer/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes posting analysis and optimization endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	srv, err := server.New(server.Config{
		Port:            cfg.Port,
		DatabaseURL:     cfg.DatabaseURL,
		ContentBaseURL:  cfg.ContentBaseURL,
		ContentPostType: cfg.ContentPostType,
		ContentUser:     cfg.ContentUser,
		ContentPassword: cfg.ContentPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
