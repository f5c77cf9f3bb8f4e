package main

import (
	"log"

	"taskboard/internal/config"
	"taskboard/internal/server"

	"github.com/spf13/cobra"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if port != "" {
			cfg.ServerPort = port
		}

		s, err := server.Init(cfg)
		if err != nil {
			log.Printf("❌ Server initialization failed: %v", err)
			return err
		}

		s.Run()
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&port, "port", "", "listen port (overrides SERVER_PORT)")
}
