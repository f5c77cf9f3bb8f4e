package main

import (
	"fmt"
	"os"

	_ "taskboard/docs"

	"github.com/spf13/cobra"
)

// @title           Taskboard API
// @version         1.0
// @description     Team kanban boards stored in Google Sheets.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "taskboard",
	Short: "Taskboard serves team kanban boards stored in Google Sheets",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
