// Package main implements shipctl, the command-line client for the ship
// tracker API. Subcommands map one-to-one onto the HTTP endpoints.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var baseURL string

var rootCmd = &cobra.Command{
	Use:           "shipctl",
	Short:         "Ship Management CLI",
	Long:          "Command-line interface for the ship tracker HTTP API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:5000",
		"Base URL of the ship API")

	rootCmd.AddCommand(
		listCmd,
		getCmd,
		createCmd,
		updateCmd,
		deleteCmd,
		moveCmd,
		destinationCmd,
		speedCmd,
		healthCmd,
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("\nOperation cancelled.")
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
