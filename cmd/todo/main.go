package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/todo/internal/cli"
	"github.com/example/todo/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "todo",
		Short:   "todo - a personal task tracker",
		Version: version.String(),
		Long: `todo is a command-line tool for tracking personal tasks.
Tasks persist through a configurable storage backend (JSON file or SQLite).`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.AddCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.ShowCmd())
	rootCmd.AddCommand(cli.CompleteCmd())
	rootCmd.AddCommand(cli.DeleteCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
