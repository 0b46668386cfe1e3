package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/todo/internal/config"
	"github.com/example/todo/internal/wire"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configure storage backend settings",
	}

	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configStorageCmd())

	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the config file contents and location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				fmt.Printf("No config file at %s (defaults in effect)\n", path)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			fmt.Printf("# %s\n", path)
			fmt.Print(string(data))
			return nil
		},
	}
}

func configStorageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Select the storage backend",
		Long: `Select the storage backend and set its parameters.

Examples:
  todo config storage --backend json --path ~/.todo/tasks.json
  todo config storage --backend sqlite --path ~/.todo/tasks.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, _ := cmd.Flags().GetString("backend")
			path, _ := cmd.Flags().GetString("path")

			registry := wire.NewRegistry()
			if !registry.Has(backend) {
				return fmt.Errorf("unsupported storage backend %q (available: %s)",
					backend, strings.Join(registry.Backends(), ", "))
			}

			cfgPath, err := config.DefaultPath()
			if err != nil {
				return err
			}
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			params := map[string]string{}
			if path != "" {
				params["path"] = path
			}
			cfg.SetBackend(backend, params)
			if cfg.Params(backend)["path"] == "" {
				return fmt.Errorf("%s backend requires --path on first configuration", backend)
			}

			// Construct the backend once so a bad path fails here, not on
			// the next task command.
			if _, err := registry.Open(backend, cfg.Params(backend)); err != nil {
				return fmt.Errorf("failed to open %s backend: %w", backend, err)
			}

			if err := config.Save(cfgPath, cfg); err != nil {
				return err
			}

			fmt.Printf("✓ Configured %s storage backend\n", backend)
			return nil
		},
	}

	cmd.Flags().String("backend", config.BackendJSON, "Storage backend name")
	cmd.Flags().String("path", "", "Storage file path for file-based backends")

	return cmd
}
