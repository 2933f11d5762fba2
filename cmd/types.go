package cmd

import (
	"errors"
	"fmt"

	"cheatvault/core/config"
	"cheatvault/core/faults"
	"cheatvault/core/fsys"
	"cheatvault/core/logger"
	"cheatvault/feature/cheats/registry"

	"github.com/spf13/cobra"
)

// typesCmd represents the types command
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Manage the cheat type registry",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// typesListCmd represents the types list command
var typesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered cheat types",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		types := reg.All()
		if len(types) == 0 {
			fmt.Println("No cheat types registered. Run 'cheatvault types seed' to install the defaults.")
			return nil
		}

		fmt.Printf("%-16s %-16s %s\n", "ID", "NAME", "PATTERN")
		for _, t := range types {
			fmt.Printf("%-16s %-16s %s\n", t.ID, t.Name, t.Pattern)
		}
		fmt.Printf("\nTotal: %d\n", len(types))
		return nil
	},
}

// typesSeedCmd represents the types seed command
var typesSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Install the built-in cheat types",
	Long:  `Registers the built-in cheat types without overwriting existing entries.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		before := len(reg.ListIDs())
		if err := reg.SeedDefaults(); err != nil {
			return fmt.Errorf("failed to seed cheat types: %w", err)
		}
		fmt.Printf("Seeded %d new cheat type(s), %d total\n", len(reg.ListIDs())-before, len(reg.ListIDs()))
		return nil
	},
}

// loadRegistry builds a registry from the local configuration. A corrupt
// registry document is tolerated so that 'types seed' can repair it.
func loadRegistry() (*registry.Registry, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	reg := registry.New(cfg.Library.CheatTypesPath, fsys.NewLocal(), logg)
	if err := reg.Load(); err != nil {
		var cfgErr *faults.ConfigError
		if !errors.As(err, &cfgErr) {
			return nil, fmt.Errorf("failed to load cheat type registry: %w", err)
		}
		fmt.Printf("Warning: registry document at %s is unreadable, starting empty\n", cfg.Library.CheatTypesPath)
	}
	return reg, nil
}

func init() {
	typesCmd.AddCommand(typesListCmd)
	typesCmd.AddCommand(typesSeedCmd)
	RootCmd.AddCommand(typesCmd)
}
