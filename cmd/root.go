package cmd

import (
	"fmt"
	"os"

	"cheatvault/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cheatvault",
	Short: "Cheat-code subsystem for a game library",
	Long: `Cheatvault manages a game library's cheat codes: a registry of
cheat-code types with validation patterns, per-game cheat codes kept in
sync between the database and a flat cheats.txt file, and uploaded cheat
files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format for CLI-facing errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
