package cmd

import (
	"errors"
	"fmt"
	"time"

	"cheatvault/core/config"
	"cheatvault/core/database"
	"cheatvault/core/faults"
	"cheatvault/core/fsys"
	"cheatvault/core/library"
	"cheatvault/core/logger"
	"cheatvault/feature/cheats"
	"cheatvault/feature/cheats/registry"
	"cheatvault/feature/integrity"
	"cheatvault/feature/roms"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncRomID int
var syncAll bool

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile cheat files with the database",
	Long:  `Imports codes found only in a rom's cheat file into the database and rewrites the file from the database rows, resolving conflicts in the database's favor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !syncAll && syncRomID == 0 {
			return fmt.Errorf("either --rom or --all is required")
		}

		startTime := time.Now()
		rt, err := connectServices()
		if err != nil {
			return err
		}

		var targets []int
		if syncAll {
			all, err := rt.roms.List()
			if err != nil {
				return fmt.Errorf("failed to list roms: %w", err)
			}
			for _, r := range all {
				targets = append(targets, r.ID)
			}
		} else {
			targets = []int{syncRomID}
		}

		engine := rt.cheats.Engine()
		var failed int
		for _, id := range targets {
			if err := engine.Sync(id); err != nil {
				failed++
				rt.logger.Error("Sync failed", zap.Int("rom_id", id), zap.Error(err))
			}
		}

		fmt.Println("\n=== Cheat Sync Metrics ===")
		fmt.Printf("Roms Synced: %d\n", len(targets)-failed)
		fmt.Printf("Roms Failed: %d\n", failed)
		fmt.Printf("Conflicts Resolved: %d\n", engine.ConflictsResolved())
		fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())

		if failed > 0 {
			return fmt.Errorf("%d rom(s) failed to sync", failed)
		}
		return nil
	},
}

// runtime bundles the service graph for offline commands.
type runtime struct {
	logger    *zap.Logger
	roms      *roms.Service
	cheats    *cheats.Service
	integrity *integrity.Service
}

func connectServices() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}

	fs := fsys.NewLocal()
	reg := registry.New(cfg.Library.CheatTypesPath, fs, logg)
	if err := reg.Load(); err != nil {
		var cfgErr *faults.ConfigError
		if !errors.As(err, &cfgErr) {
			return nil, fmt.Errorf("failed to load cheat type registry: %w", err)
		}
	}

	paths := library.NewPaths(cfg.Library.ResourcesPath)
	romSvc := roms.NewService(db, logg)
	cheatSvc := cheats.NewService(cheats.NewGormStore(db), romSvc, fs, paths, reg, logg, nil, "")
	romSvc.SetPurger(cheatSvc)

	return &runtime{
		logger:    logg,
		roms:      romSvc,
		cheats:    cheatSvc,
		integrity: integrity.NewService(db, romSvc, fs, paths, reg, logg),
	}, nil
}

func init() {
	syncCmd.Flags().IntVar(&syncRomID, "rom", 0, "sync a single rom by id")
	syncCmd.Flags().BoolVar(&syncAll, "all", false, "sync every rom in the library")
	RootCmd.AddCommand(syncCmd)
}
