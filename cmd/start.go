package cmd

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cheatvault/core/config"
	"cheatvault/core/database"
	"cheatvault/core/faults"
	"cheatvault/core/fsys"
	"cheatvault/core/library"
	"cheatvault/core/loader"
	"cheatvault/core/logger"
	"cheatvault/core/middleware/auth"
	"cheatvault/core/middleware/rayid"
	"cheatvault/core/storage"

	"cheatvault/feature/cheats"
	cheatmodels "cheatvault/feature/cheats/models"
	"cheatvault/feature/cheats/registry"
	"cheatvault/feature/integrity"
	"cheatvault/feature/roms"
	rommodels "cheatvault/feature/roms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "cheatvault/docs/swagger"
)

// @title Cheatvault API
// @version 1.0
// @description API for managing a game library's cheat codes, cheat types and cheat files.
// @host localhost:8080
// @BasePath /api

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the cheatvault server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		if err := db.AutoMigrate(&rommodels.Rom{}, &cheatmodels.CheatCode{}, &cheatmodels.CheatFile{}); err != nil {
			logg.Fatal("Database migration failed", zap.Error(err))
		}

		// 4. Load the cheat-type registry
		fs := fsys.NewLocal()
		reg := registry.New(cfg.Library.CheatTypesPath, fs, logg)
		if err := reg.Load(); err != nil {
			var cfgErr *faults.ConfigError
			if errors.As(err, &cfgErr) {
				// Already logged; the registry runs empty until repaired.
			} else {
				logg.Fatal("Failed to load cheat type registry", zap.Error(err))
			}
		}

		// 5. Optional object-storage mirror for uploaded cheat files
		var mirror storage.Client
		if cfg.Storage.Enabled {
			mirror, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			if err := storage.EnsureBucket(cmd.Context(), mirror, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
				logg.Warn("Cheat file mirror bucket unavailable", zap.Error(err))
			}
		}

		// 6. Wire services
		paths := library.NewPaths(cfg.Library.ResourcesPath)
		romSvc := roms.NewService(db, logg)
		cheatSvc := cheats.NewService(cheats.NewGormStore(db), romSvc, fs, paths, reg, logg, mirror, cfg.Storage.Bucket)
		romSvc.SetPurger(cheatSvc)
		integritySvc := integrity.NewService(db, romSvc, fs, paths, reg, logg)

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// RayID first so every request is traceable
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger documentation (public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Protect the API
		if !cfg.Server.AuthEnabled() {
			logg.Warn("No API key configured, authentication is disabled")
		}
		api := app.Group("/api", auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		mgr := loader.NewManager()
		mgr.Register(roms.NewFeature(romSvc, logg))
		mgr.Register(cheats.NewFeature(cheatSvc, logg))
		mgr.Register(integrity.NewFeature(integritySvc, logg))

		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
