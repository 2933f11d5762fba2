// Package database handles database connections and schema inspection.
//
// It wraps GORM connection setup for the two supported drivers: MySQL for
// production and the pure-Go sqlite driver for tests and embedded runs.
//
// # Schema Inspection
//
// GetTableColumns and HasColumns back the integrity feature's schema check,
// verifying that the cheat tables match the expected layout without a full
// migration framework.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
