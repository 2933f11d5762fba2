// Package config loads the application configuration.
//
// Configuration is read from environment variables (optionally seeded by a
// .env file) into nested structs. Defaults come from `default:` struct tags,
// bound into Viper via reflection so AutomaticEnv can override any key
// (e.g. DATABASE_DRIVER, LIBRARY_RESOURCES_PATH).
package config
