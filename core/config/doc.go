// Package config provides configuration management for the sync service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags next to the
// settings they describe.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details for the feed table
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Market: partner API token, campaign and warehouse topology
//   - Inventory: feed source selection (database table or S3 object)
//   - Sync: batch sizes, schedule interval, cache and archival tuning
//   - Notify: Telegram notifier credentials
//
// # Validation
//
// Validate enforces the declared constraints (required token, warehouse
// paired with its campaign, batch size ranges) and is called by commands
// before any external system is touched.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
