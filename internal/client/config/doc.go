// Package config loads runtime configuration for the SnapCryptor CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the encrypt/decrypt service
//	-i int      online status check interval (seconds)
//	-m string   download mode: dir, browser or none
//	-d string   download directory (dir mode)
//	-s string   history database file ("" disables history)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be strings like "3s" or integer
// nanoseconds. Keys absent from the file keep their previous value:
//
//	{
//	  "base_url": "http://127.0.0.1:5000",
//	  "online_check_interval": "3s",
//	  "download_mode": "dir",
//	  "download_dir": "download",
//	  "history_dsn": "history.db",
//	  "log_level": "info",
//	  "log_backend": "slog",
//	  "show_progress": true,
//	  "s3_bucket": "processed",
//	  "s3_region": "us-east-1",
//	  "s3_endpoint": "http://127.0.0.1:9000",
//	  "s3_access_key": "admin",
//	  "s3_secret_key": "secretpassword",
//	  "s3_prefix": "snapcryptor"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
