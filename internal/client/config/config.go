package config

import (
	"fmt"
	"time"

	"github.com/Kerimcanak/SnapCryptor/internal/common"
)

// Download modes for processed files.
const (
	DownloadModeDir     = "dir"
	DownloadModeBrowser = "browser"
	DownloadModeNone    = "none"
)

// Config holds runtime settings for the SnapCryptor CLI.
//
// Fields:
//   - BaseURL: base URL of the remote encrypt/decrypt service; operation
//     endpoints and download links are resolved against it.
//   - OnlineCheckInterval: how often the client probes service reachability.
//   - DownloadMode / DownloadDir: how processed files are fetched.
//   - HistoryDSN: SQLite file for the local operation history; empty disables it.
//   - LogLevel / LogBackend: logging setup (see package logging).
//   - ShowProgress: render an upload progress bar.
//   - S3: optional mirror of processed files into an S3-compatible bucket.
type Config struct {
	BaseURL             string
	OnlineCheckInterval time.Duration
	DownloadMode        string
	DownloadDir         string
	HistoryDSN          string
	LogLevel            string
	LogBackend          string
	ShowProgress        bool
	S3                  S3Config
}

// S3Config configures the S3 mirror. The mirror is enabled when Bucket is set.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Prefix    string
}

// Enabled reports whether processed files should be mirrored to S3.
func (s S3Config) Enabled() bool {
	return s.Bucket != ""
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:5000"
	c.OnlineCheckInterval = 3 * time.Second
	c.DownloadMode = DownloadModeDir
	c.DownloadDir = "download"
	c.HistoryDSN = "history.db"
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.ShowProgress = true
	c.S3 = S3Config{Region: "us-east-1", Prefix: "snapcryptor"}
}

// Validate checks values that cannot be corrected later.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base url is required")
	}
	switch c.DownloadMode {
	case DownloadModeDir, DownloadModeBrowser, DownloadModeNone:
	default:
		return fmt.Errorf("download mode %q: %w", c.DownloadMode, common.ErrUnknownOption)
	}
	if c.OnlineCheckInterval <= 0 {
		return fmt.Errorf("online check interval must be positive")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
