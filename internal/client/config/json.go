package config

import (
	"encoding/json"
	"os"

	"github.com/Kerimcanak/SnapCryptor/internal/flagx"
	"github.com/Kerimcanak/SnapCryptor/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values so a partial file only
// overrides what it names.
type JsonConfig struct {
	BaseURL             *string         `json:"base_url"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	DownloadMode        *string         `json:"download_mode"`
	DownloadDir         *string         `json:"download_dir"`
	HistoryDSN          *string         `json:"history_dsn"`
	LogLevel            *string         `json:"log_level"`
	LogBackend          *string         `json:"log_backend"`
	ShowProgress        *bool           `json:"show_progress"`
	S3Bucket            *string         `json:"s3_bucket"`
	S3Region            *string         `json:"s3_region"`
	S3Endpoint          *string         `json:"s3_endpoint"`
	S3AccessKey         *string         `json:"s3_access_key"`
	S3SecretKey         *string         `json:"s3_secret_key"`
	S3Prefix            *string         `json:"s3_prefix"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c / -config flags. Without such a flag it does nothing.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.BaseURL, jc.BaseURL)
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	setString(&cfg.DownloadMode, jc.DownloadMode)
	setString(&cfg.DownloadDir, jc.DownloadDir)
	setString(&cfg.HistoryDSN, jc.HistoryDSN)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogBackend, jc.LogBackend)
	if jc.ShowProgress != nil {
		cfg.ShowProgress = *jc.ShowProgress
	}
	setString(&cfg.S3.Bucket, jc.S3Bucket)
	setString(&cfg.S3.Region, jc.S3Region)
	setString(&cfg.S3.Endpoint, jc.S3Endpoint)
	setString(&cfg.S3.AccessKey, jc.S3AccessKey)
	setString(&cfg.S3.SecretKey, jc.S3SecretKey)
	setString(&cfg.S3.Prefix, jc.S3Prefix)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
