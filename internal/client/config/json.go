package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/jobpilot/internal/flagx"
	"github.com/dmitrijs2005/jobpilot/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "30s" or as integer nanoseconds. Absent keys leave the
// runtime Config untouched.
type JsonConfig struct {
	APIURL              string          `json:"api_url"`
	UserID              *int64          `json:"user_id"`
	Locale              string          `json:"locale"`
	LogLevel            string          `json:"log_level"`
	LogFormat           string          `json:"log_format"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	S3Region            string          `json:"s3_region"`
	S3Endpoint          string          `json:"s3_endpoint"`
	S3AccessKey         string          `json:"s3_access_key"`
	S3SecretKey         string          `json:"s3_secret_key"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without the flag nothing is loaded.
func parseJson(cfg *Config, args []string) error {
	jsonConfigFile := flagx.JsonConfigFlag(args)
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config %s: %w", jsonConfigFile, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", jsonConfigFile, err)
	}

	setIf := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setIf(&cfg.APIURL, jc.APIURL)
	setIf(&cfg.Locale, jc.Locale)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
	setIf(&cfg.S3Region, jc.S3Region)
	setIf(&cfg.S3Endpoint, jc.S3Endpoint)
	setIf(&cfg.S3AccessKey, jc.S3AccessKey)
	setIf(&cfg.S3SecretKey, jc.S3SecretKey)

	if jc.UserID != nil {
		cfg.UserID = *jc.UserID
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	return nil
}
