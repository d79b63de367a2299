package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/dmitrijs2005/jobpilot/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Environment variables read by parseEnv.
const (
	EnvAPIURL              = "JOBPILOT_API_URL"
	EnvUserID              = "JOBPILOT_USER_ID"
	EnvLocale              = "JOBPILOT_LOCALE"
	EnvLogLevel            = "JOBPILOT_LOG_LEVEL"
	EnvLogFormat           = "JOBPILOT_LOG_FORMAT"
	EnvOnlineCheckInterval = "JOBPILOT_ONLINE_CHECK_INTERVAL"
	EnvS3Region            = "JOBPILOT_S3_REGION"
	EnvS3Endpoint          = "JOBPILOT_S3_ENDPOINT"
	EnvS3AccessKey         = "JOBPILOT_S3_ACCESS_KEY"
	EnvS3SecretKey         = "JOBPILOT_S3_SECRET_KEY"
)

type lookupFunc func(key string) (string, bool)

// parseEnv overlays Config with JOBPILOT_* variables.
//
// Values come from the process environment first, then from a dotenv file:
// the one named by -e/-env (must exist) or ./.env (optional). The file never
// overrides a variable that is already set.
func parseEnv(cfg *Config, args []string, lookup lookupFunc) error {
	file := flagx.EnvFileFlag(args)
	required := file != ""
	if !required {
		file = defaultEnvFile
	}

	fileVars, err := godotenv.Read(file)
	if err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read env file %s: %w", file, err)
		}
		fileVars = nil
	}

	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	return applyEnv(cfg, get)
}

func applyEnv(cfg *Config, get lookupFunc) error {
	strs := map[string]*string{
		EnvAPIURL:      &cfg.APIURL,
		EnvLocale:      &cfg.Locale,
		EnvLogLevel:    &cfg.LogLevel,
		EnvLogFormat:   &cfg.LogFormat,
		EnvS3Region:    &cfg.S3Region,
		EnvS3Endpoint:  &cfg.S3Endpoint,
		EnvS3AccessKey: &cfg.S3AccessKey,
		EnvS3SecretKey: &cfg.S3SecretKey,
	}
	for key, dst := range strs {
		if v, ok := get(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := get(EnvUserID); ok && v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvUserID, err)
		}
		cfg.UserID = id
	}

	if v, ok := get(EnvOnlineCheckInterval); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvOnlineCheckInterval, err)
		}
		cfg.OnlineCheckInterval = d
	}
	return nil
}
