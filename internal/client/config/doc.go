// Package config loads runtime configuration for the jobpilot CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables JOBPILOT_*, backed by a dotenv file: the one
//     given with -e/-env, or ./.env when present (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// The merged result is checked with go-playground/validator; failures match
// common.ErrValidation.
//
// Supported flags
//
//	-a string   backend API base URL (default http://localhost:8000/api)
//	-u int      user id to act for
//	-l string   display locale: ru or en
//	-i int      online status check interval (seconds)
//	-v          debug logging
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_url": "http://localhost:8000/api",
//	  "user_id": 1,
//	  "locale": "ru",
//	  "log_level": "info",
//	  "log_format": "json",
//	  "online_check_interval": "30s",
//	  "s3_endpoint": "http://127.0.0.1:9000"
//	}
//
// Primary API
//
//   - type Config: runtime settings
//   - func LoadConfig(args) (*Config, []string, error): defaults, env, JSON, flags, validation
//   - func (*Config) LoadDefaults(): sets sensible defaults
package config
