package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/jobpilot/internal/client/source"
	"github.com/dmitrijs2005/jobpilot/internal/common"
	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the jobpilot CLI.
//
// Fields:
//   - APIURL: backend API root, e.g. http://localhost:8000/api.
//   - UserID: user the CLI acts for; 0 means none selected yet.
//   - Locale: display locale for cards (ru or en).
//   - LogLevel / LogFormat: slog level and handler (text or json).
//   - OnlineCheckInterval: how often the client probes backend reachability.
//   - S3*: object storage used for s3:// resume references.
type Config struct {
	APIURL              string        `validate:"required,http_url"`
	UserID              int64         `validate:"gte=0"`
	Locale              string        `validate:"oneof=ru en"`
	LogLevel            string        `validate:"oneof=debug info warn error"`
	LogFormat           string        `validate:"oneof=text json"`
	OnlineCheckInterval time.Duration `validate:"gt=0"`
	S3Region            string
	S3Endpoint          string `validate:"omitempty,http_url"`
	S3AccessKey         string
	S3SecretKey         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = common.DefaultAPIURL
	c.Locale = "ru"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.OnlineCheckInterval = 30 * time.Second
}

// Validate checks value ranges. Failures match common.ErrValidation.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	return nil
}

// S3 returns the object storage settings for the source package.
func (c *Config) S3() source.S3Config {
	return source.S3Config{
		Region:    c.S3Region,
		Endpoint:  c.S3Endpoint,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and .env file), JSON (if present) and command-line flags.
// Later sources take precedence over earlier ones. args excludes the program
// name; the returned slice holds the arguments that are not config flags.
func LoadConfig(args []string) (*Config, []string, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, args, os.LookupEnv); err != nil {
		return nil, nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, nil, err
	}
	rest, err := parseFlags(cfg, args)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, rest, nil
}
