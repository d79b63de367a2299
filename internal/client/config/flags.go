package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/jobpilot/internal/flagx"
)

// ownFlags are the process flags handled by this package. Everything else
// is left for the CLI command tree.
var ownFlags = flagx.Set{
	Valued: []string{"-a", "-u", "-l", "-i", "-c", "-config", "-e", "-env"},
	Bool:   []string{"-v"},
}

// parseFlags populates selected Config fields from command-line flags and
// returns the remaining arguments.
//
// Supported flags (short forms):
//
//	-a string   backend API base URL
//	-u int      user id to act for
//	-l string   display locale (ru, en)
//	-i int      online check interval in seconds
//	-v          debug logging
//
// -c/-config and -e/-env are accepted here too but consumed by earlier
// layers.
func parseFlags(cfg *Config, args []string) ([]string, error) {
	own, rest := flagx.Split(args, ownFlags)

	fs := flag.NewFlagSet("jobpilot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "backend API base URL")
	fs.Int64Var(&cfg.UserID, "u", cfg.UserID, "user id")
	fs.StringVar(&cfg.Locale, "l", cfg.Locale, "display locale (ru, en)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	verbose := fs.Bool("v", false, "debug logging")

	var ignored string
	for _, name := range []string{"c", "config", "e", "env"} {
		fs.StringVar(&ignored, name, "", "")
	}

	if err := fs.Parse(own); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
	if *verbose {
		cfg.LogLevel = "debug"
	}
	return rest, nil
}
