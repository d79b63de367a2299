// Package flagx separates the process flags owned by the configuration layer
// from the arguments that belong to CLI commands.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// Set lists the flags owned by one parser.
//
// Valued flags consume the following argument as their value unless it looks
// like another flag. Bool flags never consume a value ("-v=false" still works).
type Set struct {
	Valued []string
	Bool   []string
}

func (s Set) index() map[string]bool {
	m := make(map[string]bool, len(s.Valued)+len(s.Bool))
	for _, f := range s.Valued {
		m[f] = true
	}
	for _, f := range s.Bool {
		m[f] = false
	}
	return m
}

// Split partitions args into the flags described by set (with their values)
// and everything else, preserving order in both slices.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -a http://host/api
//  2. Flag and value combined with '=':      -a=http://host/api
//
// A literal "--" ends flag recognition: everything after it goes to rest.
func Split(args []string, set Set) (own, rest []string) {
	known := set.index()

	own = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			rest = append(rest, args[i+1:]...)
			break
		}

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := known[name]; ok {
				own = append(own, arg)
			} else {
				rest = append(rest, arg)
			}
			continue
		}

		valued, ok := known[arg]
		if !ok {
			rest = append(rest, arg)
			continue
		}

		own = append(own, arg)
		if valued && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			own = append(own, args[i+1])
			i++
		}
	}

	return own, rest
}

// FilterArgs returns only the allowed (valued) flags and their values.
func FilterArgs(args []string, allowedFlags []string) []string {
	own, _ := Split(args, Set{Valued: allowedFlags})
	return own
}

// lookupString extracts the last value given to any of names. Other
// arguments are ignored, so callers can probe a single flag before the full
// flag set is parsed.
func lookupString(args []string, names ...string) string {
	prefixed := make([]string, len(names))
	for i, n := range names {
		prefixed[i] = "-" + n
	}

	var value string
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&value, n, "", "")
	}
	_ = fs.Parse(FilterArgs(args, prefixed))

	return value
}

// JsonConfigFlag returns the config file path given via -c or -config.
func JsonConfigFlag(args []string) string {
	return lookupString(args, "config", "c")
}

// EnvFileFlag returns the dotenv file path given via -e or -env.
func EnvFileFlag(args []string) string {
	return lookupString(args, "env", "e")
}
