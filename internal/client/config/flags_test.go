package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantRest []string
		wantErr  bool
	}{
		{
			name:     "all flags",
			args:     []string{"-a", "http://127.0.0.1:9090/api", "-u", "3", "-l", "en", "-i", "10"},
			expected: &Config{APIURL: "http://127.0.0.1:9090/api", UserID: 3, Locale: "en", OnlineCheckInterval: 10 * time.Second},
			wantRest: []string{},
		},
		{
			name:     "command args pass through",
			args:     []string{"-u=4", "jobs", "search", "--keywords", "go", "-v"},
			expected: &Config{UserID: 4, LogLevel: "debug"},
			wantRest: []string{"jobs", "search", "--keywords", "go"},
		},
		{
			name:     "config flags are swallowed",
			args:     []string{"-c", "cfg.json", "-env", ".env.local", "ping"},
			expected: &Config{},
			wantRest: []string{"ping"},
		},
		{
			name:    "incorrect check interval",
			args:    []string{"-i", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			rest, err := parseFlags(config, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestParseFlags_IntervalKeptWhenNotGiven(t *testing.T) {
	config := &Config{OnlineCheckInterval: 1500 * time.Millisecond}
	_, err := parseFlags(config, nil)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, config.OnlineCheckInterval)
}
