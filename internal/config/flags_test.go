package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *StructuredConfig
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "localhost:8080",
				"-request-timeout", "30s",
				"-log-file", "/tmp/client.log",
				"-log-level", "warn",
				"-c", "/path/to/config.json",
			},
			want: &StructuredConfig{
				Adapter:      Adapter{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
				Log:          Log{File: "/tmp/client.log", Level: "warn"},
				JSONFilePath: "/path/to/config.json",
			},
		},
		{
			name: "base url address",
			args: []string{"-a", "https://auth.example.com"},
			want: &StructuredConfig{Adapter: Adapter{HTTPAddress: "https://auth.example.com"}},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			want: &StructuredConfig{JSONFilePath: "/path/to/config.json"},
		},
		{
			name: "double dash form",
			args: []string{"--log-level=error"},
			want: &StructuredConfig{Log: Log{Level: "error"}},
		},
		{
			name: "no flags",
			args: []string{},
			want: &StructuredConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestParseFlags_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name: "invalid timeout",
			args: []string{"-request-timeout", "later"},
		},
		{
			name: "unknown flag",
			args: []string{"-grpc-address", "localhost:9090"},
		},
		{
			name: "missing flag value",
			args: []string{"-a"},
		},
		{
			name:    "positional argument",
			args:    []string{"-a", "localhost:8080", "extra"},
			wantErr: ErrUnexpectedArguments,
		},
		{
			name:    "help",
			args:    []string{"-h"},
			wantErr: flag.ErrHelp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
