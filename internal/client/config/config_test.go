package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gkeyring/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	want := Config{ItemType: models.ItemTypeGeneric, Output: "id,secret", LogLevel: "warn"}
	assert.Empty(t, cmp.Diff(want, c))
}

func TestLoadConfig_NoFile(t *testing.T) {
	cfg, err := LoadConfig([]string{"-p", "a=b", "--type", "note"})
	require.NoError(t, err)
	assert.Equal(t, models.ItemTypeGeneric, cfg.ItemType, "flags are not applied here")
	assert.Equal(t, "id,secret", cfg.Output)
}

func TestLoadConfig_Files(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		want Config
	}{
		{
			name: "yaml",
			file: "cfg.yaml",
			body: "keyring: work\ntype: network\noutput: user,secret\nlog_level: debug\n",
			want: Config{Keyring: "work", ItemType: models.ItemTypeNetwork, Output: "user,secret", LogLevel: "debug"},
		},
		{
			name: "json",
			file: "cfg.json",
			body: `{"type": "note", "output": "name"}`,
			want: Config{ItemType: models.ItemTypeNote, Output: "name", LogLevel: "warn"},
		},
		{
			name: "partial yaml keeps defaults",
			file: "cfg.yml",
			body: "keyring: login\n",
			want: Config{Keyring: "login", ItemType: models.ItemTypeGeneric, Output: "id,secret", LogLevel: "warn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.file, tt.body)
			cfg, err := LoadConfig([]string{"--config", path})
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.want, *cfg))
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"broken json", "bad.json", `{ this is not valid json`},
		{"broken yaml", "bad.yaml", "type: [unterminated\n"},
		{"unknown type", "t.yaml", "type: password\n"},
		{"unknown level", "l.yaml", "log_level: loud\n"},
		{"empty output", "o.yaml", "output: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.file, tt.body)
			_, err := LoadConfig([]string{"-c", path})
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := LoadConfig([]string{"-c", filepath.Join(t.TempDir(), "missing.yaml")})
	require.ErrorIs(t, err, ErrInvalidConfig)
}
