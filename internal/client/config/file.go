package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gkeyring/internal/client/models"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of the config file. Absent keys leave the
// current value untouched.
type fileConfig struct {
	Keyring  *string `json:"keyring" yaml:"keyring"`
	Type     *string `json:"type" yaml:"type"`
	Output   *string `json:"output" yaml:"output"`
	LogLevel *string `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with values read from path. Files ending in .json are
// decoded as JSON; everything else as YAML, which also accepts plain JSON.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &fc)
	default:
		err = yaml.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	if fc.Keyring != nil {
		cfg.Keyring = *fc.Keyring
	}
	if fc.Type != nil {
		cfg.ItemType = models.ItemType(*fc.Type)
	}
	if fc.Output != nil {
		cfg.Output = *fc.Output
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	return nil
}
