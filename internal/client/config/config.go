package config

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gkeyring/internal/client/models"
	"github.com/dmitrijs2005/gkeyring/internal/flagx"
	"github.com/dmitrijs2005/gkeyring/internal/logging"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the defaults the command line starts from.
//
// Fields:
//   - Keyring: keyring used when --keyring is absent; empty means the store's
//     default keyring.
//   - ItemType: item type used when --type is absent.
//   - Output: comma-separated output columns used when --output is absent.
//   - LogLevel: slog level name (debug, info, warn, error).
type Config struct {
	Keyring  string
	ItemType models.ItemType
	Output   string
	LogLevel string
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.Keyring = ""
	c.ItemType = models.ItemTypeGeneric
	c.Output = "id,secret"
	c.LogLevel = "warn"
}

// LoadConfig applies defaults, then overlays the file given with -c/--config
// in args, if any. Command-line flags are applied later by the parser, which
// takes its flag defaults from the returned Config.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigFlags(args); path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := models.ParseItemType(string(c.ItemType)); err != nil {
		return fmt.Errorf("%w: type: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output must not be empty", ErrInvalidConfig)
	}
	return nil
}
