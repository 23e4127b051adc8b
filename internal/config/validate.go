package config

import (
	"errors"
	"fmt"

	"moviemanager/internal/media"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLookup(); err != nil {
		return err
	}
	if err := c.validateRename(); err != nil {
		return err
	}
	if c.Prompt.MaxAttempts <= 0 {
		return errors.New("prompt.max_attempts must be positive")
	}
	return c.validateLogging()
}

func (c *Config) validateLookup() error {
	if c.Lookup.TimeoutSeconds <= 0 {
		return errors.New("lookup.timeout_seconds must be positive")
	}
	switch c.Lookup.Provider {
	case ProviderIMDb:
		return nil
	case ProviderTMDB:
		if c.TMDB.APIKey == "" {
			return errors.New("tmdb.api_key is required when lookup.provider is tmdb (or set TMDB_API_KEY)")
		}
		return nil
	default:
		return fmt.Errorf("lookup.provider: unsupported value %q (valid: %s, %s)", c.Lookup.Provider, ProviderIMDb, ProviderTMDB)
	}
}

func (c *Config) validateRename() error {
	if _, err := media.ParseKind(c.Rename.DefaultKind); err != nil {
		return fmt.Errorf("rename.default_kind: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
