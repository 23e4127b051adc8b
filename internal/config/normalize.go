package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeLookup()
	c.normalizeTMDB()
	c.normalizeRename()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeLookup() {
	c.Lookup.Provider = strings.ToLower(strings.TrimSpace(c.Lookup.Provider))
	if c.Lookup.Provider == "" {
		c.Lookup.Provider = defaultProvider
	}
	c.IMDb.BaseURL = strings.TrimSpace(c.IMDb.BaseURL)
	if c.IMDb.BaseURL == "" {
		c.IMDb.BaseURL = defaultIMDbBaseURL
	}
}

func (c *Config) normalizeTMDB() {
	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	if c.TMDB.APIKey == "" {
		if value, ok := os.LookupEnv("TMDB_API_KEY"); ok {
			c.TMDB.APIKey = strings.TrimSpace(value)
		}
	}
	c.TMDB.BaseURL = strings.TrimSpace(c.TMDB.BaseURL)
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)
}

func (c *Config) normalizeRename() {
	c.Rename.DefaultKind = strings.TrimSpace(c.Rename.DefaultKind)
	if c.Rename.DefaultKind == "" {
		c.Rename.DefaultKind = defaultKind
	}
	if c.Rename.IgnoreFiles == nil {
		c.Rename.IgnoreFiles = DefaultIgnoreFiles()
		return
	}
	names := make([]string, 0, len(c.Rename.IgnoreFiles))
	seen := make(map[string]struct{}, len(c.Rename.IgnoreFiles))
	for _, name := range c.Rename.IgnoreFiles {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, exists := seen[name]; exists {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	c.Rename.IgnoreFiles = names
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.LockDir) == "" {
		c.Paths.LockDir = defaultLockDir()
	}
	var err error
	if c.Paths.LockDir, err = expandPath(c.Paths.LockDir); err != nil {
		return fmt.Errorf("paths.lock_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	outputs := make([]string, 0, len(c.Logging.OutputPaths))
	for _, path := range c.Logging.OutputPaths {
		path = strings.TrimSpace(path)
		switch path {
		case "":
			continue
		case "stdout", "stderr":
		default:
			expanded, err := expandPath(path)
			if err != nil {
				return fmt.Errorf("logging.output_paths: %w", err)
			}
			path = expanded
		}
		if !slices.Contains(outputs, path) {
			outputs = append(outputs, path)
		}
	}
	if len(outputs) == 0 {
		outputs = []string{"stdout"}
	}
	c.Logging.OutputPaths = outputs
	return nil
}
