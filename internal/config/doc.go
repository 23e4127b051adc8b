// Package config loads, normalizes, and validates moviemanager configuration.
//
// Configuration is optional: Default returns a working setup that uses the
// IMDb suggestion endpoint, so the tool runs without any file on disk. A TOML
// file (see CreateSample) can switch providers, supply a TMDB key, extend the
// ignore list, and tune logging. Environment variables fill in secrets the
// file leaves empty.
package config
