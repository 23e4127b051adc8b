// Package main hosts the moviemanager CLI entrypoint and command graph.
//
// The root command takes a directory and renames each entry in it to the
// canonical "Title (Year)" form found by a title lookup. Configuration
// resolution, logger construction, and the run lock live here so the
// internal packages stay free of terminal concerns.
package main
