// Package config loads, defaults, and validates dcpforge configuration.
//
// Configuration comes from a TOML file (see sample_config.toml), with
// DCPFORGE_* environment variables overlaid on top so automation can tweak a
// build without editing files. Validate catches unusable values before any
// assembly starts.
package config
