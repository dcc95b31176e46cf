// Package config loads, normalizes, and validates tareval configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Configuration provides defaults only;
// command-line flags always win. Always obtain settings through this package
// so downstream code receives sanitized paths, canonical log formats, and
// clear validation errors.
package config
