// Package config loads, normalizes, and validates filesort configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from an explicit path, the user config
// directory, or the working directory. Always obtain settings through this
// package so downstream code receives expanded paths and canonical log formats.
package config
