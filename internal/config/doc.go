// Package config loads, normalizes, and validates cutsort configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the CUTSORT_MODEL environment
// fallback. The Config type centralizes the workspace layout, the cut-list
// field labels, the product table and the run policy so every command sees
// the same sanitized values.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
