// Package config loads and validates the iceberg-mcp configuration.
//
// Values are merged with this precedence (highest first):
//
//  1. command-line flags bound through Load
//  2. environment variables (CATALOG_KIND, REST_URI, AWS_REGION_NAME, ...)
//  3. an optional YAML configuration file
//  4. built-in defaults (see Default)
//
// The environment variable names are stable and documented on each field in
// types.go. Validate reports every problem at once as ValidationErrors.
package config
