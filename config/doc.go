// Package config holds the tool's runtime configuration: the Config struct
// consumed by the output builder and watch loop, the built-in defaults, the
// profile enumeration, cross-field validation, and the optional YAML
// configuration file.
//
// Precedence is flag > file > default; the CLI layer performs the merge and
// the result is treated as immutable for the rest of the run.
//
// Import path: github.com/erraggy/openapi-snapshot/config
package config
