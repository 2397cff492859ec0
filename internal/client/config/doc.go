// Package config holds the CLI defaults: the server address and the
// per-request timeout. Values come from built-in defaults, then an optional
// JSON file, then LAUNCHKEEPER_CLI_* environment variables. Command-line
// flags are applied by the cobra commands on top of the result.
package config
