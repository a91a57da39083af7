// Package config loads the CLI configuration from a YAML file. Every value
// has a sensible default and can be overridden per invocation by flags.
package config
