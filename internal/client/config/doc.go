// Package config loads the defaults for the gkeyring command line.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or --config. A .json file is
//     decoded as JSON, anything else (.yaml, .yml) as YAML.
//  3. Command-line flags, parsed by package cli, which override earlier values.
//
// # File schema
//
//	keyring: login
//	type: network
//	output: user,secret
//	log_level: debug
//
// Every key is optional.
//
// Primary API
//
//   - type Config                          holds Keyring, ItemType, Output and LogLevel
//   - func LoadConfig(args) (*Config, error) applies defaults, then the file
//   - func (*Config) LoadDefaults()        sets the built-in defaults
//
// Note: This package does not read environment variables.
package config
