// Package config loads runtime configuration for the StoryHub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the story-sharing REST service
//	-d string   path/DSN of the local session database
//
// # JSON schema
//
//	{
//	  "base_url": "https://hack-or-snooze-v3.herokuapp.com",
//	  "session_dsn": "storyhub.db"
//	}
//
// Primary API
//
//   - type Config                     — holds BaseURL and SessionDSN
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// This package does not read environment variables; use the JSON file or
// flags to configure values.
package config
