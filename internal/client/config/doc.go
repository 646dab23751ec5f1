// Package config loads runtime configuration for the Blogsphere CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the blog backend API
//	-p string   token endpoint URL of the identity provider
//	-i string   OAuth2 client id registered with the identity provider
//	-t int      per-request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:3000",
//	  "token_url": "http://localhost:9099/token",
//	  "client_id": "blogsphere-cli",
//	  "request_timeout": "15s"
//	}
package config
