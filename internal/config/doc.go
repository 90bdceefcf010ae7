// Package config provides 12-factor configuration for the fileops host
// server.
//
// Configuration is loaded from environment variables with sensible
// defaults. Only the HTTP transport is configurable; the operation core
// takes no configuration at all.
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("listening on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
package config
