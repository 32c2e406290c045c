// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/Sharp0802/humus/core/config"
//
//	type ServerConfig struct {
//		Addr        string `env:"SERVER_ADDR" envDefault:":8080"`
//		ServiceName string `env:"SERVICE_NAME,required"`
//	}
//
//	func main() {
//		var cfg ServerConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 ServerConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 ServerConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type SessionSettings struct {
//		Passphrase string `env:"SESSION_PASSPHRASE,required"`
//	}
//
//	// Each type has its own cache entry
//	var server ServerConfig
//	var session SessionSettings
//	config.MustLoad(&server)
//	config.MustLoad(&session)
package config
