package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// dotenvOnce guards the one-time .env load. A missing file is not an
	// error; deployed environments provide real variables.
	dotenvOnce sync.Once

	// cache stores loaded configurations keyed by struct type.
	cache sync.Map
)

// Load parses environment variables into cfg based on its env struct tags.
// The first load of each type reads the environment; subsequent loads of
// the same type return the cached value, so every caller observes the same
// configuration regardless of later environment changes.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilTarget
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	typ := reflect.TypeFor[T]()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	parsed, err := env.ParseAs[T]()
	if err != nil {
		return fmt.Errorf("parse environment for %s: %w", typ, err)
	}

	actual, _ := cache.LoadOrStore(typ, parsed)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on failure. Intended for application
// startup where a missing required variable should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
