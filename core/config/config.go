package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	mu    sync.RWMutex
	cache = make(map[reflect.Type]any)
)

// Load parses environment variables into cfg. The first load of each
// concrete type parses the environment and caches the result; subsequent
// loads of the same type copy the cached value into cfg.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	// A missing .env file is the normal production case.
	dotenvOnce.Do(func() { _ = godotenv.Load() })

	key := reflect.TypeOf(*cfg)

	mu.RLock()
	cached, ok := cache[key]
	mu.RUnlock()
	if ok {
		*cfg = cached.(T)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()
	if cached, ok := cache[key]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	cache[key] = *cfg
	return nil
}

// MustLoad is Load that panics on failure, for use during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
