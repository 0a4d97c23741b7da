package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the provided struct from environment variables based on
// its `env` field tags. The default .env file is loaded once per process
// before the first parse; a missing .env file is not an error.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is like Load but panics on failure, for configuration without
// which the application cannot start.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}
