// Package config loads application configuration from environment
// variables into annotated structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default `.env` file in the working directory is loaded once per
// process (and may be absent), then the environment is parsed into any Go
// struct using `env` field tags.
//
// # Usage
//
//	type Config struct {
//	    Hosts   []string      `env:"CASSANDRA_HOSTS" envDefault:"127.0.0.1"`
//	    Timeout time.Duration `env:"SESSION_TIMEOUT" envDefault:"20m"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
package config
