package session

import "time"

// Config holds provider configuration
type Config struct {
	// ApplicationName partitions records so multiple applications can share
	// one backing table.
	ApplicationName string `env:"SESSION_APP_NAME" envDefault:"default"`

	// Timeout is the session timeout; every successful exclusive read,
	// release and timeout reset pushes the expiry this far into the future.
	Timeout time.Duration `env:"SESSION_TIMEOUT" envDefault:"20m"`
}

// DefaultConfig returns default provider configuration
func DefaultConfig() Config {
	return Config{
		ApplicationName: "default",
		Timeout:         20 * time.Minute,
	}
}
