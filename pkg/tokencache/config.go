package tokencache

import "time"

// Config bounds the cache. Parameters are validated, never clamped: an
// invalid configuration is rejected synchronously.
type Config struct {
	Enabled bool          `env:"TOKEN_CACHE_ENABLED" envDefault:"true"`
	MaxSize int           `env:"TOKEN_CACHE_MAX_SIZE" envDefault:"1000"`
	TTL     time.Duration `env:"TOKEN_CACHE_TTL" envDefault:"10m"`
}

// DefaultConfig returns the enabled production defaults.
func DefaultConfig() Config {
	return Config{Enabled: true, MaxSize: 1000, TTL: 10 * time.Minute}
}

// Validate rejects out-of-range parameters.
func (c Config) Validate() error {
	if c.MaxSize < 1 {
		return ErrInvalidMaxSize
	}
	if c.TTL < 0 {
		return ErrInvalidTTL
	}
	return nil
}
