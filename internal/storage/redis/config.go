package redis

// Config holds Redis connection settings.
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	PoolSize int

	// KeyPrefix namespaces every key written by this store.
	KeyPrefix string
}

// DefaultConfig returns sensible defaults for Redis configuration.
func DefaultConfig() Config {
	return Config{
		URL:       "redis://localhost:6379",
		PoolSize:  10,
		KeyPrefix: "casslot",
	}
}
