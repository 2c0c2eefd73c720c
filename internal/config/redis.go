package config

// GetRedisURL returns the Redis address, empty when Redis is not
// configured. The limiter falls back to its in-process store in that case.
func GetRedisURL() string {
	return GetEnvOrDefault("REDIS_URL", "")
}

// GetRedisPassword returns the Redis password, if any.
func GetRedisPassword() string {
	return GetEnvOrDefault("REDIS_PASSWORD", "")
}
