package config

import (
    "strings"
    "time"
)

// CacheConfig defines settings for the response cache middleware.  When
// Enabled is false or no Redis client is available, caching is disabled.
// Methods lists the HTTP methods to cache.  TTL defines the lifetime of
// cache entries; Prefix namespaces the keys.
type CacheConfig struct {
    Enabled bool
    Methods map[string]bool
    TTL     time.Duration
    Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled: getenv("CACHE_ENABLED", "true") == "true",
        Methods: parseMethods(getenv("CACHE_METHODS", "GET")),
        TTL:     parseDur(getenv("CACHE_TTL", "30s")),
        Prefix:  getenv("CACHE_PREFIX", "cache"),
    }
}

func parseMethods(s string) map[string]bool {
    m := map[string]bool{}
    for _, p := range strings.Split(s, ",") {
        p = strings.TrimSpace(strings.ToUpper(p))
        if p != "" {
            m[p] = true
        }
    }
    return m
}

func parseDur(s string) time.Duration {
    d, err := time.ParseDuration(s)
    if err != nil {
        return time.Second
    }
    return d
}
