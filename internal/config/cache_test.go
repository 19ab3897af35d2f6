package config

import (
	"testing"
	"time"
)

func TestParseMethods(t *testing.T) {
	m := parseMethods("get, POST ,")
	if !m["GET"] || !m["POST"] {
		t.Fatalf("parsed = %v", m)
	}
	if len(m) != 2 {
		t.Fatalf("len = %d, want 2", len(m))
	}
}

func TestParseDur(t *testing.T) {
	if d := parseDur("45s"); d != 45*time.Second {
		t.Fatalf("parseDur(45s) = %v", d)
	}
	// Bad input falls back to one second instead of disabling the cache.
	if d := parseDur("garbage"); d != time.Second {
		t.Fatalf("parseDur(garbage) = %v", d)
	}
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	for _, key := range []string{"CACHE_ENABLED", "CACHE_METHODS", "CACHE_TTL", "CACHE_PREFIX"} {
		t.Setenv(key, "")
	}
	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Fatal("cache disabled by default")
	}
	if !cfg.Methods["GET"] {
		t.Fatalf("methods = %v", cfg.Methods)
	}
	if cfg.TTL != 30*time.Second {
		t.Fatalf("ttl = %v", cfg.TTL)
	}
	if cfg.Prefix != "cache" {
		t.Fatalf("prefix = %q", cfg.Prefix)
	}
}
