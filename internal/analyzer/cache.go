package analyzer

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pthm/twlint/internal/config"
	"gopkg.in/yaml.v3"
)

// Cache memoizes analysis results by text and configuration.
// Analysis is deterministic, so a hit is identical to a fresh run.
type Cache struct {
	cache *gocache.Cache
}

// NewCache creates a new result cache
func NewCache(defaultTTL time.Duration, cleanupInterval time.Duration) *Cache {
	return &Cache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Key fingerprints text and cfg. The second value is false when cfg cannot be encoded.
func Key(text string, cfg config.Config) (string, bool) {
	encoded, err := yaml.Marshal(cfg)
	if err != nil {
		return "", false
	}

	h := sha256.New()
	h.Write(encoded)
	h.Write([]byte{0})
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)), true
}

// Get retrieves a result from the cache
func (c *Cache) Get(text string, cfg config.Config) (*Result, bool) {
	key, ok := Key(text, cfg)
	if !ok {
		return nil, false
	}
	if val, found := c.cache.Get(key); found {
		return val.(*Result), true
	}
	return nil, false
}

// Set stores a result with the default TTL
func (c *Cache) Set(text string, cfg config.Config, result *Result) {
	if key, ok := Key(text, cfg); ok {
		c.cache.SetDefault(key, result)
	}
}

// Len returns the number of cached results, including expired ones not yet cleaned up
func (c *Cache) Len() int {
	return c.cache.ItemCount()
}

// Clear removes all cached results
func (c *Cache) Clear() {
	c.cache.Flush()
}
