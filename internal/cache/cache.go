package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores slide summaries so identical slides do not get re-billed
// across runs. Misses are reported as ("", nil).
type Cache interface {
	// GetSummary retrieves a cached summary by key; "" means not found.
	GetSummary(ctx context.Context, key string) (string, error)

	// SetSummary stores a summary with TTL.
	SetSummary(ctx context.Context, key string, summary string, ttl time.Duration) error

	// Close closes the cache connection.
	Close() error
}

// Key derives a stable cache key from the model identifier and the slide
// text. The model is part of the key because different models answer the
// same slide differently.
func Key(model, text string) string {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}
