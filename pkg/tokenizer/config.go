package tokenizer

import (
	"github.com/sirupsen/logrus"
)

const (
	// DefaultCacheSize is the number of cached Tokenize results.
	DefaultCacheSize = 10_000

	// DefaultMaxDepth bounds bracket nesting.
	DefaultMaxDepth = 1000
)

// Config defines the Tokenizer's options.
type Config struct {
	Logger logrus.FieldLogger

	// Cache memoizes Tokenize results in an LRU of CacheSize entries.
	Cache     bool
	CacheSize int

	// MaxDepth is the deepest bracket nesting turned into trees; deeper
	// openers are left as text.
	MaxDepth int

	// Spans records Tree.Outer and Tree.Inner.
	Spans bool
}

// DefaultConfig returns a Config with caching disabled and spans off.
func DefaultConfig() Config {
	return Config{
		Logger:    logrus.New(),
		CacheSize: DefaultCacheSize,
		MaxDepth:  DefaultMaxDepth,
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.CacheSize == 0 {
		c.CacheSize = DefaultCacheSize
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
}
