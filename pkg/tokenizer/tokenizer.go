package tokenizer

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
)

// Tokenizer turns text into bracket trees. It is safe for concurrent use.
type Tokenizer struct {
	cfg   Config
	log   logrus.FieldLogger
	cache *lru.Cache[cacheKey, []Token]
}

type cacheKey struct {
	text    string
	allowed PairSet
	base    int
}

// std backs the package-level functions.
var std = mustTokenizer(DefaultConfig())

func mustTokenizer(cfg Config) *Tokenizer {
	t, err := NewTokenizer(cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTokenizer creates a tokenizer. Zero fields of cfg take their defaults.
func NewTokenizer(cfg Config) (*Tokenizer, error) {
	cfg.Validate()
	if cfg.CacheSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCacheSize, cfg.CacheSize)
	}

	t := &Tokenizer{
		cfg: cfg,
		log: cfg.Logger,
	}
	if cfg.Cache {
		cache, err := lru.New[cacheKey, []Token](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCacheSize, err)
		}
		t.cache = cache
	}
	return t, nil
}

// Tokenize splits text into Plain and Tree tokens, matching the given bracket
// pairs (all of them if none are given). Unmatched brackets are kept as text,
// so Stringify of the result always equals text.
func (t *Tokenizer) Tokenize(text string, openers ...Pair) []Token {
	return t.tokenize(text, 0, NewPairSet(openers...))
}

// TokenizePlain tokenizes the text of p. Positions and spans are offset by
// p.Pos so they refer to the original input.
func (t *Tokenizer) TokenizePlain(p Plain, openers ...Pair) []Token {
	return t.tokenize(p.Text, p.Pos, NewPairSet(openers...))
}

func (t *Tokenizer) tokenize(text string, base int, allowed PairSet) []Token {
	if t.cache == nil {
		return t.scan(text, base, allowed)
	}

	key := cacheKey{text: text, allowed: allowed, base: base}
	if tokens, ok := t.cache.Get(key); ok {
		return cloneTokens(tokens)
	}
	tokens := t.scan(text, base, allowed)
	t.cache.Add(key, tokens)
	return cloneTokens(tokens)
}

// Pipeline starts a pass chain over text using this tokenizer.
func (t *Tokenizer) Pipeline(text string) *Pipeline {
	return &Pipeline{
		tok:    t,
		tokens: []Token{Plain{Text: text}},
	}
}

// ClearCache clears the result cache.
func (t *Tokenizer) ClearCache() {
	if t.cache != nil {
		t.cache.Purge()
	}
}

// CacheSize returns the number of cached entries (0 if cache is disabled).
func (t *Tokenizer) CacheSize() int {
	if t.cache == nil {
		return 0
	}
	return t.cache.Len()
}

// CacheEnabled returns true if caching is enabled.
func (t *Tokenizer) CacheEnabled() bool {
	return t.cache != nil
}

func (t *Tokenizer) debugEnabled() bool {
	l, ok := t.log.(interface{ IsLevelEnabled(logrus.Level) bool })
	return ok && l.IsLevelEnabled(logrus.DebugLevel)
}

func (t *Tokenizer) dump(pass string, tokens []Token) {
	if !t.debugEnabled() {
		return
	}
	t.log.WithField("pass", pass).Debugf("tokens: %s", spew.Sdump(tokens))
}

// Tokenize tokenizes text with the default configuration.
func Tokenize(text string, openers ...Pair) []Token {
	return std.Tokenize(text, openers...)
}

// NewPipeline starts a pass chain over text with the default configuration.
func NewPipeline(text string) *Pipeline {
	return std.Pipeline(text)
}
