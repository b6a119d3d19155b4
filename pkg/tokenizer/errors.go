package tokenizer

import "errors"

var (
	// ErrUnsupportedTokenKind is the panic payload when a token outside
	// Plain, Space, Literal and Tree reaches the stringifier.
	ErrUnsupportedTokenKind = errors.New("unsupported token kind")

	// ErrInvalidCacheSize is returned by NewTokenizer for a negative cache size.
	ErrInvalidCacheSize = errors.New("invalid cache size")
)
