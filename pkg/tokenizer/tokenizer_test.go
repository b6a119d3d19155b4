package tokenizer

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewTokenizer_Defaults(t *testing.T) {
	tok := newTestTokenizer(t, Config{})
	if tok.cfg.MaxDepth != DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want %d", tok.cfg.MaxDepth, DefaultMaxDepth)
	}
	if tok.cfg.CacheSize != DefaultCacheSize {
		t.Errorf("CacheSize = %d, want %d", tok.cfg.CacheSize, DefaultCacheSize)
	}
	if tok.log == nil {
		t.Error("expected a default logger")
	}
	if tok.CacheEnabled() {
		t.Error("cache should be disabled by default")
	}
}

func TestNewTokenizer_InvalidCacheSize(t *testing.T) {
	_, err := NewTokenizer(Config{Cache: true, CacheSize: -1})
	if !errors.Is(err, ErrInvalidCacheSize) {
		t.Errorf("err = %v, want ErrInvalidCacheSize", err)
	}
}

func TestTokenizer_Cache(t *testing.T) {
	tok := newTestTokenizer(t, Config{Cache: true, CacheSize: 2})
	if !tok.CacheEnabled() {
		t.Fatal("expected cache to be enabled")
	}

	first := tok.Tokenize("(a)")
	if tok.CacheSize() != 1 {
		t.Errorf("CacheSize() = %d, want 1", tok.CacheSize())
	}

	// Callers own their results; changing one must not leak into the cache.
	first[0].(Tree).Children[0] = Plain{Text: "z"}

	second := tok.Tokenize("(a)")
	if got := Stringify(second, Escaped); got != "(a)" {
		t.Errorf("cached result = %q, want %q", got, "(a)")
	}
	if tok.CacheSize() != 1 {
		t.Errorf("CacheSize() = %d after hit, want 1", tok.CacheSize())
	}

	tok.Tokenize("(a)", Square)
	tok.TokenizePlain(Plain{Text: "(a)", Pos: 5})
	if tok.CacheSize() != 2 {
		t.Errorf("CacheSize() = %d, want 2 (LRU bound)", tok.CacheSize())
	}

	tok.ClearCache()
	if tok.CacheSize() != 0 {
		t.Errorf("CacheSize() = %d after clear, want 0", tok.CacheSize())
	}
}

func TestTokenizer_CacheKeyedOnBase(t *testing.T) {
	tok := newTestTokenizer(t, Config{Cache: true, Spans: true})
	a := tok.TokenizePlain(Plain{Text: "(x)", Pos: 0})
	b := tok.TokenizePlain(Plain{Text: "(x)", Pos: 10})
	if a[0].(Tree).Outer == b[0].(Tree).Outer {
		t.Errorf("different bases share spans: %v", a[0].(Tree).Outer)
	}
}

func TestTokenizer_NoCache(t *testing.T) {
	tok := newTestTokenizer(t, Config{Cache: false})
	tok.Tokenize("(a)")
	if tok.CacheSize() != 0 {
		t.Errorf("CacheSize() = %d, want 0 with cache disabled", tok.CacheSize())
	}
	tok.ClearCache()
}

func TestPairSet(t *testing.T) {
	if NewPairSet() != AllPairs {
		t.Error("empty NewPairSet should be AllPairs")
	}
	s := ParsePairSet("[]{")
	if !s.Has(Square) || !s.Has(Curly) || s.Has(Paren) {
		t.Errorf("ParsePairSet = %v", s.Pairs())
	}
	if s.String() != "[{" {
		t.Errorf("String() = %q", s.String())
	}
	if ParsePairSet("abc") != 0 {
		t.Error("non-bracket characters should give the empty set")
	}
	for _, r := range "()[]{}" {
		if _, ok := PairOf(r); !ok {
			t.Errorf("PairOf(%q) not found", r)
		}
	}
	if _, ok := PairOf('<'); ok {
		t.Error("'<' is not a bracket")
	}
}

func TestToken_MarshalJSON(t *testing.T) {
	tok := newTestTokenizer(t, Config{Spans: true})
	tokens := tok.Pipeline(`a['b' c]`).Tokenize().ExtractLiterals().SplitWhitespace().Get()

	data, err := json.Marshal(tokens)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	expected := []map[string]any{
		{"kind": "plain", "text": "a", "pos": 0.0},
		{
			"kind": "tree", "open": "[", "close": "]",
			"outer": map[string]any{"start": 1.0, "end": 8.0},
			"inner": map[string]any{"start": 2.0, "end": 7.0},
			"children": []any{
				map[string]any{"kind": "literal", "quote": "'", "text": "b", "value": "b", "pos": 2.0},
				map[string]any{"kind": "space", "text": " ", "pos": 5.0},
				map[string]any{"kind": "plain", "text": "c", "pos": 6.0},
			},
		},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}
