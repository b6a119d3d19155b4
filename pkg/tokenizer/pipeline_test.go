package tokenizer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var roundTripInputs = []string{
	"",
	"plain text",
	`a="b\"c"d`,
	`x="y`,
	"a([b",
	"(]",
	"a([b)]",
	`f(x, [1, {"k": (2)}]) (tail`,
	`name = 'it\'s' [a "b c" (d)]`,
	`\`,
	`"unterminated [ ( {`,
	"}])({[",
	"tabs\tand\nnewlines ( x )",
	`nested "quotes 'inside' here" and 'out"side'`,
	"ünïcödé [ß] (é)",
	`escaped \[ bracket \]`,
}

func TestPipeline_RoundTrip(t *testing.T) {
	for _, input := range roundTripInputs {
		p := NewPipeline(input)
		if got := p.String(); got != input {
			t.Errorf("initial: got %q, want %q", got, input)
		}
		steps := []struct {
			name string
			run  func()
		}{
			{"tokenize [", func() { p.Tokenize(Square) }},
			{"tokenize all", func() { p.Tokenize() }},
			{"literals", func() { p.ExtractLiterals() }},
			{"whitespace", func() { p.SplitWhitespace() }},
		}
		for _, step := range steps {
			step.run()
			if got := Stringify(p.Get(), Escaped); got != input {
				t.Errorf("after %s: got %q, want %q", step.name, got, input)
			}
		}
		if p.Passes() != len(steps) {
			t.Errorf("Passes() = %d, want %d", p.Passes(), len(steps))
		}
	}
}

func TestPipeline_TwoPass(t *testing.T) {
	result := NewPipeline("a([b)]").Tokenize(Square).Tokenize().Get()
	expected := []Token{
		Plain{Text: "a("},
		Tree{Pair: Square, Children: []Token{Plain{Text: "b)", Pos: 3}}},
	}
	if diff := cmp.Diff(expected, result, cmpOpts...); diff != "" {
		t.Errorf("two-pass mismatch (-want +got):\n%s", diff)
	}

	result = NewPipeline("a[(b)]").Tokenize(Square).Tokenize().Get()
	expected = []Token{
		Plain{Text: "a"},
		Tree{Pair: Square, Children: []Token{
			Tree{Pair: Paren, Children: []Token{Plain{Text: "b", Pos: 3}}},
		}},
	}
	if diff := cmp.Diff(expected, result, cmpOpts...); diff != "" {
		t.Errorf("nested two-pass mismatch (-want +got):\n%s", diff)
	}
}

func TestPipeline_GlobalSpans(t *testing.T) {
	tok := newTestTokenizer(t, Config{Spans: true})
	input := "x[a(b)]"
	result := tok.Pipeline(input).Tokenize(Square).Tokenize().Get()

	expected := []Token{
		Plain{Text: "x"},
		Tree{
			Pair: Square,
			Children: []Token{
				Plain{Text: "a", Pos: 2},
				Tree{
					Pair:     Paren,
					Children: []Token{Plain{Text: "b", Pos: 4}},
					Outer:    Span{3, 6},
					Inner:    Span{4, 5},
				},
			},
			Outer: Span{1, 7},
			Inner: Span{2, 6},
		},
	}
	if diff := cmp.Diff(expected, result, cmpOpts...); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	inner := result[1].(Tree).Children[1].(Tree)
	if got := input[inner.Outer.Start:inner.Outer.End]; got != "(b)" {
		t.Errorf("second pass span covers %q, want %q", got, "(b)")
	}
}

func TestPipeline_Idempotent(t *testing.T) {
	for _, input := range roundTripInputs {
		once := Tokenize(input)
		twice := NewPipeline(input).Tokenize().Tokenize().Get()
		if diff := cmp.Diff(once, twice, cmpOpts...); diff != "" {
			t.Errorf("second full pass changed %q (-once +twice):\n%s", input, diff)
		}
	}
}

func TestPipeline_LiteralInsideTree(t *testing.T) {
	result := NewPipeline(`f["k\"x"]`).Tokenize().ExtractLiterals().Get()
	expected := []Token{
		Plain{Text: "f"},
		Tree{Pair: Square, Children: []Token{
			Literal{Quote: '"', Pos: 2, Content: []Char{
				{Kind: CharPlain, Value: "k"},
				{Kind: CharEscaped, Value: `"`},
				{Kind: CharPlain, Value: "x"},
			}},
		}},
	}
	if diff := cmp.Diff(expected, result, cmpOpts...); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if got := Stringify(result, Expanded); got != `f[k"x]` {
		t.Errorf("Expanded = %q", got)
	}
}

func TestPipeline_Traverse(t *testing.T) {
	redact := func(p Plain) []Token {
		return []Token{Plain{Text: strings.Repeat("*", len(p.Text)), Pos: p.Pos}}
	}
	got := NewPipeline(`user(secret) "kept"`).Tokenize().ExtractLiterals().Traverse(redact).String()
	if got != `****(******)*"kept"` {
		t.Errorf("redacted = %q", got)
	}
}

func FuzzRoundTrip(f *testing.F) {
	for _, input := range roundTripInputs {
		f.Add(input)
	}
	tok, err := NewTokenizer(Config{Spans: true, MaxDepth: 32})
	if err != nil {
		f.Fatal(err)
	}
	f.Fuzz(func(t *testing.T, input string) {
		p := tok.Pipeline(input).Tokenize(Square, Curly).Tokenize().ExtractLiterals().SplitWhitespace()
		if got := p.String(); got != input {
			t.Errorf("round trip: got %q, want %q", got, input)
		}
	})
}
