package tokenizer

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the variant of a Token.
type Kind uint8

const (
	KindPlain Kind = iota
	KindSpace
	KindLiteral
	KindTree
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindSpace:
		return "space"
	case KindLiteral:
		return "literal"
	case KindTree:
		return "tree"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Token is one of Plain, Space, Literal or Tree. The set is closed: only
// this package can add variants.
type Token interface {
	Kind() Kind
	token()
}

// Plain is a run of text with no bracket or literal structure recognized in it.
type Plain struct {
	Text string
	Pos  int // byte offset of Text in the original input
}

// Space is a maximal run of whitespace.
type Space struct {
	Text string
	Pos  int
}

// Literal is a quoted run. Content excludes the quote marks and keeps the
// escape information of every character.
type Literal struct {
	Quote   rune
	Content []Char
	Pos     int // offset of the opening quote
}

// Span is a half-open byte range of the original input.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of bytes covered.
func (s Span) Len() int { return s.End - s.Start }

// Tree is a bracketed group.
type Tree struct {
	Pair     Pair
	Children []Token

	// Outer covers the delimiters, Inner only the content between them.
	// Both are zero unless span tracking was enabled.
	Outer, Inner Span
}

func (Plain) Kind() Kind { return KindPlain }
func (Space) Kind() Kind { return KindSpace }
func (Literal) Kind() Kind { return KindLiteral }
func (Tree) Kind() Kind { return KindTree }

func (Plain) token() {}
func (Space) token() {}
func (Literal) token() {}
func (Tree) token() {}

// Open returns the opening bracket.
func (t Tree) Open() rune { return t.Pair.Open() }

// Close returns the closing bracket.
func (t Tree) Close() rune { return t.Pair.Close() }

// HasSpans reports whether Outer and Inner were recorded.
func (t Tree) HasSpans() bool { return t.Outer.Len() > 0 }

// Text returns the literal content with escapes preserved.
func (l Literal) Text() string { return StringifyChars(l.Content, false) }

// Value returns the literal content with escapes removed.
func (l Literal) Value() string { return StringifyChars(l.Content, true) }

func (p Plain) String() string { return p.Text }
func (s Space) String() string { return s.Text }
func (l Literal) String() string { return StringifyToken(l, Escaped) }
func (t Tree) String() string { return StringifyToken(t, Escaped) }

func (p Plain) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
		Pos  int    `json:"pos"`
	}{KindPlain.String(), p.Text, p.Pos})
}

func (s Space) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
		Pos  int    `json:"pos"`
	}{KindSpace.String(), s.Text, s.Pos})
}

func (l Literal) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Quote string `json:"quote"`
		Text  string `json:"text"`
		Value string `json:"value"`
		Pos   int    `json:"pos"`
	}{KindLiteral.String(), string(l.Quote), l.Text(), l.Value(), l.Pos})
}

func (t Tree) MarshalJSON() ([]byte, error) {
	children := t.Children
	if children == nil {
		children = []Token{}
	}
	var outer, inner *Span
	if t.HasSpans() {
		outer, inner = &t.Outer, &t.Inner
	}
	return json.Marshal(struct {
		Kind     string  `json:"kind"`
		Open     string  `json:"open"`
		Close    string  `json:"close"`
		Children []Token `json:"children"`
		Outer    *Span   `json:"outer,omitempty"`
		Inner    *Span   `json:"inner,omitempty"`
	}{KindTree.String(), string(t.Open()), string(t.Close()), children, outer, inner})
}

// cloneTokens deep-copies a token sequence.
func cloneTokens(tokens []Token) []Token {
	if tokens == nil {
		return nil
	}
	out := make([]Token, len(tokens))
	for i, tok := range tokens {
		switch t := tok.(type) {
		case Literal:
			t.Content = append([]Char(nil), t.Content...)
			out[i] = t
		case Tree:
			t.Children = cloneTokens(t.Children)
			out[i] = t
		default:
			out[i] = tok
		}
	}
	return out
}
