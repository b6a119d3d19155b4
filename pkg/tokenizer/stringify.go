package tokenizer

import (
	"fmt"
	"strings"
)

// Mode selects how literals are rendered.
type Mode uint8

const (
	// Escaped writes literals with their quotes and escapes, reproducing the input.
	Escaped Mode = iota
	// Expanded writes only literal contents, with escapes removed.
	Expanded
)

func (m Mode) String() string {
	if m == Expanded {
		return "expanded"
	}
	return "escaped"
}

// Stringify renders tokens back to text. In Escaped mode the result is the
// exact text the tokens were produced from.
//
// Stringify panics with ErrUnsupportedTokenKind on a token that is not one
// of Plain, Space, Literal or Tree.
func Stringify(tokens []Token, mode Mode) string {
	var b strings.Builder
	for _, tok := range tokens {
		writeToken(&b, tok, mode)
	}
	return b.String()
}

// StringifyToken renders a single token.
func StringifyToken(tok Token, mode Mode) string {
	var b strings.Builder
	writeToken(&b, tok, mode)
	return b.String()
}

func writeToken(b *strings.Builder, tok Token, mode Mode) {
	switch t := tok.(type) {
	case Plain:
		b.WriteString(t.Text)
	case Space:
		b.WriteString(t.Text)
	case Tree:
		b.WriteRune(t.Open())
		for _, child := range t.Children {
			writeToken(b, child, mode)
		}
		b.WriteRune(t.Close())
	case Literal:
		if mode == Expanded {
			writeChars(b, t.Content, true)
			return
		}
		b.WriteRune(t.Quote)
		writeChars(b, t.Content, false)
		b.WriteRune(t.Quote)
	default:
		panic(fmt.Errorf("%w: %T", ErrUnsupportedTokenKind, tok))
	}
}
