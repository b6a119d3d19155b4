package tokenizer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// CharKind tells a plain character from one consumed after a backslash.
type CharKind uint8

const (
	CharPlain CharKind = iota
	CharEscaped
)

func (k CharKind) String() string {
	if k == CharEscaped {
		return "escaped"
	}
	return "plain"
}

// Char is one character of escape-parsed text.
// Two Chars are equal only if both Kind and Value match.
type Char struct {
	Kind  CharKind
	Value string
}

const backslash = `\`

// rawLen is the number of bytes the character occupies in source text.
func (c Char) rawLen() int {
	if c.Kind == CharEscaped {
		return len(c.Value) + 1
	}
	return len(c.Value)
}

// nextChar returns the first character of s: a starter plus any combining
// marks that follow it.
func nextChar(s string) string {
	n := norm.NFC.NextBoundaryInString(s, true)
	if n <= 0 || n > len(s) {
		// Invalid UTF-8 or no boundary found, fall back to one rune.
		_, n = utf8.DecodeRuneInString(s)
	}
	return s[:n]
}

// ParseChars splits text into characters, folding each backslash into the
// character that follows it. A trailing backslash stays a plain backslash.
func ParseChars(text string) []Char {
	chars := make([]Char, 0, len(text))
	for i := 0; i < len(text); {
		c := nextChar(text[i:])
		i += len(c)
		if c != backslash || i == len(text) {
			chars = append(chars, Char{Kind: CharPlain, Value: c})
			continue
		}
		c = nextChar(text[i:])
		i += len(c)
		chars = append(chars, Char{Kind: CharEscaped, Value: c})
	}
	return chars
}

// StringifyChars is the inverse of ParseChars. With expand set, escapes are
// dropped and every character is written as its bare value.
func StringifyChars(chars []Char, expand bool) string {
	var b strings.Builder
	writeChars(&b, chars, expand)
	return b.String()
}

func writeChars(b *strings.Builder, chars []Char, expand bool) {
	for _, c := range chars {
		if c.Kind == CharEscaped && !expand {
			b.WriteString(backslash)
		}
		b.WriteString(c.Value)
	}
}

// charOffsets returns the source byte offset of each character, plus a final
// entry holding the total length.
func charOffsets(chars []Char) []int {
	offs := make([]int, len(chars)+1)
	for i, c := range chars {
		offs[i+1] = offs[i] + c.rawLen()
	}
	return offs
}
