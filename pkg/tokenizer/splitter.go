package tokenizer

import (
	"unicode"
)

// SplitWhitespace splits a Plain token into alternating runs of whitespace
// and non-whitespace, emitted as Space and Plain tokens.
func SplitWhitespace(p Plain) []Token {
	var tokens []Token
	if p.Text == "" {
		return tokens
	}

	start := 0
	inSpace := false
	for i, r := range p.Text {
		space := unicode.IsSpace(r)
		if i == 0 {
			inSpace = space
			continue
		}
		if space != inSpace {
			tokens = append(tokens, run(p, start, i, inSpace))
			start = i
			inSpace = space
		}
	}
	// Flush the final run
	return append(tokens, run(p, start, len(p.Text), inSpace))
}

func run(p Plain, start, end int, space bool) Token {
	if space {
		return Space{Text: p.Text[start:end], Pos: p.Pos + start}
	}
	return Plain{Text: p.Text[start:end], Pos: p.Pos + start}
}
