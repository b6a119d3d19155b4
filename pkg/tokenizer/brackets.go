package tokenizer

import (
	"github.com/sirupsen/logrus"
)

// frame is an open bracket group awaiting its closer. The root frame has
// root set and no bracket.
type frame struct {
	pair     Pair
	root     bool
	open     int // offset of the opening bracket
	cursor   int // start of the pending plain text
	children []Token
}

// flush moves the plain text between the cursor and end into the frame.
func (f *frame) flush(text string, end, base int) {
	if end > f.cursor {
		f.children = append(f.children, Plain{Text: text[f.cursor:end], Pos: base + f.cursor})
	}
	f.cursor = end
}

// scan builds the token tree of text. base is the offset of text in the
// original input and is added to every recorded position.
func (t *Tokenizer) scan(text string, base int, allowed PairSet) []Token {
	stack := make([]*frame, 1, 8)
	stack[0] = &frame{root: true}

	for i := 0; i < len(text); i++ {
		c := text[i]
		top := stack[len(stack)-1]

		if p := openers[c]; p >= 0 && allowed.Has(Pair(p)) {
			if len(stack) > t.cfg.MaxDepth {
				t.log.WithFields(logrus.Fields{
					"pos":   base + i,
					"depth": len(stack) - 1,
				}).Warn("bracket nesting too deep, treating opener as text")
				continue
			}
			top.flush(text, i, base)
			stack = append(stack, &frame{pair: Pair(p), open: i, cursor: i + 1})
			continue
		}

		if p := closers[c]; p >= 0 && !top.root && top.pair == Pair(p) {
			top.flush(text, i, base)
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]

			tree := Tree{Pair: top.pair, Children: top.children}
			if t.cfg.Spans {
				tree.Outer = Span{Start: base + top.open, End: base + i + 1}
				tree.Inner = Span{Start: base + top.open + 1, End: base + i}
			}
			parent.children = append(parent.children, tree)
			parent.cursor = i + 1
		}
	}
	stack[len(stack)-1].flush(text, len(text), base)

	// Unmatched openers become text: splice each open frame into its parent
	// behind a Plain holding the bracket itself.
	for len(stack) > 1 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		parent := stack[len(stack)-1]

		t.log.WithFields(logrus.Fields{
			"pos":     base + f.open,
			"bracket": string(f.pair.Open()),
		}).Debug("unmatched bracket")

		parent.children = appendMerged(parent.children, Plain{Text: string(f.pair.Open()), Pos: base + f.open})
		for _, child := range f.children {
			parent.children = appendMerged(parent.children, child)
		}
	}
	return stack[0].children
}

// appendMerged appends tok, joining it with a preceding Plain token.
func appendMerged(tokens []Token, tok Token) []Token {
	p, ok := tok.(Plain)
	if !ok || len(tokens) == 0 {
		return append(tokens, tok)
	}
	if prev, ok := tokens[len(tokens)-1].(Plain); ok {
		tokens[len(tokens)-1] = Plain{Text: prev.Text + p.Text, Pos: prev.Pos}
		return tokens
	}
	return append(tokens, tok)
}
