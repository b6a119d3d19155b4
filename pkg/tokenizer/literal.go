package tokenizer

// isQuote reports whether c can open a literal. Escaped quotes never do.
func isQuote(c Char) bool {
	return c.Kind == CharPlain && (c.Value == `"` || c.Value == `'`)
}

// ExtractLiterals splits a Plain token into Plain and Literal tokens.
//
// A literal runs from an unescaped quote to the next character equal to it,
// so an escaped quote or a quote of the other family never closes it. If a
// quote has no match, the rest of the text from the last boundary on is
// returned as a single Plain token.
func ExtractLiterals(p Plain) []Token {
	chars := ParseChars(p.Text)
	offs := charOffsets(chars)

	var out []Token
	last := 0
	for i := 0; i < len(chars); i++ {
		open := chars[i]
		if !isQuote(open) {
			continue
		}
		j := indexChar(chars[i+1:], open)
		if j < 0 {
			break
		}
		j += i + 1

		if i > last {
			out = append(out, Plain{Text: p.Text[offs[last]:offs[i]], Pos: p.Pos + offs[last]})
		}
		out = append(out, Literal{
			Quote:   rune(open.Value[0]),
			Content: append(make([]Char, 0, j-i-1), chars[i+1:j]...),
			Pos:     p.Pos + offs[i],
		})
		last = j + 1
		i = j
	}
	if last < len(chars) {
		out = append(out, Plain{Text: p.Text[offs[last]:], Pos: p.Pos + offs[last]})
	}
	return out
}

func indexChar(chars []Char, c Char) int {
	for i, x := range chars {
		if x == c {
			return i
		}
	}
	return -1
}
