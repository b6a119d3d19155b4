package tokenizer

// Transform replaces a Plain token with zero or more tokens.
type Transform func(Plain) []Token

// Traverse applies fn to every Plain token in tokens, descending into trees.
// Trees are rebuilt with the transformed children; Space and Literal tokens
// are kept as is. The input is not modified.
func Traverse(tokens []Token, fn Transform) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		switch t := tok.(type) {
		case Tree:
			t.Children = Traverse(t.Children, fn)
			out = append(out, t)
		case Plain:
			out = append(out, fn(t)...)
		default:
			out = append(out, tok)
		}
	}
	return out
}
