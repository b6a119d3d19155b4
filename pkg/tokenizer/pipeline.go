package tokenizer

// Pipeline chains tokenization passes. Each pass replaces the token
// sequence with a new one; earlier sequences are never modified.
type Pipeline struct {
	tok    *Tokenizer
	tokens []Token
	passes int
}

// Tokenize matches the given bracket pairs (all if none) inside every Plain
// token. Trees found by earlier passes are descended into, not rescanned.
func (p *Pipeline) Tokenize(openers ...Pair) *Pipeline {
	return p.apply("tokenize "+NewPairSet(openers...).String(), func(leaf Plain) []Token {
		return p.tok.TokenizePlain(leaf, openers...)
	})
}

// ExtractLiterals splits quoted literals out of every Plain token.
func (p *Pipeline) ExtractLiterals() *Pipeline {
	return p.apply("literals", ExtractLiterals)
}

// SplitWhitespace splits every Plain token into Plain and Space runs.
func (p *Pipeline) SplitWhitespace() *Pipeline {
	return p.apply("whitespace", SplitWhitespace)
}

// Traverse applies fn to every Plain token.
func (p *Pipeline) Traverse(fn Transform) *Pipeline {
	return p.apply("traverse", fn)
}

func (p *Pipeline) apply(name string, fn Transform) *Pipeline {
	p.tokens = Traverse(p.tokens, fn)
	p.passes++
	p.tok.dump(name, p.tokens)
	return p
}

// Get returns the current token sequence.
func (p *Pipeline) Get() []Token { return p.tokens }

// Passes returns the number of passes applied so far.
func (p *Pipeline) Passes() int { return p.passes }

// String renders the current tokens in Escaped mode.
func (p *Pipeline) String() string { return Stringify(p.tokens, Escaped) }
