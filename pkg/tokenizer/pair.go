package tokenizer

import "strings"

// Pair identifies a bracket type.
type Pair uint8

const (
	Paren  Pair = iota // ( )
	Square             // [ ]
	Curly              // { }

	numPairs
)

var (
	pairOpen  = [numPairs]byte{'(', '[', '{'}
	pairClose = [numPairs]byte{')', ']', '}'}

	// Indexed by byte; -1 where the byte is not a bracket.
	openers, closers = bracketTables()
)

func bracketTables() (op, cl [256]int8) {
	for i := range op {
		op[i], cl[i] = -1, -1
	}
	for p := Pair(0); p < numPairs; p++ {
		op[pairOpen[p]] = int8(p)
		cl[pairClose[p]] = int8(p)
	}
	return
}

// Open returns the opening bracket of the pair.
func (p Pair) Open() rune { return rune(pairOpen[p]) }

// Close returns the closing bracket of the pair.
func (p Pair) Close() rune { return rune(pairClose[p]) }

func (p Pair) String() string { return string([]rune{p.Open(), p.Close()}) }

// PairOf returns the pair the bracket r opens or closes.
func PairOf(r rune) (Pair, bool) {
	if r < 0 || r > 0xff {
		return 0, false
	}
	if p := openers[r]; p >= 0 {
		return Pair(p), true
	}
	if p := closers[r]; p >= 0 {
		return Pair(p), true
	}
	return 0, false
}

// PairSet is a set of bracket pairs.
type PairSet uint8

// AllPairs contains every bracket pair.
const AllPairs PairSet = 1<<numPairs - 1

// NewPairSet returns the set of the given pairs. No pairs means AllPairs.
func NewPairSet(pairs ...Pair) PairSet {
	if len(pairs) == 0 {
		return AllPairs
	}
	var s PairSet
	for _, p := range pairs {
		if p < numPairs {
			s |= 1 << p
		}
	}
	return s
}

// ParsePairSet builds a set from the brackets in s, e.g. "[(" or "[]".
// Characters that are not brackets are ignored.
func ParsePairSet(s string) PairSet {
	var pairs []Pair
	for _, r := range s {
		if p, ok := PairOf(r); ok {
			pairs = append(pairs, p)
		}
	}
	if len(pairs) == 0 {
		return 0
	}
	return NewPairSet(pairs...)
}

// Has reports whether p is in the set.
func (s PairSet) Has(p Pair) bool { return p < numPairs && s&(1<<p) != 0 }

// Pairs lists the members in Paren, Square, Curly order.
func (s PairSet) Pairs() []Pair {
	var pairs []Pair
	for p := Pair(0); p < numPairs; p++ {
		if s.Has(p) {
			pairs = append(pairs, p)
		}
	}
	return pairs
}

func (s PairSet) String() string {
	var b strings.Builder
	for _, p := range s.Pairs() {
		b.WriteRune(p.Open())
	}
	return b.String()
}
