package fraci

import (
	"fmt"
	"strings"
)

// Alphabet holds the precomputed digit and length-marker tables for
// string-mode factories (§4.1). It is immutable once built and safe to
// share across any number of [StringFactory] instances — which is exactly
// what [AlphabetCache] does for factories constructed with identical
// symbol sequences.
type Alphabet struct {
	digits    []rune       // index -> digit symbol, len == D
	digitIdx  map[rune]int // digit symbol -> index
	lenSymbol map[int]rune // signed length -> marker symbol
	lenValue  map[rune]int // marker symbol -> signed length
	d         int
	p         int // count of negative-length markers
	l         int // total length-marker count
}

// NewAlphabet validates digitBase and lengthBase and builds their forward
// and reverse tables.
//
// Both sequences must have at least 4 distinct code points in strictly
// ascending order. lengthBase is split per §3: the first ⌊L/2⌋ symbols
// encode negative lengths -P..-1 in order, the remaining L-P symbols
// encode positive lengths 1..L-P. Length 0 is never assigned a symbol.
func NewAlphabet(digitBase, lengthBase []rune) (*Alphabet, error) {
	if err := checkStrictlyAscending(digitBase); err != nil {
		return nil, fmt.Errorf("%w: digitBase: %w", ErrInvalidAlphabet, err)
	}

	if err := checkStrictlyAscending(lengthBase); err != nil {
		return nil, fmt.Errorf("%w: lengthBase: %w", ErrInvalidAlphabet, err)
	}

	a := &Alphabet{
		digits:    append([]rune(nil), digitBase...),
		digitIdx:  make(map[rune]int, len(digitBase)),
		lenSymbol: make(map[int]rune, len(lengthBase)),
		lenValue:  make(map[rune]int, len(lengthBase)),
		d:         len(digitBase),
		l:         len(lengthBase),
	}

	for i, r := range digitBase {
		a.digitIdx[r] = i
	}

	p := len(lengthBase) / 2
	a.p = p

	for i, r := range lengthBase {
		var signedLen int
		if i < p {
			signedLen = -p + i
		} else {
			signedLen = i - p + 1
		}

		a.lenSymbol[signedLen] = r
		a.lenValue[r] = signedLen
	}

	return a, nil
}

// checkStrictlyAscending rejects fewer than 4 symbols and any non-ascending
// adjacent pair (which, by construction, also catches duplicates).
func checkStrictlyAscending(symbols []rune) error {
	if len(symbols) < 4 {
		return fmt.Errorf("need at least 4 symbols, got %d", len(symbols))
	}

	for i := 1; i < len(symbols); i++ {
		if symbols[i-1] >= symbols[i] {
			return fmt.Errorf("symbols must strictly ascend: %q is not < %q at index %d",
				string(symbols[i-1]), string(symbols[i]), i)
		}
	}

	return nil
}

// D returns the number of digit symbols.
func (a *Alphabet) D() int { return a.d }

// bounds returns the digitBounds for this alphabet's length-marker split.
func (a *Alphabet) bounds() digitBounds {
	return digitBounds{
		d:      a.d,
		minLen: -a.p,
		maxLen: a.l - a.p,
	}
}

func (a *Alphabet) digitIndex(r rune) (int, bool) {
	i, ok := a.digitIdx[r]

	return i, ok
}

func (a *Alphabet) digitSymbol(i int) rune {
	return a.digits[i]
}

func (a *Alphabet) markerFor(signedLen int) (rune, bool) {
	r, ok := a.lenSymbol[signedLen]

	return r, ok
}

func (a *Alphabet) signedLengthOf(r rune) (int, bool) {
	n, ok := a.lenValue[r]

	return n, ok
}

// cacheKey returns the string that uniquely identifies this alphabet pair,
// used by [AlphabetCache] to dedupe tables across factories.
func cacheKey(digitBase, lengthBase []rune) string {
	var b strings.Builder

	b.WriteString("string:")
	b.WriteRune(rune(len(digitBase)))
	b.WriteString(string(digitBase))
	b.WriteRune(':')
	b.WriteRune(rune(len(lengthBase)))
	b.WriteString(string(lengthBase))

	return b.String()
}
