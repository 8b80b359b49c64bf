package fraci

import (
	"context"
	"fmt"
	"strings"
)

// StringKey is a fractional index encoded as a sequence of alphabet
// symbols: one length-marker symbol, then |S| magnitude digit symbols,
// then the fractional digit symbols (§6). Go's natural string comparison
// compares by Unicode code point, so a StringFactory's digitBase and
// lengthBase must be chosen (as validated by [NewAlphabet]) so that
// ascending symbol order matches ascending code-point order — which
// holds automatically since both are required to strictly ascend.
type StringKey string

func decodeStringKey(k StringKey, a *Alphabet) (intKey, error) {
	runes := []rune(string(k))
	if len(runes) == 0 {
		return intKey{}, ErrInvalidKey
	}

	signedLen, ok := a.signedLengthOf(runes[0])
	if !ok {
		return intKey{}, ErrInvalidKey
	}

	n := absInt(signedLen) + 1
	if len(runes) < n {
		return intKey{}, ErrInvalidKey
	}

	magnitude := make([]int, n-1)

	for i, r := range runes[1:n] {
		idx, ok := a.digitIndex(r)
		if !ok {
			return intKey{}, ErrInvalidKey
		}

		magnitude[i] = idx
	}

	frac := make([]int, len(runes)-n)

	for i, r := range runes[n:] {
		idx, ok := a.digitIndex(r)
		if !ok {
			return intKey{}, ErrInvalidKey
		}

		frac[i] = idx
	}

	out := intKey{signedLen: signedLen, magnitude: magnitude, frac: frac}

	if err := validateIntKey(out, a.bounds()); err != nil {
		return intKey{}, err
	}

	return out, nil
}

func encodeStringKey(k intKey, a *Alphabet) (StringKey, error) {
	marker, ok := a.markerFor(k.signedLen)
	if !ok {
		return "", fmt.Errorf("%w: signed length %d has no marker in this alphabet", errInternal, k.signedLen)
	}

	var b strings.Builder

	b.WriteRune(marker)

	for _, dig := range k.magnitude {
		b.WriteRune(a.digitSymbol(dig))
	}

	for _, dig := range k.frac {
		b.WriteRune(a.digitSymbol(dig))
	}

	return StringKey(b.String()), nil
}

// StringFactory generates fractional-index keys encoded over a
// caller-supplied alphabet (§4.7, string mode). The zero value is not
// usable; construct with [NewStringFactory].
type StringFactory struct {
	alphabet   *Alphabet
	maxLength  int
	maxRetries int
}

// StringOptions configures a [StringFactory]. DigitBase and LengthBase are
// required; see [NewAlphabet] for their constraints. Cache defaults to the
// package-level shared cache when nil, so factories built with identical
// bases across a process share one [Alphabet] (§4.1).
type StringOptions struct {
	DigitBase  []rune
	LengthBase []rune
	MaxLength  int
	MaxRetries int
	Cache      *AlphabetCache
}

// NewStringFactory validates opts, builds or reuses the alphabet tables,
// and returns a ready factory.
func NewStringFactory(opts StringOptions) (*StringFactory, error) {
	maxLength, maxRetries, err := normalizeLimits(opts.MaxLength, opts.MaxRetries)
	if err != nil {
		return nil, err
	}

	cache := opts.Cache
	if cache == nil {
		cache = defaultAlphabetCache
	}

	alphabet, err := cache.getOrBuild(opts.DigitBase, opts.LengthBase)
	if err != nil {
		return nil, err
	}

	return &StringFactory{alphabet: alphabet, maxLength: maxLength, maxRetries: maxRetries}, nil
}

// Alphabet returns the factory's resolved alphabet tables.
func (f *StringFactory) Alphabet() *Alphabet { return f.alphabet }

func (f *StringFactory) decodeBounds(a, b StringKey) (*intKey, *intKey, error) {
	var ai, bi *intKey

	if a != "" {
		k, err := decodeStringKey(a, f.alphabet)
		if err != nil {
			return nil, nil, err
		}

		ai = &k
	}

	if b != "" {
		k, err := decodeStringKey(b, f.alphabet)
		if err != nil {
			return nil, nil, err
		}

		bi = &k
	}

	if ai != nil && bi != nil && compareIntKey(*ai, *bi) >= 0 {
		return nil, nil, ErrInvalidInput
	}

	return ai, bi, nil
}

// KeyBetween returns a single base key strictly between a and b (no
// conflict suffix). Pass "" for an absent bound.
func (f *StringFactory) KeyBetween(a, b StringKey) (StringKey, error) {
	ai, bi, err := f.decodeBounds(a, b)
	if err != nil {
		return "", err
	}

	k, err := keyBetween(ai, bi, f.alphabet.bounds())
	if err != nil {
		return "", err
	}

	out, err := encodeStringKey(*k, f.alphabet)
	if err != nil {
		return "", err
	}

	if len([]rune(string(out))) > f.maxLength {
		return "", fmt.Errorf("%w: length %d exceeds %d", ErrMaxLengthExceeded, len(out), f.maxLength)
	}

	return out, nil
}

// NKeysBetween returns n base keys in ascending order strictly between a
// and b.
func (f *StringFactory) NKeysBetween(a, b StringKey, n int) ([]StringKey, error) {
	if n < 0 {
		return nil, ErrInvalidInput
	}

	ai, bi, err := f.decodeBounds(a, b)
	if err != nil {
		return nil, err
	}

	keys, err := nKeysBetween(ai, bi, n, f.alphabet.bounds())
	if err != nil {
		return nil, err
	}

	out := make([]StringKey, len(keys))

	for i, k := range keys {
		enc, err := encodeStringKey(k, f.alphabet)
		if err != nil {
			return nil, err
		}

		if len([]rune(string(enc))) > f.maxLength {
			return nil, fmt.Errorf("%w: length %d exceeds %d", ErrMaxLengthExceeded, len(enc), f.maxLength)
		}

		out[i] = enc
	}

	return out, nil
}

// GenerateKeyBetween returns the lazy, finite, non-restartable candidate
// sequence described in §4.7.
func (f *StringFactory) GenerateKeyBetween(a, b StringKey, skip int) *StringSequence {
	return &StringSequence{factory: f, a: a, b: b, skip: skip, attempt: skip}
}

// GenerateNKeysBetween is the vector form of [StringFactory.GenerateKeyBetween].
func (f *StringFactory) GenerateNKeysBetween(a, b StringKey, n int, skip int) *StringNSequence {
	return &StringNSequence{factory: f, a: a, b: b, n: n, skip: skip, attempt: skip}
}

// KeyForFirst computes the key for a new first row in group, driven by a
// [NeighbourProvider] (§4.8).
func (f *StringFactory) KeyForFirst(ctx context.Context, p NeighbourProvider[StringKey], group []any) (StringKey, error) {
	n, err := p.NeighboursForFirst(ctx, group)
	if err != nil {
		return "", err
	}

	a, b := resolveNeighbours(n)

	return f.KeyBetween(a, b)
}

// KeyForLast computes the key for a new last row in group.
func (f *StringFactory) KeyForLast(ctx context.Context, p NeighbourProvider[StringKey], group []any) (StringKey, error) {
	n, err := p.NeighboursForLast(ctx, group)
	if err != nil {
		return "", err
	}

	a, b := resolveNeighbours(n)

	return f.KeyBetween(a, b)
}

// KeyForAfter computes the key for a new row immediately after cursor.
// Returns [ErrCursorNotFound] if the adapter cannot resolve cursor in group.
func (f *StringFactory) KeyForAfter(ctx context.Context, p NeighbourProvider[StringKey], group, cursor []any) (StringKey, error) {
	n, found, err := p.NeighboursForAfter(ctx, group, cursor)
	if err != nil {
		return "", err
	}

	if !found {
		return "", ErrCursorNotFound
	}

	a, b := resolveNeighbours(n)

	return f.KeyBetween(a, b)
}

// KeyForBefore computes the key for a new row immediately before cursor.
// Returns [ErrCursorNotFound] if the adapter cannot resolve cursor in group.
func (f *StringFactory) KeyForBefore(ctx context.Context, p NeighbourProvider[StringKey], group, cursor []any) (StringKey, error) {
	n, found, err := p.NeighboursForBefore(ctx, group, cursor)
	if err != nil {
		return "", err
	}

	if !found {
		return "", ErrCursorNotFound
	}

	a, b := resolveNeighbours(n)

	return f.KeyBetween(a, b)
}

// StringSequence is the lazy, finite, non-restartable candidate sequence
// returned by [StringFactory.GenerateKeyBetween].
type StringSequence struct {
	factory *StringFactory
	a, b    StringKey
	skip    int
	attempt int
	done    bool
}

// Next returns the next candidate, or ok=false once the sequence is
// exhausted.
func (s *StringSequence) Next() (key StringKey, ok bool, err error) {
	if s.done {
		return "", false, nil
	}

	ai, bi, err := s.factory.decodeBounds(s.a, s.b)
	if err != nil {
		s.done = true

		return "", false, err
	}

	bounds := s.factory.alphabet.bounds()

	anyTooLong := false

	for s.attempt < s.skip+s.factory.maxRetries {
		attempt := s.attempt
		s.attempt++

		cand, err := candidateAt(ai, bi, bounds, attempt)
		if err != nil {
			s.done = true

			return "", false, err
		}

		if encodedLength(cand) > s.factory.maxLength {
			anyTooLong = true

			continue
		}

		out, err := encodeStringKey(cand, s.factory.alphabet)
		if err != nil {
			s.done = true

			return "", false, err
		}

		return out, true, nil
	}

	s.done = true

	if anyTooLong {
		return "", false, fmt.Errorf("%w: exhausted %d candidates", ErrMaxLengthExceeded, s.factory.maxRetries)
	}

	return "", false, nil
}

// StringNSequence is the vector form of [StringSequence], as returned by
// [StringFactory.GenerateNKeysBetween].
type StringNSequence struct {
	factory *StringFactory
	a, b    StringKey
	n       int
	skip    int
	attempt int
	done    bool
}

// Next returns the next candidate vector of n keys, or ok=false once the
// sequence is exhausted.
func (s *StringNSequence) Next() (keys []StringKey, ok bool, err error) {
	if s.done {
		return nil, false, nil
	}

	ai, bi, err := s.factory.decodeBounds(s.a, s.b)
	if err != nil {
		s.done = true

		return nil, false, err
	}

	bounds := s.factory.alphabet.bounds()

	anyTooLong := false

	for s.attempt < s.skip+s.factory.maxRetries {
		attempt := s.attempt
		s.attempt++

		cands, err := candidatesAt(ai, bi, s.n, bounds, attempt)
		if err != nil {
			s.done = true

			return nil, false, err
		}

		tooLong := false

		for _, c := range cands {
			if encodedLength(c) > s.factory.maxLength {
				tooLong = true

				break
			}
		}

		if tooLong {
			anyTooLong = true

			continue
		}

		out := make([]StringKey, len(cands))

		for i, c := range cands {
			enc, err := encodeStringKey(c, s.factory.alphabet)
			if err != nil {
				s.done = true

				return nil, false, err
			}

			out[i] = enc
		}

		return out, true, nil
	}

	s.done = true

	if anyTooLong {
		return nil, false, fmt.Errorf("%w: exhausted %d candidates", ErrMaxLengthExceeded, s.factory.maxRetries)
	}

	return nil, false, nil
}
