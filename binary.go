package fraci

import (
	"context"
	"fmt"
)

// BinaryKey is a fractional index encoded as a variable-length octet
// sequence: first byte is the length marker, next |S| bytes are the
// integer-magnitude digits, remaining bytes are the fractional part (§6).
// Natural byte-slice comparison of two BinaryKeys sorts in value order.
type BinaryKey []byte

// binaryBounds is fixed per §3: digits are the 256 octet values in
// natural order; the marker byte is split the same way a string-mode
// lengthBase of 256 symbols would be, with P=128.
var binaryBounds = digitBounds{d: 256, minLen: -128, maxLen: 128} //nolint:gochecknoglobals // immutable, fixed by spec

const binaryLengthSplit = 128

func binaryMarkerForLength(signedLen int) byte {
	if signedLen < 0 {
		return byte(signedLen + binaryLengthSplit)
	}

	return byte(signedLen + binaryLengthSplit - 1)
}

func binarySignedLengthOf(marker byte) int {
	v := int(marker)
	if v < binaryLengthSplit {
		return v - binaryLengthSplit
	}

	return v - binaryLengthSplit + 1
}

func decodeBinaryKey(k BinaryKey) (intKey, error) {
	if len(k) == 0 {
		return intKey{}, ErrInvalidKey
	}

	signedLen := binarySignedLengthOf(k[0])

	n := absInt(signedLen) + 1
	if len(k) < n {
		return intKey{}, ErrInvalidKey
	}

	magnitude := make([]int, n-1)
	for i, b := range k[1:n] {
		magnitude[i] = int(b)
	}

	frac := make([]int, len(k)-n)
	for i, b := range k[n:] {
		frac[i] = int(b)
	}

	out := intKey{signedLen: signedLen, magnitude: magnitude, frac: frac}

	if err := validateIntKey(out, binaryBounds); err != nil {
		return intKey{}, err
	}

	return out, nil
}

func encodeBinaryKey(k intKey) BinaryKey {
	out := make(BinaryKey, 0, 1+len(k.magnitude)+len(k.frac))
	out = append(out, binaryMarkerForLength(k.signedLen))

	for _, dig := range k.magnitude {
		out = append(out, byte(dig))
	}

	for _, dig := range k.frac {
		out = append(out, byte(dig))
	}

	return out
}

// BinaryFactory generates fractional-index keys encoded over raw octets
// (§4.7, binary mode). The zero value is not usable; construct with
// [NewBinaryFactory].
type BinaryFactory struct {
	maxLength  int
	maxRetries int
}

// BinaryOptions configures a [BinaryFactory]. Zero values fall back to the
// documented defaults (MaxLength 50, MaxRetries 5).
type BinaryOptions struct {
	MaxLength  int
	MaxRetries int
}

// NewBinaryFactory validates opts and returns a ready factory. Binary mode
// has no alphabet to validate, so this never returns ErrInvalidAlphabet.
func NewBinaryFactory(opts BinaryOptions) (*BinaryFactory, error) {
	maxLength, maxRetries, err := normalizeLimits(opts.MaxLength, opts.MaxRetries)
	if err != nil {
		return nil, err
	}

	return &BinaryFactory{maxLength: maxLength, maxRetries: maxRetries}, nil
}

// KeyBetween returns a single base key strictly between a and b (no
// conflict suffix), applying the factory's MaxLength ceiling. Pass nil for
// an absent bound.
func (f *BinaryFactory) KeyBetween(a, b BinaryKey) (BinaryKey, error) {
	ai, bi, err := decodeBinaryBounds(a, b)
	if err != nil {
		return nil, err
	}

	k, err := keyBetween(ai, bi, binaryBounds)
	if err != nil {
		return nil, err
	}

	out := encodeBinaryKey(*k)
	if len(out) > f.maxLength {
		return nil, fmt.Errorf("%w: length %d exceeds %d", ErrMaxLengthExceeded, len(out), f.maxLength)
	}

	return out, nil
}

// NKeysBetween returns n base keys in ascending order strictly between a
// and b. See [BinaryFactory.KeyBetween] for bound and length semantics.
func (f *BinaryFactory) NKeysBetween(a, b BinaryKey, n int) ([]BinaryKey, error) {
	if n < 0 {
		return nil, ErrInvalidInput
	}

	ai, bi, err := decodeBinaryBounds(a, b)
	if err != nil {
		return nil, err
	}

	keys, err := nKeysBetween(ai, bi, n, binaryBounds)
	if err != nil {
		return nil, err
	}

	out := make([]BinaryKey, len(keys))

	for i, k := range keys {
		enc := encodeBinaryKey(k)
		if len(enc) > f.maxLength {
			return nil, fmt.Errorf("%w: length %d exceeds %d", ErrMaxLengthExceeded, len(enc), f.maxLength)
		}

		out[i] = enc
	}

	return out, nil
}

// GenerateKeyBetween returns the lazy, finite, non-restartable candidate
// sequence described in §4.7: the candidates for attempts skip through
// skip+maxRetries-1, where attempt 0 is the base key and every later
// attempt appends its own distinct conflict suffix.
func (f *BinaryFactory) GenerateKeyBetween(a, b BinaryKey, skip int) *BinarySequence {
	return &BinarySequence{factory: f, a: a, b: b, skip: skip, attempt: skip}
}

// GenerateNKeysBetween is the vector form of [BinaryFactory.GenerateKeyBetween]:
// each yield is a full vector of n keys sharing one conflict suffix, so
// their relative order is preserved across retries.
func (f *BinaryFactory) GenerateNKeysBetween(a, b BinaryKey, n int, skip int) *BinaryNSequence {
	return &BinaryNSequence{factory: f, a: a, b: b, n: n, skip: skip, attempt: skip}
}

// KeyForFirst computes the key for a new first row in group, driven by a
// [NeighbourProvider] (§4.8).
func (f *BinaryFactory) KeyForFirst(ctx context.Context, p NeighbourProvider[BinaryKey], group []any) (BinaryKey, error) {
	n, err := p.NeighboursForFirst(ctx, group)
	if err != nil {
		return nil, err
	}

	a, b := resolveNeighbours(n)

	return f.KeyBetween(a, b)
}

// KeyForLast computes the key for a new last row in group.
func (f *BinaryFactory) KeyForLast(ctx context.Context, p NeighbourProvider[BinaryKey], group []any) (BinaryKey, error) {
	n, err := p.NeighboursForLast(ctx, group)
	if err != nil {
		return nil, err
	}

	a, b := resolveNeighbours(n)

	return f.KeyBetween(a, b)
}

// KeyForAfter computes the key for a new row immediately after cursor.
// Returns [ErrCursorNotFound] if the adapter cannot resolve cursor in group.
func (f *BinaryFactory) KeyForAfter(ctx context.Context, p NeighbourProvider[BinaryKey], group, cursor []any) (BinaryKey, error) {
	n, found, err := p.NeighboursForAfter(ctx, group, cursor)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, ErrCursorNotFound
	}

	a, b := resolveNeighbours(n)

	return f.KeyBetween(a, b)
}

// KeyForBefore computes the key for a new row immediately before cursor.
// Returns [ErrCursorNotFound] if the adapter cannot resolve cursor in group.
func (f *BinaryFactory) KeyForBefore(ctx context.Context, p NeighbourProvider[BinaryKey], group, cursor []any) (BinaryKey, error) {
	n, found, err := p.NeighboursForBefore(ctx, group, cursor)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, ErrCursorNotFound
	}

	a, b := resolveNeighbours(n)

	return f.KeyBetween(a, b)
}

func decodeBinaryBounds(a, b BinaryKey) (*intKey, *intKey, error) {
	var ai, bi *intKey

	if a != nil {
		k, err := decodeBinaryKey(a)
		if err != nil {
			return nil, nil, err
		}

		ai = &k
	}

	if b != nil {
		k, err := decodeBinaryKey(b)
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
