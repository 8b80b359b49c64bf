package fraci

import "fmt"

const (
	defaultMaxLength  = 50
	defaultMaxRetries = 5
)

// normalizeLimits applies the documented defaults and rejects
// out-of-range configuration (§4.7, §6).
func normalizeLimits(maxLength, maxRetries int) (int, int, error) {
	if maxLength == 0 {
		maxLength = defaultMaxLength
	}

	if maxLength < 1 {
		return 0, 0, fmt.Errorf("%w: MaxLength must be >= 1, got %d", ErrInvalidInput, maxLength)
	}

	if maxRetries == 0 {
		maxRetries = defaultMaxRetries
	}

	if maxRetries < 1 {
		return 0, 0, fmt.Errorf("%w: MaxRetries must be >= 1, got %d", ErrInvalidInput, maxRetries)
	}

	return maxLength, maxRetries, nil
}

// candidateAt computes the attempt'th candidate for a single-key generation
// sequence (C7): attempt 0 is the plain base key; attempt >= 1 appends the
// deterministic conflict suffix for that attempt to the fractional part, so
// that every retry in a bounded sequence is distinct yet still strictly
// between a and b.
func candidateAt(a, b *intKey, bounds digitBounds, attempt int) (intKey, error) {
	k, err := keyBetween(a, b, bounds)
	if err != nil {
		return intKey{}, err
	}

	if attempt <= 0 {
		return *k, nil
	}

	k.frac = append(cloneDigits(k.frac), suffixDigits(attempt, bounds.d)...)

	return *k, nil
}

// candidatesAt is the vector form used by the N-keys generation sequence:
// one shared suffix is appended to every key's fractional part, preserving
// the n keys' relative order across retries.
func candidatesAt(a, b *intKey, n int, bounds digitBounds, attempt int) ([]intKey, error) {
	keys, err := nKeysBetween(a, b, n, bounds)
	if err != nil {
		return nil, err
	}

	if attempt <= 0 {
		return keys, nil
	}

	suffix := suffixDigits(attempt, bounds.d)
	for i := range keys {
		keys[i].frac = append(cloneDigits(keys[i].frac), suffix...)
	}

	return keys, nil
}

func encodedLength(k intKey) int {
	return 1 + len(k.magnitude) + len(k.frac)
}

// BinarySequence is the lazy, finite, non-restartable candidate sequence
// returned by [BinaryFactory.GenerateKeyBetween]. Call Next repeatedly
// until it reports done; each call that succeeds yields one fresh
// candidate key, never the same value twice.
type BinarySequence struct {
	factory *BinaryFactory
	a, b    BinaryKey
	skip    int
	attempt int
	done    bool
}

// Next returns the next candidate, or ok=false once the sequence is
// exhausted (MaxRetries candidates attempted, starting at attempt skip). A
// non-nil error aborts the sequence permanently; subsequent calls return
// ok=false with a nil error.
func (s *BinarySequence) Next() (key BinaryKey, ok bool, err error) {
	if s.done {
		return nil, false, nil
	}

	ai, bi, err := decodeBinaryBounds(s.a, s.b)
	if err != nil {
		s.done = true

		return nil, false, err
	}

	anyTooLong := false

	for s.attempt < s.skip+s.factory.maxRetries {
		attempt := s.attempt
		s.attempt++

		cand, err := candidateAt(ai, bi, binaryBounds, attempt)
		if err != nil {
			s.done = true

			return nil, false, err
		}

		if encodedLength(cand) > s.factory.maxLength {
			anyTooLong = true

			continue
		}

		return encodeBinaryKey(cand), true, nil
	}

	s.done = true

	if anyTooLong {
		return nil, false, fmt.Errorf("%w: exhausted %d candidates", ErrMaxLengthExceeded, s.factory.maxRetries)
	}

	return nil, false, nil
}

// BinaryNSequence is the vector form of [BinarySequence], as returned by
// [BinaryFactory.GenerateNKeysBetween].
type BinaryNSequence struct {
	factory *BinaryFactory
	a, b    BinaryKey
	n       int
	skip    int
	attempt int
	done    bool
}

// Next returns the next candidate vector of n keys, or ok=false once the
// sequence is exhausted.
func (s *BinaryNSequence) Next() (keys []BinaryKey, ok bool, err error) {
	if s.done {
		return nil, false, nil
	}

	ai, bi, err := decodeBinaryBounds(s.a, s.b)
	if err != nil {
		s.done = true

		return nil, false, err
	}

	anyTooLong := false

	for s.attempt < s.skip+s.factory.maxRetries {
		attempt := s.attempt
		s.attempt++

		cands, err := candidatesAt(ai, bi, s.n, binaryBounds, attempt)
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

		out := make([]BinaryKey, len(cands))
		for i, c := range cands {
			out[i] = encodeBinaryKey(c)
		}

		return out, true, nil
	}

	s.done = true

	if anyTooLong {
		return nil, false, fmt.Errorf("%w: exhausted %d candidates", ErrMaxLengthExceeded, s.factory.maxRetries)
	}

	return nil, false, nil
}
