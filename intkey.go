package fraci

// digitBounds describes the digit/length space the medium-agnostic core
// operates in. Both instantiations (binary and string) reduce to one of
// these: binary fixes d=256, minLen=-128, maxLen=128; string mode derives
// d, minLen, maxLen from the caller's alphabet (§4.1).
type digitBounds struct {
	d      int // number of digits, D. Digit values are indices 0..d-1.
	minLen int // most negative signed length, e.g. -128 or -P.
	maxLen int // most positive signed length, e.g. 128 or L-P.
}

// intKey is the medium-agnostic representation of a key: a signed integer
// length, big-endian magnitude digits (indices into the digit alphabet,
// length always |signedLen|), and fractional digits (also indices).
//
// Every core algorithm (increment and decrement in integer.go, midpoint in
// midpoint.go, keyBetween in key.go, nKeysBetween in nkeys.go) operates
// purely on digit indices and never sees the actual byte or rune a digit
// encodes to. That split keeps the binary and string instantiations from
// duplicating the arithmetic: binary.go and string.go (with alphabet.go's
// tables) only need to translate symbols to indices and back.
type intKey struct {
	signedLen int
	magnitude []int
	frac      []int
}

// zeroIntKey is the key generated first when both bounds are absent:
// integer part <marker for +1><smallest digit>, empty fractional part.
func zeroIntKey() intKey {
	return intKey{signedLen: 1, magnitude: []int{0}}
}

// smallestIntegerKey is the reserved sentinel: most-negative signed length,
// all-smallest magnitude digits, empty fractional part. Per §3 it is never
// a valid fractional index on its own.
func smallestIntegerKey(b digitBounds) intKey {
	return intKey{signedLen: b.minLen, magnitude: make([]int, absInt(b.minLen))}
}

func isSmallestIntegerPart(signedLen int, magnitude []int, b digitBounds) bool {
	if signedLen != b.minLen {
		return false
	}

	for _, dig := range magnitude {
		if dig != 0 {
			return false
		}
	}

	return true
}

// validateIntKey checks the §3 validity invariants against the
// medium-agnostic representation. Symbol resolvability (invariant 1) is
// checked earlier, during decode, since that's medium-specific.
func validateIntKey(k intKey, b digitBounds) error {
	if k.signedLen == 0 || k.signedLen < b.minLen || k.signedLen > b.maxLen {
		return ErrInvalidKey
	}

	if len(k.magnitude) != absInt(k.signedLen) {
		return ErrInvalidKey
	}

	for _, dig := range k.magnitude {
		if dig < 0 || dig >= b.d {
			return ErrInvalidKey
		}
	}

	for _, dig := range k.frac {
		if dig < 0 || dig >= b.d {
			return ErrInvalidKey
		}
	}

	if len(k.frac) > 0 && k.frac[len(k.frac)-1] == 0 {
		return ErrInvalidKey
	}

	if isSmallestIntegerPart(k.signedLen, k.magnitude, b) && len(k.frac) == 0 {
		return ErrInvalidKey
	}

	return nil
}

// compareDigitSlices implements the generalized lexicographic order used
// throughout: equal-length prefixes compare element-wise, and a slice that
// is a strict prefix of another sorts before it (matching plain string/byte
// comparison semantics).
func compareDigitSlices(x, y []int) int {
	n := min(len(x), len(y))

	for i := range n {
		if x[i] != y[i] {
			return cmpInt(x[i], y[i])
		}
	}

	return cmpInt(len(x), len(y))
}

// compareIntPart orders two integer parts: signed length first (marker
// symbols ascend with signed length by construction, see §4.1), then
// magnitude digits.
func compareIntPart(a, b intKey) int {
	if a.signedLen != b.signedLen {
		return cmpInt(a.signedLen, b.signedLen)
	}

	return compareDigitSlices(a.magnitude, b.magnitude)
}

// compareIntKey orders two full keys: integer part, then fractional part.
func compareIntKey(a, b intKey) int {
	if c := compareIntPart(a, b); c != 0 {
		return c
	}

	return compareDigitSlices(a.frac, b.frac)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
