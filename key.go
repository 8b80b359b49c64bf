package fraci

// keyBetween implements C4: a single base key (no conflict suffix) strictly
// between a and b, or an error. a and b are nil to mean the absent bound
// (⊥ in §4.4). Callers must have already validated a and b individually
// and, if both present, that a < b — see decodeBinaryBounds in binary.go
// and StringFactory.decodeBounds in string.go.
func keyBetween(a, b *intKey, bounds digitBounds) (*intKey, error) {
	switch {
	case a == nil && b == nil:
		k := zeroIntKey()

		return &k, nil

	case a == nil:
		return keyBeforeFirst(*b, bounds)

	case b == nil:
		return keyAfterLast(*a, bounds)

	default:
		return keyStrictlyBetween(*a, *b, bounds)
	}
}

func keyBeforeFirst(b intKey, bounds digitBounds) (*intKey, error) {
	bInt := intKey{signedLen: b.signedLen, magnitude: b.magnitude}

	if isSmallestIntegerPart(bInt.signedLen, bInt.magnitude, bounds) {
		mid, err := midpointFrac(nil, b.frac, false, bounds.d)
		if err != nil {
			return nil, err
		}

		return &intKey{signedLen: bInt.signedLen, magnitude: bInt.magnitude, frac: mid}, nil
	}

	if len(b.frac) > 0 {
		return &intKey{signedLen: bInt.signedLen, magnitude: bInt.magnitude}, nil
	}

	dec, limit, err := decrementMagnitude(bInt.signedLen, bInt.magnitude, bounds)
	if err != nil {
		return nil, err
	}

	if limit {
		// Unreachable: the smallest-integer case above already handles the
		// one input for which decrementing could run out of range.
		return nil, errInternal
	}

	if isSmallestIntegerPart(dec.signedLen, dec.magnitude, bounds) {
		dec.frac = []int{bounds.d - 1}
	}

	return &dec, nil
}

func keyAfterLast(a intKey, bounds digitBounds) (*intKey, error) {
	aInt := intKey{signedLen: a.signedLen, magnitude: a.magnitude}

	inc, limit, err := incrementMagnitude(aInt.signedLen, aInt.magnitude, bounds)
	if err != nil {
		return nil, err
	}

	if !limit {
		return &intKey{signedLen: inc.signedLen, magnitude: inc.magnitude}, nil
	}

	mid, err := midpointFrac(a.frac, nil, true, bounds.d)
	if err != nil {
		return nil, err
	}

	return &intKey{signedLen: aInt.signedLen, magnitude: aInt.magnitude, frac: mid}, nil
}

func keyStrictlyBetween(a, b intKey, bounds digitBounds) (*intKey, error) {
	aInt := intKey{signedLen: a.signedLen, magnitude: a.magnitude}
	bInt := intKey{signedLen: b.signedLen, magnitude: b.magnitude}

	if compareIntPart(aInt, bInt) == 0 {
		mid, err := midpointFrac(a.frac, b.frac, false, bounds.d)
		if err != nil {
			return nil, err
		}

		return &intKey{signedLen: aInt.signedLen, magnitude: aInt.magnitude, frac: mid}, nil
	}

	inc, limit, err := incrementMagnitude(aInt.signedLen, aInt.magnitude, bounds)
	if err != nil {
		return nil, err
	}

	if !limit {
		c := intKey{signedLen: inc.signedLen, magnitude: inc.magnitude}
		if compareIntPart(c, bInt) < 0 {
			return &c, nil
		}
	}

	mid, err := midpointFrac(a.frac, nil, true, bounds.d)
	if err != nil {
		return nil, err
	}

	return &intKey{signedLen: aInt.signedLen, magnitude: aInt.magnitude, frac: mid}, nil
}
