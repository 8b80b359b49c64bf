package fraci

// midpointFrac implements C3: a fractional digit sequence strictly between
// a and b under the digit-index ordering, where b may be open (upper bound
// absent). Precondition: a < b, or b is open; violation is the caller's
// bug and reported as errInternal rather than re-validated here (the
// factories' bound decoding checks a < b against full keys before key.go
// calls in).
func midpointFrac(a, b []int, bOpen bool, d int) ([]int, error) {
	if !bOpen {
		padded := padDigits(a, len(b))

		prefixLen := commonPrefixLen(padded, b)
		if prefixLen > 0 {
			var aRest []int
			if prefixLen < len(a) {
				aRest = a[prefixLen:]
			}

			bRest := b[prefixLen:]

			rest, err := midpointFrac(aRest, bRest, false, d)
			if err != nil {
				return nil, err
			}

			out := make([]int, 0, prefixLen+len(rest))
			out = append(out, b[:prefixLen]...)
			out = append(out, rest...)

			return out, nil
		}
	}

	aHead := 0
	if len(a) > 0 {
		aHead = a[0]
	}

	bHead := d
	if !bOpen {
		if len(b) == 0 {
			return nil, errInternal
		}

		bHead = b[0]
	}

	diff := bHead - aHead

	switch {
	case diff >= 2:
		return []int{(aHead + bHead) / 2}, nil
	case diff == 1:
		if !bOpen && len(b) > 1 {
			return []int{bHead}, nil
		}

		var aNext []int
		if len(a) > 0 {
			aNext = a[1:]
		}

		rest, err := midpointFrac(aNext, nil, true, d)
		if err != nil {
			return nil, err
		}

		return append([]int{aHead}, rest...), nil
	default:
		// aHead >= bHead: only reachable if the a < b precondition was
		// violated by the caller.
		return nil, errInternal
	}
}

// padDigits returns a copy of digits extended with trailing zeros (the
// smallest digit) up to length n. If digits is already at least n long it
// is returned unchanged (no truncation).
func padDigits(digits []int, n int) []int {
	if len(digits) >= n {
		return digits
	}

	out := make([]int, n)
	copy(out, digits)

	return out
}

func commonPrefixLen(x, y []int) int {
	n := min(len(x), len(y))

	i := 0
	for i < n && x[i] == y[i] {
		i++
	}

	return i
}
