package fraci

// incrementMagnitude implements C2 increment: interpret the magnitude
// digits as a big-endian base-D number and add 1.
//
// It returns (result, limitReached, err). limitReached is true only when
// the integer range is exhausted (no marker exists for the next signed
// length); callers must fall back to fractional expansion in that case,
// per §4.2 and §4.4. This is never an error on its own.
func incrementMagnitude(signedLen int, magnitude []int, b digitBounds) (intKey, bool, error) {
	mag := cloneDigits(magnitude)

	for i := len(mag) - 1; i >= 0; i-- {
		if mag[i] < b.d-1 {
			mag[i]++

			return intKey{signedLen: signedLen, magnitude: mag}, false, nil
		}

		mag[i] = 0
	}

	// Carry exited past every magnitude digit.
	if signedLen == -1 {
		return zeroIntKey(), false, nil
	}

	newLen := signedLen + 1
	if newLen > b.maxLen {
		return intKey{}, true, nil
	}

	return intKey{signedLen: newLen, magnitude: make([]int, absInt(newLen))}, false, nil
}

// decrementMagnitude implements C2 decrement, symmetric to increment: a
// borrow exiting past every digit either flips the sign to the canonical
// -1 integer part (when decrementing zero) or drops to the next,
// more-negative signed length with all-largest magnitude digits.
func decrementMagnitude(signedLen int, magnitude []int, b digitBounds) (intKey, bool, error) {
	mag := cloneDigits(magnitude)

	for i := len(mag) - 1; i >= 0; i-- {
		if mag[i] > 0 {
			mag[i]--

			return intKey{signedLen: signedLen, magnitude: mag}, false, nil
		}

		mag[i] = b.d - 1
	}

	// Borrow exited past every magnitude digit.
	if signedLen == 1 {
		return intKey{signedLen: -1, magnitude: []int{b.d - 1}}, false, nil
	}

	newLen := signedLen - 1
	if newLen < b.minLen {
		return intKey{}, true, nil
	}

	newMag := make([]int, absInt(newLen))
	for i := range newMag {
		newMag[i] = b.d - 1
	}

	return intKey{signedLen: newLen, magnitude: newMag}, false, nil
}

func cloneDigits(digits []int) []int {
	out := make([]int, len(digits))
	copy(out, digits)

	return out
}
