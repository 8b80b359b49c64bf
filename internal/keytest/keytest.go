// Package keytest holds generators and invariant checkers shared by
// fraci's property tests and native fuzz targets, so both exercise the
// same notion of "well-ordered" and derive alphabets from fuzz bytes the
// same way.
package keytest

import "cmp"

// StrictlyAscending reports an error describing the first adjacent pair
// that violates strict ascending order, or nil if keys is well-ordered —
// the invariant every key-generation operation must preserve (§8).
func StrictlyAscending[K cmp.Ordered](keys []K) error {
	for i := 1; i < len(keys); i++ {
		if !(keys[i-1] < keys[i]) {
			return &orderError[K]{i, keys[i-1], keys[i]}
		}
	}

	return nil
}

type orderError[K cmp.Ordered] struct {
	index int
	prev  K
	next  K
}

func (e *orderError[K]) Error() string {
	return "keytest: key at index " + itoa(e.index) + " is not strictly ordered"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	neg := n < 0
	if neg {
		n = -n
	}

	var buf [20]byte

	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}

	if neg {
		i--
		buf[i] = '-'
	}

	return string(buf[i:])
}

// pool is the superset of symbols alphabet generators draw a strictly
// ascending subset from. It is longer than any alphabet NewAlphabet
// requires, so a fuzz seed always has room to pick a valid size.
const pool = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// AlphabetBase derives a strictly ascending rune slice of length
// 4..len(pool) from a fuzz seed byte, for feeding NewAlphabet with
// fuzz-shaped (but always individually valid) inputs. offset lets the
// caller derive two independent bases (digitBase, lengthBase) from two
// different seed bytes without their subsets colliding in a fixed way.
func AlphabetBase(seed byte, offset int) []rune {
	n := 4 + int(seed)%(len(pool)-4+1)
	start := offset % (len(pool) - n + 1)

	return []rune(pool[start : start+n])
}
