package fraci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ValidateIntKey_Rejects_Invariant_Violations(t *testing.T) {
	t.Parallel()

	bounds := digitBounds{d: 10, minLen: -3, maxLen: 3}

	testCases := []struct {
		name string
		key  intKey
	}{
		{
			name: "ZeroSignedLength",
			key:  intKey{signedLen: 0, magnitude: nil},
		},
		{
			name: "SignedLengthOutOfRange",
			key:  intKey{signedLen: 4, magnitude: []int{0, 0, 0, 0}},
		},
		{
			name: "MagnitudeLengthMismatch",
			key:  intKey{signedLen: 1, magnitude: []int{0, 0}},
		},
		{
			name: "DigitOutOfRange",
			key:  intKey{signedLen: 1, magnitude: []int{10}},
		},
		{
			name: "TrailingSmallestFracDigit",
			key:  intKey{signedLen: 1, magnitude: []int{1}, frac: []int{5, 0}},
		},
		{
			name: "SmallestIntegerSentinel",
			key:  intKey{signedLen: -3, magnitude: []int{0, 0, 0}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := validateIntKey(tc.key, bounds)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func Test_ValidateIntKey_Accepts_Zero_And_SmallestInteger_With_Frac(t *testing.T) {
	t.Parallel()

	bounds := digitBounds{d: 10, minLen: -3, maxLen: 3}

	require.NoError(t, validateIntKey(zeroIntKey(), bounds))

	withFrac := smallestIntegerKey(bounds)
	withFrac.frac = []int{1}
	require.NoError(t, validateIntKey(withFrac, bounds))
}

func Test_CompareIntKey_Orders_By_SignedLength_Then_Magnitude_Then_Frac(t *testing.T) {
	t.Parallel()

	a := intKey{signedLen: 1, magnitude: []int{0}}
	b := intKey{signedLen: 1, magnitude: []int{1}}
	c := intKey{signedLen: 2, magnitude: []int{0, 0}}
	d := intKey{signedLen: 1, magnitude: []int{0}, frac: []int{5}}

	assert.Negative(t, compareIntKey(a, b))
	assert.Positive(t, compareIntKey(b, a))
	assert.Negative(t, compareIntKey(b, c))
	assert.Negative(t, compareIntKey(a, d))
	assert.Zero(t, compareIntKey(a, intKey{signedLen: 1, magnitude: []int{0}}))
}
