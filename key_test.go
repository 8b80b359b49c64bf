package fraci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_KeyBetween_Both_Absent_Returns_Zero(t *testing.T) {
	t.Parallel()

	got, err := keyBetween(nil, nil, testBounds)
	require.NoError(t, err)
	assert.Equal(t, zeroIntKey(), *got)
}

func Test_KeyBetween_Lower_Absent_Decrements_Integer_Part(t *testing.T) {
	t.Parallel()

	b := zeroIntKey()

	got, err := keyBetween(nil, &b, testBounds)
	require.NoError(t, err)
	assert.Equal(t, intKey{signedLen: -1, magnitude: []int{9}}, *got)
	assert.Negative(t, compareIntKey(*got, b))
}

func Test_KeyBetween_Lower_Absent_SmallestInteger_Upper_Steps_Fractionally(t *testing.T) {
	t.Parallel()

	b := intKey{signedLen: testBounds.minLen, magnitude: make([]int, 3), frac: []int{5}}

	got, err := keyBetween(nil, &b, testBounds)
	require.NoError(t, err)
	assert.Equal(t, b.signedLen, got.signedLen)
	assert.Equal(t, b.magnitude, got.magnitude)
	assert.Negative(t, compareIntKey(*got, b))
	require.NoError(t, validateIntKey(*got, testBounds))
}

func Test_KeyBetween_Upper_Absent_Increments_Integer_Part(t *testing.T) {
	t.Parallel()

	a := zeroIntKey()

	got, err := keyBetween(&a, nil, testBounds)
	require.NoError(t, err)
	assert.Equal(t, intKey{signedLen: 1, magnitude: []int{1}}, *got)
	assert.Negative(t, compareIntKey(a, *got))
}

func Test_KeyBetween_Both_Present_Adjacent_Integer_Parts_Splits_Fraction(t *testing.T) {
	t.Parallel()

	a := intKey{signedLen: 1, magnitude: []int{0}}
	b := intKey{signedLen: 1, magnitude: []int{1}}

	got, err := keyBetween(&a, &b, testBounds)
	require.NoError(t, err)
	assert.Equal(t, intKey{signedLen: 1, magnitude: []int{0}, frac: []int{5}}, *got)
}

func Test_KeyBetween_All_Produced_Keys_Are_Valid(t *testing.T) {
	t.Parallel()

	cur := zeroIntKey()

	for range 50 {
		next, err := keyBetween(&cur, nil, testBounds)
		require.NoError(t, err)
		require.NoError(t, validateIntKey(*next, testBounds))
		assert.Negative(t, compareIntKey(cur, *next))

		cur = *next
	}
}
