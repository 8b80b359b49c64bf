package fraci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_IncrementMagnitude_Bumps_Rightmost_Digit(t *testing.T) {
	t.Parallel()

	bounds := digitBounds{d: 10, minLen: -3, maxLen: 3}

	got, limit, err := incrementMagnitude(1, []int{0}, bounds)
	require.NoError(t, err)
	require.False(t, limit)
	assert.Equal(t, intKey{signedLen: 1, magnitude: []int{1}}, got)
}

func Test_IncrementMagnitude_Carries_Left(t *testing.T) {
	t.Parallel()

	bounds := digitBounds{d: 10, minLen: -3, maxLen: 3}

	got, limit, err := incrementMagnitude(2, []int{3, 9}, bounds)
	require.NoError(t, err)
	require.False(t, limit)
	assert.Equal(t, intKey{signedLen: 2, magnitude: []int{4, 0}}, got)
}

func Test_IncrementMagnitude_NegativeOne_Returns_Zero(t *testing.T) {
	t.Parallel()

	bounds := digitBounds{d: 10, minLen: -3, maxLen: 3}

	got, limit, err := incrementMagnitude(-1, []int{9}, bounds)
	require.NoError(t, err)
	require.False(t, limit)
	assert.Equal(t, zeroIntKey(), got)
}

func Test_IncrementMagnitude_Overflows_Into_Longer_Length(t *testing.T) {
	t.Parallel()

	bounds := digitBounds{d: 10, minLen: -3, maxLen: 3}

	got, limit, err := incrementMagnitude(2, []int{9, 9}, bounds)
	require.NoError(t, err)
	require.False(t, limit)
	assert.Equal(t, intKey{signedLen: 3, magnitude: []int{0, 0, 0}}, got)
}

func Test_IncrementMagnitude_Reports_Limit_At_MaxLen(t *testing.T) {
	t.Parallel()

	bounds := digitBounds{d: 10, minLen: -3, maxLen: 3}

	_, limit, err := incrementMagnitude(3, []int{9, 9, 9}, bounds)
	require.NoError(t, err)
	assert.True(t, limit)
}

func Test_DecrementMagnitude_Borrows_Right_To_Left(t *testing.T) {
	t.Parallel()

	bounds := digitBounds{d: 10, minLen: -3, maxLen: 3}

	got, limit, err := decrementMagnitude(2, []int{4, 0}, bounds)
	require.NoError(t, err)
	require.False(t, limit)
	assert.Equal(t, intKey{signedLen: 2, magnitude: []int{3, 9}}, got)
}

func Test_DecrementMagnitude_PositiveOne_Returns_Canonical_NegativeOne(t *testing.T) {
	t.Parallel()

	bounds := digitBounds{d: 10, minLen: -3, maxLen: 3}

	got, limit, err := decrementMagnitude(1, []int{0}, bounds)
	require.NoError(t, err)
	require.False(t, limit)
	assert.Equal(t, intKey{signedLen: -1, magnitude: []int{9}}, got)
}

func Test_DecrementMagnitude_Reports_Limit_At_MinLen(t *testing.T) {
	t.Parallel()

	bounds := digitBounds{d: 10, minLen: -3, maxLen: 3}

	_, limit, err := decrementMagnitude(-3, []int{0, 0, 0}, bounds)
	require.NoError(t, err)
	assert.True(t, limit)
}

func Test_IncrementMagnitude_Then_DecrementMagnitude_Roundtrips(t *testing.T) {
	t.Parallel()

	bounds := digitBounds{d: 10, minLen: -3, maxLen: 3}

	start := intKey{signedLen: 2, magnitude: []int{4, 7}}

	inc, limit, err := incrementMagnitude(start.signedLen, start.magnitude, bounds)
	require.NoError(t, err)
	require.False(t, limit)

	dec, limit, err := decrementMagnitude(inc.signedLen, inc.magnitude, bounds)
	require.NoError(t, err)
	require.False(t, limit)
	assert.Equal(t, start, dec)
}
