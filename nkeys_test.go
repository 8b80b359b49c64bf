package fraci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBounds = digitBounds{d: 10, minLen: -3, maxLen: 3}

func Test_NKeysBetween_Zero_Returns_Empty(t *testing.T) {
	t.Parallel()

	got, err := nKeysBetween(nil, nil, 0, testBounds)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func Test_NKeysBetween_One_Matches_KeyBetween(t *testing.T) {
	t.Parallel()

	got, err := nKeysBetween(nil, nil, 1, testBounds)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, zeroIntKey(), got[0])
}

func Test_NKeysBetween_Forward_When_Upper_Open(t *testing.T) {
	t.Parallel()

	got, err := nKeysBetween(nil, nil, 5, testBounds)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assertStrictlyAscending(t, got)
}

func Test_NKeysBetween_Backward_When_Lower_Open(t *testing.T) {
	t.Parallel()

	upper := zeroIntKey()

	got, err := nKeysBetween(nil, &upper, 4, testBounds)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assertStrictlyAscending(t, got)

	for _, k := range got {
		assert.Negative(t, compareIntKey(k, upper))
	}
}

func Test_NKeysBetween_Bisects_When_Both_Bounded(t *testing.T) {
	t.Parallel()

	lower := intKey{signedLen: 1, magnitude: []int{0}}
	upper := intKey{signedLen: 1, magnitude: []int{5}}

	got, err := nKeysBetween(&lower, &upper, 7, testBounds)
	require.NoError(t, err)
	require.Len(t, got, 7)
	assertStrictlyAscending(t, got)

	for _, k := range got {
		assert.Negative(t, compareIntKey(lower, k))
		assert.Negative(t, compareIntKey(k, upper))
	}
}

func assertStrictlyAscending(t *testing.T, keys []intKey) {
	t.Helper()

	for i := 1; i < len(keys); i++ {
		assert.Negativef(t, compareIntKey(keys[i-1], keys[i]), "key %d not strictly before key %d", i-1, i)
	}
}
