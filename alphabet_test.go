package fraci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewAlphabet_Rejects_Too_Few_Symbols(t *testing.T) {
	t.Parallel()

	_, err := NewAlphabet([]rune("ba"), []rune("ABCabc"))
	assert.ErrorIs(t, err, ErrInvalidAlphabet)
}

func Test_NewAlphabet_Rejects_Non_Ascending_Symbols(t *testing.T) {
	t.Parallel()

	_, err := NewAlphabet([]rune("0213456789"), []rune("ABCabc"))
	assert.ErrorIs(t, err, ErrInvalidAlphabet)
}

func Test_NewAlphabet_Splits_LengthBase_At_Half(t *testing.T) {
	t.Parallel()

	a, err := NewAlphabet([]rune("0123456789"), []rune("ABCabc"))
	require.NoError(t, err)

	bounds := a.bounds()
	assert.Equal(t, -3, bounds.minLen)
	assert.Equal(t, 3, bounds.maxLen)
	assert.Equal(t, 10, bounds.d)

	marker, ok := a.markerFor(1)
	require.True(t, ok)
	assert.Equal(t, 'a', marker)

	marker, ok = a.markerFor(-3)
	require.True(t, ok)
	assert.Equal(t, 'A', marker)

	signedLen, ok := a.signedLengthOf('c')
	require.True(t, ok)
	assert.Equal(t, 3, signedLen)
}

func Test_NewAlphabet_Shared_Cache_Returns_Same_Instance(t *testing.T) {
	t.Parallel()

	cache := NewAlphabetCache()

	a, err := cache.getOrBuild([]rune("0123456789"), []rune("ABCabc"))
	require.NoError(t, err)

	b, err := cache.getOrBuild([]rune("0123456789"), []rune("ABCabc"))
	require.NoError(t, err)

	assert.Same(t, a, b)
}
