package fraci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NormalizeLimits_Applies_Defaults(t *testing.T) {
	t.Parallel()

	maxLength, maxRetries, err := normalizeLimits(0, 0)
	require.NoError(t, err)
	assert.Equal(t, defaultMaxLength, maxLength)
	assert.Equal(t, defaultMaxRetries, maxRetries)
}

func Test_NormalizeLimits_Rejects_Negative(t *testing.T) {
	t.Parallel()

	_, _, err := normalizeLimits(-1, 5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = normalizeLimits(5, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func Test_BinarySequence_Exhausts_After_MaxRetries(t *testing.T) {
	t.Parallel()

	// Every candidate is at least 2 bytes (marker + 1 magnitude digit), so a
	// MaxLength of 1 rejects every attempt and the sequence exhausts.
	f, err := NewBinaryFactory(BinaryOptions{MaxLength: 1, MaxRetries: 3})
	require.NoError(t, err)

	seq := f.GenerateKeyBetween(nil, nil, 0)

	_, ok, err := seq.Next()
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrMaxLengthExceeded)

	_, ok, err = seq.Next()
	assert.False(t, ok)
	assert.NoError(t, err)
}

func Test_BinarySequence_Normal_Exhaustion_Has_No_Error(t *testing.T) {
	t.Parallel()

	// Every candidate here fits comfortably under MaxLength, so the
	// sequence should run dry after MaxRetries successful candidates
	// with ok=false and no error — ErrMaxLengthExceeded is reserved for
	// a candidate that actually overflowed, not for running out of
	// retries.
	f, err := NewBinaryFactory(BinaryOptions{MaxRetries: 2})
	require.NoError(t, err)

	seq := f.GenerateKeyBetween(nil, nil, 0)

	_, ok, err := seq.Next()
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = seq.Next()
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = seq.Next()
	assert.False(t, ok)
	assert.NoError(t, err)
}

func Test_BinaryNSequence_Shares_One_Suffix_Per_Attempt(t *testing.T) {
	t.Parallel()

	f, err := NewBinaryFactory(BinaryOptions{})
	require.NoError(t, err)

	seq := f.GenerateNKeysBetween(nil, nil, 3, 1)

	keys, ok, err := seq.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, keys, 3)

	for _, k := range keys {
		assert.Equal(t, k[len(k)-1], byte(1), "every key shares the attempt-1 suffix")
	}
}
