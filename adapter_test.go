package fraci

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ResolveNeighbours_Both_Nil_Returns_Zero_Values(t *testing.T) {
	t.Parallel()

	a, b := resolveNeighbours(Neighbours[StringKey]{})
	assert.Equal(t, StringKey(""), a)
	assert.Equal(t, StringKey(""), b)
}

func Test_ResolveNeighbours_Unpacks_Present_Bounds(t *testing.T) {
	t.Parallel()

	before := StringKey("a0")
	after := StringKey("a1")

	a, b := resolveNeighbours(Neighbours[StringKey]{Before: &before, After: &after})
	assert.Equal(t, before, a)
	assert.Equal(t, after, b)
}

func Test_IsIndexConflictError_Matches_Wrapped(t *testing.T) {
	t.Parallel()

	base := errors.New("unique constraint violated")
	wrapped := &IndexConflictError{Err: base}

	assert.True(t, IsIndexConflictError(wrapped))
	assert.False(t, IsIndexConflictError(base))
	assert.False(t, IsIndexConflictError(nil))

	assert.ErrorIs(t, wrapped, base)
	assert.Contains(t, wrapped.Error(), base.Error())
}

func Test_IndexConflictError_Nil_Err_Has_Generic_Message(t *testing.T) {
	t.Parallel()

	e := &IndexConflictError{}
	assert.Equal(t, "fraci: index conflict", e.Error())
}

// stubProvider is a minimal NeighbourProvider used to test the
// KeyForFirst/Last/After/Before wiring without a real adapter.
type stubProvider struct {
	first, last   Neighbours[StringKey]
	firstErr      error
	after, before Neighbours[StringKey]
	afterFound    bool
	beforeFound   bool
	afterErr      error
	beforeErr     error
}

func (s *stubProvider) NeighboursForFirst(context.Context, []any) (Neighbours[StringKey], error) {
	return s.first, s.firstErr
}

func (s *stubProvider) NeighboursForLast(context.Context, []any) (Neighbours[StringKey], error) {
	return s.last, nil
}

func (s *stubProvider) NeighboursForAfter(context.Context, []any, []any) (Neighbours[StringKey], bool, error) {
	return s.after, s.afterFound, s.afterErr
}

func (s *stubProvider) NeighboursForBefore(context.Context, []any, []any) (Neighbours[StringKey], bool, error) {
	return s.before, s.beforeFound, s.beforeErr
}

func Test_StringFactory_KeyForFirst_Empty_Group(t *testing.T) {
	t.Parallel()

	f := newTestStringFactory(t)
	p := &stubProvider{}

	got, err := f.KeyForFirst(context.Background(), p, nil)
	require.NoError(t, err)
	assert.Equal(t, StringKey("a0"), got)
}

func Test_StringFactory_KeyForAfter_Cursor_Not_Found(t *testing.T) {
	t.Parallel()

	f := newTestStringFactory(t)
	p := &stubProvider{afterFound: false}

	_, err := f.KeyForAfter(context.Background(), p, nil, []any{"missing"})
	assert.ErrorIs(t, err, ErrCursorNotFound)
}

func Test_StringFactory_KeyForAfter_Propagates_Adapter_Error(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	f := newTestStringFactory(t)
	p := &stubProvider{afterErr: wantErr}

	_, err := f.KeyForAfter(context.Background(), p, nil, []any{"x"})
	assert.ErrorIs(t, err, wantErr)
}

func Test_StringFactory_KeyForBefore_Uses_Resolved_Neighbours(t *testing.T) {
	t.Parallel()

	f := newTestStringFactory(t)

	before := StringKey("a0")
	after := StringKey("a1")

	p := &stubProvider{
		before:      Neighbours[StringKey]{Before: &before, After: &after},
		beforeFound: true,
	}

	got, err := f.KeyForBefore(context.Background(), p, nil, []any{"cur"})
	require.NoError(t, err)
	assert.Equal(t, StringKey("a05"), got)
}
