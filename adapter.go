package fraci

import (
	"context"
	"errors"
)

// Neighbours is the (before, after) pair an adapter hands back to the
// core for a single lookup (§4.8). A nil pointer is the absent bound
// (⊥): Before nil means "cursor is the first row", After nil means
// "cursor is the last row". K is the key medium (BinaryKey or StringKey).
type Neighbours[K any] struct {
	Before *K
	After  *K
}

// NeighbourProvider is the contract external ORM adapters implement so the
// core can ask "what are the two neighbour keys around this cursor"
// without the core ever touching storage (§4.8). Group and cursor are
// opaque tuples of column values; the core never inspects their contents,
// only passes them through.
//
// Adapters MUST filter every lookup by the full group tuple — a cursor
// belonging to a different group must never be returned, or a caller
// could forge positions across groups.
type NeighbourProvider[K any] interface {
	// NeighboursForFirst returns (⊥, firstKey), i.e. Before is always nil.
	// After is nil if the group is empty.
	NeighboursForFirst(ctx context.Context, group []any) (Neighbours[K], error)

	// NeighboursForLast returns (lastKey, ⊥), i.e. After is always nil.
	// Before is nil if the group is empty.
	NeighboursForLast(ctx context.Context, group []any) (Neighbours[K], error)

	// NeighboursForAfter returns (cursorKey, nextKey | ⊥). found is false
	// if cursor does not resolve to a row in group.
	NeighboursForAfter(ctx context.Context, group, cursor []any) (n Neighbours[K], found bool, err error)

	// NeighboursForBefore returns (prevKey | ⊥, cursorKey). found is false
	// if cursor does not resolve to a row in group.
	NeighboursForBefore(ctx context.Context, group, cursor []any) (n Neighbours[K], found bool, err error)
}

// ErrCursorNotFound is returned by the factories' KeyForAfter and
// KeyForBefore helpers (binary.go, string.go) when an adapter reports
// found=false: the cursor does not resolve to a row in
// the given group (or was forged across groups).
var ErrCursorNotFound = errors.New("fraci: cursor not found in group")

// IndexConflictError wraps a storage-level unique-index violation so
// application code can distinguish "consume the next candidate" from
// every other failure without inspecting driver-specific error codes
// (§7). Adapters that surface storage errors through this package should
// wrap them with IndexConflictError; callers test with
// [IsIndexConflictError].
type IndexConflictError struct {
	Err error
}

func (e *IndexConflictError) Error() string {
	if e.Err == nil {
		return "fraci: index conflict"
	}

	return "fraci: index conflict: " + e.Err.Error()
}

func (e *IndexConflictError) Unwrap() error { return e.Err }

// IsIndexConflictError reports whether err is, or wraps, an
// [IndexConflictError].
func IsIndexConflictError(err error) bool {
	var target *IndexConflictError

	return errors.As(err, &target)
}

// resolveNeighbours unpacks a Neighbours pair into the (a, b) bounds
// keyBetween expects, substituting the medium's zero value (⊥) for a nil
// pointer.
func resolveNeighbours[K any](n Neighbours[K]) (a, b K) {
	if n.Before != nil {
		a = *n.Before
	}

	if n.After != nil {
		b = *n.After
	}

	return a, b
}

