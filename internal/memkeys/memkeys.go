// Package memkeys is a reference, in-memory implementation of
// [fraci.NeighbourProvider]. It stands in for a real ORM adapter: a real
// adapter would translate NeighboursForX into two-row database queries
// filtered by group; this one does the same lookup against an in-process
// slice, under a mutex. It is exercised by its own tests; the demo CLI
// does not use it.
package memkeys

import (
	"context"
	"fmt"
	"sync"

	"github.com/kanbanly/fraci"
)

type row[K any] struct {
	cursor []any
	key    K
}

// Store holds rows partitioned by group, each row positioned by a key of
// medium K (fraci.BinaryKey or fraci.StringKey). Less orders two keys the
// same way the medium's natural comparison would (byte or code-point
// order); callers supply it to [New].
type Store[K any] struct {
	mu     sync.RWMutex
	less   func(a, b K) bool
	groups map[string][]row[K]
}

// New returns an empty Store. less must report whether a sorts strictly
// before b under the medium's natural ordering.
func New[K any](less func(a, b K) bool) *Store[K] {
	return &Store[K]{less: less, groups: make(map[string][]row[K])}
}

func tupleKey(tuple []any) string {
	return fmt.Sprint(tuple)
}

// Insert records cursor's position in group at key, keeping the group's
// rows sorted by key. It panics if cursor already exists in group — callers
// are expected to Remove before re-inserting under the same cursor.
func (s *Store[K]) Insert(group, cursor []any, key K) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gk := tupleKey(group)
	ck := tupleKey(cursor)

	rows := s.groups[gk]
	for _, r := range rows {
		if tupleKey(r.cursor) == ck {
			panic(fmt.Sprintf("memkeys: cursor %v already exists in group %v", cursor, group))
		}
	}

	i := 0
	for i < len(rows) && s.less(rows[i].key, key) {
		i++
	}

	rows = append(rows, row[K]{})
	copy(rows[i+1:], rows[i:])
	rows[i] = row[K]{cursor: cursor, key: key}

	s.groups[gk] = rows
}

// Remove deletes cursor's row from group, if present.
func (s *Store[K]) Remove(group, cursor []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gk := tupleKey(group)
	ck := tupleKey(cursor)

	rows := s.groups[gk]
	for i, r := range rows {
		if tupleKey(r.cursor) == ck {
			s.groups[gk] = append(rows[:i], rows[i+1:]...)

			return
		}
	}
}

// NeighboursForFirst implements [fraci.NeighbourProvider].
func (s *Store[K]) NeighboursForFirst(_ context.Context, group []any) (fraci.Neighbours[K], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.groups[tupleKey(group)]
	if len(rows) == 0 {
		return fraci.Neighbours[K]{}, nil
	}

	return fraci.Neighbours[K]{After: &rows[0].key}, nil
}

// NeighboursForLast implements [fraci.NeighbourProvider].
func (s *Store[K]) NeighboursForLast(_ context.Context, group []any) (fraci.Neighbours[K], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.groups[tupleKey(group)]
	if len(rows) == 0 {
		return fraci.Neighbours[K]{}, nil
	}

	return fraci.Neighbours[K]{Before: &rows[len(rows)-1].key}, nil
}

func (s *Store[K]) indexOf(rows []row[K], cursor []any) (int, bool) {
	ck := tupleKey(cursor)

	for i, r := range rows {
		if tupleKey(r.cursor) == ck {
			return i, true
		}
	}

	return 0, false
}

// NeighboursForAfter implements [fraci.NeighbourProvider]. It filters by the
// full group tuple before ever inspecting cursor, so a cursor from another
// group can never be resolved here.
func (s *Store[K]) NeighboursForAfter(_ context.Context, group, cursor []any) (fraci.Neighbours[K], bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.groups[tupleKey(group)]

	i, ok := s.indexOf(rows, cursor)
	if !ok {
		return fraci.Neighbours[K]{}, false, nil
	}

	n := fraci.Neighbours[K]{Before: &rows[i].key}
	if i+1 < len(rows) {
		n.After = &rows[i+1].key
	}

	return n, true, nil
}

// NeighboursForBefore implements [fraci.NeighbourProvider].
func (s *Store[K]) NeighboursForBefore(_ context.Context, group, cursor []any) (fraci.Neighbours[K], bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.groups[tupleKey(group)]

	i, ok := s.indexOf(rows, cursor)
	if !ok {
		return fraci.Neighbours[K]{}, false, nil
	}

	n := fraci.Neighbours[K]{After: &rows[i].key}
	if i > 0 {
		n.Before = &rows[i-1].key
	}

	return n, true, nil
}
