package fraci

import "sync"

// AlphabetCache is the process-local, shared cache described in §4.1 and
// §5: a map from a string that uniquely identifies an alphabet pair to its
// already-built tables, so that two factories constructed with identical
// digitBase/lengthBase share one [Alphabet] instead of rebuilding it.
//
// Entries are insert-only and value-immutable once built, so a race
// between two goroutines both missing the cache and building the same
// alphabet is harmless: both builds produce an identical, deterministic
// value, and only one of them survives in the map. That lets the hot path
// use a plain [sync.Map] instead of a heavier read-write-lock-guarded map.
type AlphabetCache struct {
	tables sync.Map // string -> *Alphabet
}

// NewAlphabetCache returns an empty, ready-to-use cache.
func NewAlphabetCache() *AlphabetCache {
	return &AlphabetCache{}
}

// getOrBuild returns the cached alphabet for (digitBase, lengthBase),
// building and inserting it if absent.
func (c *AlphabetCache) getOrBuild(digitBase, lengthBase []rune) (*Alphabet, error) {
	key := cacheKey(digitBase, lengthBase)

	if v, ok := c.tables.Load(key); ok {
		return v.(*Alphabet), nil //nolint:forcetypeassert // only this package ever stores into tables
	}

	built, err := NewAlphabet(digitBase, lengthBase)
	if err != nil {
		return nil, err
	}

	actual, _ := c.tables.LoadOrStore(key, built)

	return actual.(*Alphabet), nil //nolint:forcetypeassert // only this package ever stores into tables
}

// defaultAlphabetCache is used by [NewStringFactory] when the caller does
// not supply its own [AlphabetCache] — mirroring the teacher's pattern of a
// package-level default collaborator that callers can override via
// configuration (here, the cache option in §4.7) but never must.
var defaultAlphabetCache = NewAlphabetCache() //nolint:gochecknoglobals // process-local, insert-only cache
