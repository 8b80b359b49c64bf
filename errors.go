package fraci

import "errors"

// Sentinel errors returned by the core. Check with [errors.Is]; all errors
// the core returns wrap one of these so callers can branch on kind without
// inspecting message text.
var (
	// ErrInvalidAlphabet is returned by [NewAlphabet] and the string-mode
	// factory constructors when digitBase or lengthBase violates the
	// minimum-4, strictly-ascending, no-duplicate-symbol constraint.
	ErrInvalidAlphabet = errors.New("fraci: invalid alphabet")

	// ErrInvalidKey is returned when a key argument is not a valid
	// fractional index: unresolvable length marker, too short for its
	// declared integer part, a non-digit symbol, or the reserved
	// smallest-integer sentinel.
	ErrInvalidKey = errors.New("fraci: invalid key")

	// ErrInvalidInput is returned when bounds are out of order (a >= b with
	// both present) or n < 0 for the N-key generator.
	ErrInvalidInput = errors.New("fraci: invalid input")

	// ErrMaxLengthExceeded is returned when a candidate key would exceed
	// the factory's configured MaxLength.
	ErrMaxLengthExceeded = errors.New("fraci: max length exceeded")

	// errLimitReached is internal and names integer-range exhaustion. The
	// integer codec (increment/decrement) does not return it: it reports
	// exhaustion through its limitReached result, which [keyBetween]
	// handles via the fractional fallback, so it never escapes the package.
	errLimitReached = errors.New("fraci: integer limit reached")

	// errInternal indicates an invariant the package believes unreachable
	// was violated. Seeing this means there is a bug in fraci itself, not
	// in caller input.
	errInternal = errors.New("fraci: internal invariant violated")
)
