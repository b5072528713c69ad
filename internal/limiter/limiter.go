// Package limiter trims ordered sequences with --limit/--offset/--tail
// semantics. Indexes in the trimmed view keep their original positions so a
// weekday list cut to its tail still reports Thursday as index 4.
package limiter

import (
	"fmt"
)

// Config holds the record-limiting parameters.
type Config struct {
	Limit  int // Show only this many records (0 = unlimited)
	Offset int // Skip the first N records (0 = no skip)
	Tail   int // Show only the last N records (0 = disabled); mutually exclusive with Limit
}

// Validate checks for conflicting flag combinations and returns an error if invalid.
// Rules:
// - Limit and Tail are mutually exclusive
// - If Tail is set, Offset is ignored
// - All numeric values must be non-negative
func (c Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("--limit must be non-negative, got %d", c.Limit)
	}
	if c.Offset < 0 {
		return fmt.Errorf("--offset must be non-negative, got %d", c.Offset)
	}
	if c.Tail < 0 {
		return fmt.Errorf("--tail must be non-negative, got %d", c.Tail)
	}
	if c.Limit > 0 && c.Tail > 0 {
		return fmt.Errorf("--limit and --tail are mutually exclusive")
	}
	return nil
}

// IsActive returns true if any limiting is configured.
func (c Config) IsActive() bool {
	return c.Limit > 0 || c.Offset > 0 || c.Tail > 0
}

// Bounds returns the half-open [start, end) window of a sequence of the
// given length.
func (c Config) Bounds(length int) (int, int) {
	if !c.IsActive() {
		return 0, length
	}

	if c.Tail > 0 {
		start := length - c.Tail
		if start < 0 {
			start = 0
		}
		return start, length
	}

	start := c.Offset
	if start > length {
		start = length
	}
	end := length
	if c.Limit > 0 && start+c.Limit < length {
		end = start + c.Limit
	}
	return start, end
}

// Apply returns the window of items selected by c. The result shares no
// backing array with items.
func Apply[T any](c Config, items []T) []T {
	start, end := c.Bounds(len(items))
	return append([]T{}, items[start:end]...)
}

// Indexed pairs an element with its position in the untrimmed sequence.
type Indexed[T any] struct {
	Index int
	Value T
}

// ApplyIndexed is Apply but keeps each element's original index.
func ApplyIndexed[T any](c Config, items []T) []Indexed[T] {
	start, end := c.Bounds(len(items))
	out := make([]Indexed[T], 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, Indexed[T]{Index: i, Value: items[i]})
	}
	return out
}
