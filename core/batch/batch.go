package batch

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a chunk size is zero or negative.
var ErrInvalidSize = errors.New("batch: chunk size must be positive")

// Divide splits items into chunks of at most size elements, preserving
// order. Every chunk has exactly size elements except possibly the last.
// An empty input produces no chunks. The returned chunks share backing
// storage with items; callers must not mutate them while the input is
// still in use.
func Divide[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	if len(items) == 0 {
		return nil, nil
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}

	return chunks, nil
}
