package batch

import "fmt"

// ByCount splits [in] into contiguous batches of [size] elements, the last batch may be shorter.
// Each batch is passed to [yield] in order, iteration stops at the first error from [yield].
func ByCount[T any](in []T, size int, yield func([]T) error) error {
	if size <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", size)
	}

	for start := 0; start < len(in); start += size {
		end := min(start+size, len(in))
		if err := yield(in[start:end:end]); err != nil {
			return err
		}
	}

	return nil
}

// Count returns the number of batches [ByCount] will yield for [n] elements.
func Count(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}

	return (n + size - 1) / size
}
