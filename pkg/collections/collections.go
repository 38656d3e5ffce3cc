package collections

// Apply applies the applicator function to each item in the input slice.
func Apply[T, V any](items []T, applicator func(T) V) []V {
	result := make([]V, len(items))
	for i, item := range items {
		result[i] = applicator(item)
	}
	return result
}

// ApplyErr is Apply for fallible applicators. It stops at the first error and
// reports the index of the offending item.
func ApplyErr[T, V any](items []T, applicator func(T) (V, error)) ([]V, int, error) {
	result := make([]V, len(items))
	for i, item := range items {
		v, err := applicator(item)
		if err != nil {
			return nil, i, err
		}
		result[i] = v
	}
	return result, -1, nil
}

// Fit returns a copy of items with exactly n elements: truncated when longer,
// padded with fill(i) when shorter.
func Fit[T any](items []T, n int, fill func(i int) T) []T {
	if n < 0 {
		n = 0
	}
	result := make([]T, n)
	copied := copy(result, items)
	for i := copied; i < n; i++ {
		result[i] = fill(i)
	}
	return result
}
