package sanitizer

// Apply runs value through transforms, left to right.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, fn := range transforms {
		value = fn(value)
	}
	return value
}

// Compose stores a transform chain for reuse, e.g. a search key normaliser
// applied to every row of a table.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
