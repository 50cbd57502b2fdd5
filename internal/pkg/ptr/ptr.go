package ptr

func Of[T any](v T) *T {
	return &v
}

// NilIfZero returns nil for the zero value of T.
func NilIfZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
