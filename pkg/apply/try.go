package apply

// Try calls f once with a pointer to value. The error from f is returned as is
// together with value in whatever state f left it.
func Try[T any](value T, f func(*T) error) (T, error) {
	err := f(&value)
	return value, err
}

func TryWithParam[T, P any](value T, f func(*T, P) error, param P) (T, error) {
	err := f(&value, param)
	return value, err
}

// TryWithParams calls f once per element of params in order and stops at the
// first error. The returned value holds the effects of every call made so far,
// including the failing one.
func TryWithParams[T, P any](value T, f func(*T, P) error, params []P) (T, error) {
	for _, p := range params {
		if err := f(&value, p); err != nil {
			return value, err
		}
	}
	return value, nil
}
