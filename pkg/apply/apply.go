package apply

import "iter"

// Apply calls f exactly once with a pointer to value and returns value.
func Apply[T any](value T, f func(*T)) T {
	f(&value)
	return value
}

// WithParam calls f(&value, param) exactly once and returns value.
func WithParam[T, P any](value T, f func(*T, P), param P) T {
	f(&value, param)
	return value
}

// WithParams calls f once per element of params, in order, each call seeing
// the effects of the previous ones. A nil or empty params leaves value as is.
func WithParams[T, P any](value T, f func(*T, P), params []P) T {
	for _, p := range params {
		f(&value, p)
	}
	return value
}

// WithSeq is WithParams over an iterator.
func WithSeq[T, P any](value T, f func(*T, P), params iter.Seq[P]) T {
	for p := range params {
		f(&value, p)
	}
	return value
}

// Pipe threads value through transforms that return a new value.
func Pipe[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}
