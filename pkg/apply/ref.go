package apply

// Ref calls f with ref and returns the same pointer.
func Ref[T any](ref *T, f func(*T)) *T {
	f(ref)
	return ref
}

func RefWithParam[T, P any](ref *T, f func(*T, P), param P) *T {
	f(ref, param)
	return ref
}

func RefWithParams[T, P any](ref *T, f func(*T, P), params []P) *T {
	for _, p := range params {
		f(ref, p)
	}
	return ref
}
