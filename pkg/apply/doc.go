// Package apply contains generic helpers that run a function against a value
// and hand the same value back, so mutations can be written inline as part of
// an expression instead of a separate statement with a temporary variable.
//
// Highlights:
// - Apply: call f(&value) once and return value
// - WithParam/WithParams/WithSeq: call a two-argument function (for example a
//   method expression like (*Path).Push) once, or once per parameter in order
// - Ref/RefWithParam/RefWithParams: same, but keep pointer identity
// - Try/TryWithParam/TryWithParams: error-returning variants that stop at the
//   first error and return the partial value with that error untouched
// - Pipe: thread a value through transforms that return a new value
//
// For fluent chaining with a failure track, see package chain.
package apply
