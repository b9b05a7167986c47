package chain

import (
	"iter"

	"github.com/ib-77/apply/pkg/apply"
)

// Chain wraps an apply.Result so apply steps can be written fluently
type Chain[T any] struct {
	result apply.Result[T]
}

// Start creates a new chain from an apply.Result
func Start[T any](result apply.Result[T]) *Chain[T] {
	return &Chain[T]{
		result: result,
	}
}

// Of creates a new chain from a value
func Of[T any](value T) *Chain[T] {
	return &Chain[T]{
		result: apply.Success(value),
	}
}

// Result returns the underlying apply.Result
func (c *Chain[T]) Result() apply.Result[T] {
	return c.result
}

// Value returns the current value, partial if a Try step failed
func (c *Chain[T]) Value() T {
	return c.result.Result()
}

func (c *Chain[T]) Err() error {
	return c.result.Err()
}

func (c *Chain[T]) Unwrap() (T, error) {
	return c.result.Result(), c.result.Err()
}

// Apply mutates the value with f
func (c *Chain[T]) Apply(f func(*T)) *Chain[T] {
	if c.result.IsFailure() {
		return c
	}
	return Of(apply.Apply(c.result.Result(), f))
}

// Try mutates the value with f and switches to the failure track if f fails
func (c *Chain[T]) Try(f func(*T) error) *Chain[T] {
	if c.result.IsFailure() {
		return c
	}
	value, err := apply.Try(c.result.Result(), f)
	return Start(apply.FromTry(value, err))
}

// Pipe replaces the value with the output of transforms
func (c *Chain[T]) Pipe(transforms ...func(T) T) *Chain[T] {
	if c.result.IsFailure() {
		return c
	}
	return Of(apply.Pipe(c.result.Result(), transforms...))
}

// WithParam chains apply.WithParam
func WithParam[T, P any](c *Chain[T], f func(*T, P), param P) *Chain[T] {
	if c.result.IsFailure() {
		return c
	}
	return Of(apply.WithParam(c.result.Result(), f, param))
}

// WithParams chains apply.WithParams
func WithParams[T, P any](c *Chain[T], f func(*T, P), params []P) *Chain[T] {
	if c.result.IsFailure() {
		return c
	}
	return Of(apply.WithParams(c.result.Result(), f, params))
}

// WithSeq chains apply.WithSeq
func WithSeq[T, P any](c *Chain[T], f func(*T, P), params iter.Seq[P]) *Chain[T] {
	if c.result.IsFailure() {
		return c
	}
	return Of(apply.WithSeq(c.result.Result(), f, params))
}

// TryWithParam chains apply.TryWithParam
func TryWithParam[T, P any](c *Chain[T], f func(*T, P) error, param P) *Chain[T] {
	if c.result.IsFailure() {
		return c
	}
	value, err := apply.TryWithParam(c.result.Result(), f, param)
	return Start(apply.FromTry(value, err))
}

// TryWithParams chains apply.TryWithParams
func TryWithParams[T, P any](c *Chain[T], f func(*T, P) error, params []P) *Chain[T] {
	if c.result.IsFailure() {
		return c
	}
	value, err := apply.TryWithParams(c.result.Result(), f, params)
	return Start(apply.FromTry(value, err))
}

// Map chains a transformation to another type; a failure is carried over
// without its value.
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	if c.result.IsFailure() {
		return Start(apply.Fail[U](c.result.Err()))
	}
	return Of(onSuccess(c.result.Result()))
}

// Finally collapses the chain into a final value
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(T, error) U) U {
	if c.result.IsFailure() {
		return onFailure(c.result.Result(), c.result.Err())
	}
	return onSuccess(c.result.Result())
}
