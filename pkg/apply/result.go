package apply

import (
	"time"

	"github.com/google/uuid"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	hasResult bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		createdAt: time.Now().UTC(),
		hasResult: true,
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		hasResult: false,
		id:        uuid.New(),
	}
}

// FailWithResult keeps the value a failing step left behind.
func FailWithResult[T any](r T, err error) Result[T] {
	return Result[T]{
		result:    r,
		err:       err,
		createdAt: time.Now().UTC(),
		hasResult: true,
		id:        uuid.New(),
	}
}

// FromTry turns the (value, error) pair of the Try functions into a Result.
func FromTry[T any](r T, err error) Result[T] {
	if err != nil {
		return FailWithResult(r, err)
	}
	return Success(r)
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil && r.hasResult
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

func (r Result[T]) HasResult() bool {
	return r.hasResult
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
