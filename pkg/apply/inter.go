package apply

import "time"

type ResultProvider[T any] interface {
	// Result returns the current value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a value or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error of the step that failed
	Err() error
	// IsSuccess returns true if no step failed
	IsSuccess() bool
}

var _ WithError[int] = Result[int]{}
