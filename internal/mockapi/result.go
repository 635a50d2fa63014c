package mockapi

import "github.com/tinytelemetry/dashshell/internal/model"

// AsyncResult is the state of one fetch attempt. Exactly one of Loading,
// Data != nil and Err != nil holds; build values with Pending, Succeeded or
// Failed and replace them wholesale on each attempt.
type AsyncResult[T any] struct {
	Data    *T
	Loading bool
	Err     *model.AppError
}

// Pending is the state while a fetch is in flight.
func Pending[T any]() AsyncResult[T] {
	return AsyncResult[T]{Loading: true}
}

// Succeeded wraps a resolved payload.
func Succeeded[T any](v T) AsyncResult[T] {
	return AsyncResult[T]{Data: &v}
}

// Failed wraps a fetch failure. A nil err is reported as a generic API error
// so the result is never left without a terminal condition.
func Failed[T any](err *model.AppError) AsyncResult[T] {
	if err == nil {
		err = &model.AppError{Message: NetworkErrorMessage, Code: model.CodeAPIError}
	}
	return AsyncResult[T]{Err: err}
}

// Settled reports whether the attempt has finished either way.
func (r AsyncResult[T]) Settled() bool { return !r.Loading }
