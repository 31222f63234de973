// Copyright (c) 2026 JrpcKit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jrpc

import (
	"encoding/json"
	"fmt"
)

// CallSuccess is the successful outcome of a routed call. It always
// echoes the id and method the call was made with, so callers can log
// or correlate without extra context.
type CallSuccess struct {
	ID     ID
	Method string

	// Value is the handler's result, already marshaled to JSON.
	Value json.RawMessage
}

// CallError is the failed outcome of a routed call. Like
// [CallSuccess], it always carries the originating id and method, even
// when routing failed before any handler ran.
//
// Err holds the routing error: one of [MethodUnknownError],
// [ParamsParsingError], [ParamsMissingError], [ResourceNotFoundError],
// [ResultMarshalError], or a [*HandlerError] boxing the application
// error returned by the handler.
type CallError struct {
	ID     ID
	Method string
	Err    error
}

// Error implements the [error] interface.
func (e *CallError) Error() string {
	return fmt.Sprintf("call %q (id %s) failed: %s", e.Method, e.ID, e.Err)
}

// Unwrap supports [errors.Is] and [errors.As].
func (e *CallError) Unwrap() error {
	return e.Err
}

// HandlerError returns the boxed application error when the call
// failed inside the handler, or nil for any routing level failure.
func (e *CallError) HandlerError() *HandlerError {
	he, ok := e.Err.(*HandlerError)
	if !ok {
		return nil
	}
	return he
}
