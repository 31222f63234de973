// Copyright (c) 2026 JrpcKit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jrpc

import (
	"fmt"
	"reflect"
)

// HandlerError is the type erased carrier for an application error
// value crossing the routing boundary. The router never inspects the
// wrapped value; the application recovers it with [ErrorValue] by
// naming the exact type it returned.
type HandlerError struct {
	value any
	typ   reflect.Type
	text  string
}

// NewHandlerError boxes the given value. Any value is accepted, not
// only [error] implementations, so applications are free to signal
// failure with plain structs or strings.
func NewHandlerError(value any) *HandlerError {
	text := ""
	switch v := value.(type) {
	case error:
		text = v.Error()
	case fmt.Stringer:
		text = v.String()
	default:
		text = fmt.Sprintf("%v", value)
	}
	return &HandlerError{
		value: value,
		typ:   reflect.TypeOf(value),
		text:  text,
	}
}

// Error implements the [error] interface.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler error (%s): %s", e.TypeName(), e.text)
}

// Unwrap returns the wrapped value when it implements [error], making
// the original error reachable through [errors.Is] and [errors.As].
func (e *HandlerError) Unwrap() error {
	err, ok := e.value.(error)
	if !ok {
		return nil
	}
	return err
}

// TypeName returns the name of the wrapped value's type.
func (e *HandlerError) TypeName() string {
	if e.typ == nil {
		return "<nil>"
	}
	return e.typ.String()
}

// ErrorValue recovers the wrapped value if, and only if, T is exactly
// the type the handler returned. Any other type query reports false,
// never a reinterpreted value.
func ErrorValue[T any](e *HandlerError) (T, bool) {
	var zero T
	if e == nil || e.typ != reflect.TypeFor[T]() {
		return zero, false
	}
	v, ok := e.value.(T)
	return v, ok
}
