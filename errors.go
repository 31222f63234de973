// Copyright (c) 2026 JrpcKit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jrpc

import (
	"encoding/json"
	"fmt"
)

// MalformedError reports input which is not valid JSON at all.
type MalformedError struct {
	Cause error
}

// Error implements the [error] interface.
func (e MalformedError) Error() string {
	return fmt.Sprintf("malformed json: %s", e.Cause)
}

// Unwrap supports [errors.Is] and [errors.As].
func (e MalformedError) Unwrap() error {
	return e.Cause
}

// RequestShapeError reports input which is valid JSON but not a JSON object.
type RequestShapeError struct {
	Type string
}

// Error implements the [error] interface.
func (e RequestShapeError) Error() string {
	return fmt.Sprintf("request must be a json object, got %s", e.Type)
}

// VersionMissingError reports an absent "jsonrpc" member. The id and
// method fields carry whatever context was parseable, for diagnostics.
type VersionMissingError struct {
	ID     json.RawMessage
	Method string
}

// Error implements the [error] interface.
func (e VersionMissingError) Error() string {
	return `missing "jsonrpc" version member`
}

// VersionInvalidError reports a "jsonrpc" member not equal to "2.0".
type VersionInvalidError struct {
	ID      json.RawMessage
	Method  string
	Version json.RawMessage
}

// Error implements the [error] interface.
func (e VersionInvalidError) Error() string {
	return fmt.Sprintf(`invalid "jsonrpc" version: %s`, e.Version)
}

// MethodMissingError reports an absent "method" member.
type MethodMissingError struct {
	ID json.RawMessage
}

// Error implements the [error] interface.
func (e MethodMissingError) Error() string {
	return `missing "method" member`
}

// MethodInvalidError reports a "method" member which is not a string.
type MethodInvalidError struct {
	ID     json.RawMessage
	Method json.RawMessage
}

// Error implements the [error] interface.
func (e MethodInvalidError) Error() string {
	return fmt.Sprintf(`"method" must be a string, got %s`, e.Method)
}

// IDMissingError reports an absent "id" member under strict id checking.
type IDMissingError struct {
	Method string
}

// Error implements the [error] interface.
func (e IDMissingError) Error() string {
	return `missing "id" member`
}

// IDInvalidError reports an "id" member which is not a string, an
// integer number or null.
type IDInvalidError struct {
	Actual string
	Cause  string
}

// Error implements the [error] interface.
func (e IDInvalidError) Error() string {
	return fmt.Sprintf("invalid id %s: %s", e.Actual, e.Cause)
}

// ParamsShapeError reports a "params" member which is present but
// neither a JSON object nor a JSON array.
type ParamsShapeError struct {
	Type string
}

// Error implements the [error] interface.
func (e ParamsShapeError) Error() string {
	return fmt.Sprintf("params must be a json object or array, got %s", e.Type)
}

// NotificationHasIDError reports a notification carrying an "id"
// member, which the protocol forbids.
type NotificationHasIDError struct {
	Method string
	ID     json.RawMessage
}

// Error implements the [error] interface.
func (e NotificationHasIDError) Error() string {
	return fmt.Sprintf("notification for method %q must not carry an id", e.Method)
}

// MethodUnknownError reports a call for a method with no registered handler.
type MethodUnknownError struct {
	Method string
}

// Error implements the [error] interface.
func (e MethodUnknownError) Error() string {
	return fmt.Sprintf("unknown method: %s", e.Method)
}

// ParamsParsingError reports wire params which failed to unmarshal
// into the params type declared by the bound handler.
type ParamsParsingError struct {
	Cause error
}

// Error implements the [error] interface.
func (e ParamsParsingError) Error() string {
	return fmt.Sprintf("failed to parse params: %s", e.Cause)
}

// Unwrap supports [errors.Is] and [errors.As].
func (e ParamsParsingError) Unwrap() error {
	return e.Cause
}

// ParamsMissingError reports absent wire params for a handler which
// declared a params argument without a usable default.
type ParamsMissingError struct{}

// Error implements the [error] interface.
func (e ParamsMissingError) Error() string {
	return "params missing but requested by handler"
}

// ResourceNotFoundError reports a resource type declared by the bound
// handler which is present in neither the overlay nor the base store.
type ResourceNotFoundError struct {
	Type string
}

// Error implements the [error] interface.
func (e ResourceNotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.Type)
}

// ResultMarshalError reports a handler return value which failed to
// marshal to JSON.
type ResultMarshalError struct {
	Cause error
}

// Error implements the [error] interface.
func (e ResultMarshalError) Error() string {
	return fmt.Sprintf("failed to marshal handler result: %s", e.Cause)
}

// Unwrap supports [errors.Is] and [errors.As].
func (e ResultMarshalError) Unwrap() error {
	return e.Cause
}
