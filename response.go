// Copyright (c) 2026 JrpcKit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jrpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     int64 = -32700
	CodeInvalidRequest int64 = -32600
	CodeMethodNotFound int64 = -32601
	CodeInvalidParams  int64 = -32602
	CodeInternalError  int64 = -32603
)

// Error is the JSON-RPC 2.0 error object. Message is always one of the
// short standard descriptions; any internal detail lives in Data.
type Error struct {
	Code    int64           `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Error implements the [error] interface.
func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// ErrorFrom maps any routing or parsing error onto a wire [Error] with
// the matching standard code. The mapping is total: unrecognized errors
// fall back to the internal error code. The error's own text is carried
// in the Data field, never in Message.
func ErrorFrom(err error) *Error {
	var ce *CallError
	if errors.As(err, &ce) {
		return ErrorFrom(ce.Err)
	}

	code := CodeInternalError
	message := "Internal error"
	switch err.(type) {
	case MalformedError:
		code, message = CodeParseError, "Parse error"
	case RequestShapeError, VersionMissingError, VersionInvalidError,
		MethodMissingError, MethodInvalidError, IDMissingError,
		IDInvalidError, ParamsShapeError, NotificationHasIDError,
		ResponseContentError:
		code, message = CodeInvalidRequest, "Invalid Request"
	case MethodUnknownError:
		code, message = CodeMethodNotFound, "Method not found"
	case ParamsParsingError, ParamsMissingError:
		code, message = CodeInvalidParams, "Invalid params"
	}

	data, merr := json.Marshal(err.Error())
	if merr != nil {
		data = nil
	}
	return &Error{Code: code, Message: message, Data: data}
}

// Response is a JSON-RPC 2.0 response: either a success carrying a
// result or a failure carrying an [Error], never both. The zero Err
// field marks success.
type Response struct {
	ID     ID
	Result json.RawMessage
	Err    *Error
}

// NewResponse converts a [CallSuccess] into a success [Response].
func NewResponse(s CallSuccess) Response {
	return Response{ID: s.ID, Result: s.Value}
}

// NewErrorResponse builds an error [Response] for the given id,
// mapping err through [ErrorFrom].
func NewErrorResponse(id ID, err error) Response {
	return Response{ID: id, Err: ErrorFrom(err)}
}

// ResponseFrom converts a call outcome, as returned by [Router.Call],
// into the wire [Response]. It is designed to take the call expression
// directly:
//
//	resp := jrpc.ResponseFrom(router.Call(ctx, req))
func ResponseFrom(s CallSuccess, err error) Response {
	if err == nil {
		return NewResponse(s)
	}
	var ce *CallError
	if errors.As(err, &ce) {
		return NewErrorResponse(ce.ID, ce.Err)
	}
	return NewErrorResponse(NullID(), err)
}

// IsSuccess reports whether the response carries a result.
func (r Response) IsSuccess() bool {
	return r.Err == nil
}

// MarshalJSON implements the [json.Marshaler] interface, emitting
// exactly one of the "result" and "error" members.
func (r Response) MarshalJSON() ([]byte, error) {
	if r.Err != nil {
		type wire struct {
			Version string `json:"jsonrpc"`
			ID      ID     `json:"id"`
			Err     *Error `json:"error"`
		}
		return json.Marshal(wire{Version: version, ID: r.ID, Err: r.Err})
	}

	result := r.Result
	if result == nil {
		result = json.RawMessage("null")
	}
	type wire struct {
		Version string          `json:"jsonrpc"`
		ID      ID              `json:"id"`
		Result  json.RawMessage `json:"result"`
	}
	return json.Marshal(wire{Version: version, ID: r.ID, Result: result})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface by
// delegating to [ParseResponse].
func (r *Response) UnmarshalJSON(data []byte) error {
	parsed, err := ParseResponse(data)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ResponseContentError reports a response carrying both or neither of
// the "result" and "error" members.
type ResponseContentError struct {
	HasResult bool
	HasError  bool
}

// Error implements the [error] interface.
func (e ResponseContentError) Error() string {
	if e.HasResult && e.HasError {
		return `response must not carry both "result" and "error"`
	}
	return `response must carry one of "result" or "error"`
}

// ParseResponse parses and validates a raw JSON-RPC 2.0 response,
// typically on the client side of a connection. The version tag and id
// are always required, and exactly one of "result" and "error" must be
// present.
func ParseResponse(data []byte) (Response, error) {
	obj, err := parseObject(data)
	if err != nil {
		return Response{}, err
	}

	if err := validateVersion(obj, obj["id"]); err != nil {
		return Response{}, err
	}

	rawID, ok := obj["id"]
	if !ok {
		return Response{}, IDMissingError{}
	}
	id, err := parseID(rawID)
	if err != nil {
		return Response{}, err
	}

	result, hasResult := obj["result"]
	rawErr, hasError := obj["error"]
	if hasResult == hasError {
		return Response{}, ResponseContentError{HasResult: hasResult, HasError: hasError}
	}

	if hasResult {
		return Response{ID: id, Result: result}, nil
	}

	var wireErr Error
	if err := json.Unmarshal(rawErr, &wireErr); err != nil {
		return Response{}, MalformedError{Cause: err}
	}
	return Response{ID: id, Err: &wireErr}, nil
}
