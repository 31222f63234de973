// Copyright (c) 2026 JrpcKit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jrpc

import (
	"bytes"
	"encoding/json"
	"errors"
)

// CheckFlags selects which of the independent validations
// [ParseRequestWithChecks] performs on top of the structural ones.
type CheckFlags uint8

const (
	// CheckVersion requires the "jsonrpc" member to be present and
	// equal to "2.0".
	CheckVersion CheckFlags = 1 << iota

	// CheckID requires the "id" member to be present and be a string,
	// an integer number or null. Without it, a missing or invalid id
	// silently resolves to the null id.
	CheckID
)

// CheckAll is the strict default applied by [ParseRequest].
const CheckAll = CheckVersion | CheckID

// CheckNone disables both optional validations.
const CheckNone CheckFlags = 0

// Request is a validated JSON-RPC 2.0 request. A Request value exists
// only if its input passed the checks selected at parse time.
type Request struct {
	ID     ID
	Method string

	// Params holds the raw wire params, nil when the request carried
	// none. When present it is guaranteed to be a JSON object or array.
	Params json.RawMessage
}

// NewRequest constructs a [Request] programmatically, bypassing wire
// validation.
func NewRequest(id ID, method string, params json.RawMessage) Request {
	return Request{
		ID:     id,
		Method: method,
		Params: params,
	}
}

// ParseRequest parses and validates a raw JSON-RPC 2.0 request under
// the strict [CheckAll] policy.
func ParseRequest(data []byte) (Request, error) {
	return ParseRequestWithChecks(data, CheckAll)
}

// ParseRequestWithChecks parses a raw JSON-RPC 2.0 request with a
// caller selected validation strength.
//
// Validation order: the input must be a JSON object; the version tag is
// checked if requested; "method" must be present and be a string;
// "params", if present, must be a JSON object or array; "id" follows
// the [CheckID] rule. Each failure is reported as a distinct error type
// carrying the id and method context already parsed at that point.
func ParseRequestWithChecks(data []byte, checks CheckFlags) (Request, error) {
	obj, err := parseObject(data)
	if err != nil {
		return Request{}, err
	}

	if checks&CheckVersion != 0 {
		if err := validateVersion(obj, obj["id"]); err != nil {
			return Request{}, err
		}
	}

	rawID := obj["id"]

	rawMethod, ok := obj["method"]
	if !ok {
		return Request{}, MethodMissingError{ID: rawID}
	}
	var method string
	if err := json.Unmarshal(rawMethod, &method); err != nil {
		return Request{}, MethodInvalidError{ID: rawID, Method: rawMethod}
	}

	params, err := validateParams(obj["params"])
	if err != nil {
		return Request{}, err
	}

	id := NullID()
	checkID := checks&CheckID != 0
	if rawID == nil {
		if checkID {
			return Request{}, IDMissingError{Method: method}
		}
	} else {
		parsed, err := parseID(rawID)
		if err != nil {
			if checkID {
				return Request{}, err
			}
		} else {
			id = parsed
		}
	}

	return Request{ID: id, Method: method, Params: params}, nil
}

// MarshalJSON implements the [json.Marshaler] interface, always
// emitting the "jsonrpc": "2.0" member.
func (r Request) MarshalJSON() ([]byte, error) {
	type wire struct {
		Version string          `json:"jsonrpc"`
		ID      ID              `json:"id"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params,omitempty"`
	}
	return json.Marshal(wire{
		Version: version,
		ID:      r.ID,
		Method:  r.Method,
		Params:  r.Params,
	})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface by
// delegating to [ParseRequest], so the strict checks apply.
func (r *Request) UnmarshalJSON(data []byte) error {
	req, err := ParseRequest(data)
	if err != nil {
		return err
	}
	*r = req
	return nil
}

const version = "2.0"

// parseObject decodes the input into its top level members,
// distinguishing invalid JSON from valid JSON of the wrong shape.
func parseObject(data []byte) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	err := json.Unmarshal(data, &obj)
	if err == nil {
		// a literal null unmarshals into a nil map without error
		if t := jsonTypeOf(data); t != "object" {
			return nil, RequestShapeError{Type: t}
		}
		return obj, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return nil, RequestShapeError{Type: jsonTypeOf(data)}
	}
	return nil, MalformedError{Cause: err}
}

func validateVersion(obj map[string]json.RawMessage, rawID json.RawMessage) error {
	ver, ok := obj["jsonrpc"]
	if !ok {
		return VersionMissingError{ID: rawID, Method: methodHint(obj)}
	}
	var s string
	if err := json.Unmarshal(ver, &s); err != nil || s != version {
		return VersionInvalidError{ID: rawID, Method: methodHint(obj), Version: ver}
	}
	return nil
}

// validateParams enforces the strict policy that wire params, when
// present, must be a JSON object or array.
func validateParams(raw json.RawMessage) (json.RawMessage, error) {
	if raw == nil {
		return nil, nil
	}
	switch jsonTypeOf(raw) {
	case "object", "array":
		return raw, nil
	default:
		return nil, ParamsShapeError{Type: jsonTypeOf(raw)}
	}
}

// methodHint extracts the method name on a best effort basis for error
// context.
func methodHint(obj map[string]json.RawMessage) string {
	raw, ok := obj["method"]
	if !ok {
		return ""
	}
	var method string
	if err := json.Unmarshal(raw, &method); err != nil {
		return ""
	}
	return method
}

// jsonTypeOf names the JSON type of the first value in raw, or
// "invalid" when raw does not start like any JSON value.
func jsonTypeOf(raw []byte) string {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return "invalid"
	}
	switch c := trimmed[0]; {
	case c == '{':
		return "object"
	case c == '[':
		return "array"
	case c == '"':
		return "string"
	case c == 't' || c == 'f':
		return "boolean"
	case c == 'n':
		return "null"
	case c == '-' || (c >= '0' && c <= '9'):
		return "number"
	default:
		return "invalid"
	}
}
