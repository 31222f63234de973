// Copyright (c) 2026 JrpcKit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jrpc

import "encoding/json"

// ParamsReader may be implemented by a params type, on its pointer
// receiver, to take full control of its own extraction from the wire
// params. The raw message is nil when the request carried no params.
// Implementations typically perform validation beyond structural
// unmarshaling.
type ParamsReader interface {
	ReadParams(params json.RawMessage) error
}

// ParamsDefaulter is a marker interface. A params type implementing it
// declares that its zero value is a usable default, so absent wire
// params substitute the zero value instead of failing the call with
// [ParamsMissingError]. The method body is expected to be empty.
type ParamsDefaulter interface {
	DefaultParams()
}

// paramsFrom produces the typed params argument for a handler
// invocation.
//
// Order of precedence: a [ParamsReader] implementation wins outright;
// otherwise absent params either substitute the zero value (when P is
// a [ParamsDefaulter]) or fail, and present params are structurally
// unmarshaled into P.
func paramsFrom[P any](raw json.RawMessage) (P, error) {
	var p P
	if pr, ok := any(&p).(ParamsReader); ok {
		return p, pr.ReadParams(raw)
	}

	if raw == nil {
		if _, ok := any(p).(ParamsDefaulter); ok {
			return p, nil
		}
		return p, ParamsMissingError{}
	}

	if err := json.Unmarshal(raw, &p); err != nil {
		return p, ParamsParsingError{Cause: err}
	}
	return p, nil
}
