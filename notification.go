// Copyright (c) 2026 JrpcKit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jrpc

import "encoding/json"

// Notification is a validated JSON-RPC 2.0 notification: a request
// without an id, for which no response is expected. Parsing fails if
// the input carries an id.
//
// Dispatching notifications is left to the caller; [Router] treats a
// notification's method and params like any other call.
type Notification struct {
	Method string

	// Params holds the raw wire params, nil when the notification
	// carried none. When present it is guaranteed to be a JSON object
	// or array.
	Params json.RawMessage
}

// ParseNotification parses and validates a raw JSON-RPC 2.0
// notification. The version tag is always checked.
func ParseNotification(data []byte) (Notification, error) {
	obj, err := parseObject(data)
	if err != nil {
		return Notification{}, err
	}

	if err := validateVersion(obj, nil); err != nil {
		return Notification{}, err
	}

	rawMethod, ok := obj["method"]
	if !ok {
		return Notification{}, MethodMissingError{}
	}
	var method string
	if err := json.Unmarshal(rawMethod, &method); err != nil {
		return Notification{}, MethodInvalidError{Method: rawMethod}
	}

	params, err := validateParams(obj["params"])
	if err != nil {
		return Notification{}, err
	}

	if rawID, ok := obj["id"]; ok {
		return Notification{}, NotificationHasIDError{Method: method, ID: rawID}
	}

	return Notification{Method: method, Params: params}, nil
}

// MarshalJSON implements the [json.Marshaler] interface, always
// emitting the "jsonrpc": "2.0" member.
func (n Notification) MarshalJSON() ([]byte, error) {
	type wire struct {
		Version string          `json:"jsonrpc"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params,omitempty"`
	}
	return json.Marshal(wire{
		Version: version,
		Method:  n.Method,
		Params:  n.Params,
	})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface by
// delegating to [ParseNotification].
func (n *Notification) UnmarshalJSON(data []byte) error {
	parsed, err := ParseNotification(data)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
