// Copyright (c) 2026 JrpcKit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jrpc

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
)

// IDKind enumerates the JSON types an [ID] may hold.
type IDKind int

const (
	// IDNull is the kind of the zero value [ID].
	IDNull IDKind = iota

	// IDString is the kind of an [ID] holding text.
	IDString

	// IDNumber is the kind of an [ID] holding a 64-bit signed integer.
	IDNumber
)

// ID is a JSON-RPC 2.0 request id: a string, a 64-bit signed integer
// or null. The zero value is the null id. ID is comparable and can be
// used as a map key, which makes it suitable as a correlation key for
// callers matching responses back to requests.
type ID struct {
	kind IDKind
	str  string
	num  int64
}

// StringID returns an [ID] holding the given text.
func StringID(s string) ID {
	return ID{kind: IDString, str: s}
}

// NumberID returns an [ID] holding the given integer.
func NumberID(n int64) ID {
	return ID{kind: IDNumber, num: n}
}

// NullID returns the null [ID]. It is equivalent to the zero value.
func NullID() ID {
	return ID{}
}

// RandomID returns a string [ID] holding a freshly generated UUID.
func RandomID() ID {
	return StringID(uuid.NewString())
}

// Kind reports which JSON type the id holds.
func (id ID) Kind() IDKind {
	return id.kind
}

// IsNull reports whether the id is the null id.
func (id ID) IsNull() bool {
	return id.kind == IDNull
}

// String implements the [fmt.Stringer] interface.
func (id ID) String() string {
	switch id.kind {
	case IDString:
		return id.str
	case IDNumber:
		return strconv.FormatInt(id.num, 10)
	default:
		return "null"
	}
}

// MarshalJSON implements the [json.Marshaler] interface.
func (id ID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case IDString:
		return json.Marshal(id.str)
	case IDNumber:
		return strconv.AppendInt(nil, id.num, 10), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
//
// Only strings, integer numbers and null are accepted. Any other JSON
// value, including fractional numbers, fails with [IDInvalidError].
func (id *ID) UnmarshalJSON(data []byte) error {
	parsed, err := parseID(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func parseID(data []byte) (ID, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return ID{}, IDInvalidError{Actual: string(data), Cause: err.Error()}
	}

	switch v := v.(type) {
	case nil:
		return NullID(), nil
	case string:
		return StringID(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return ID{}, IDInvalidError{Actual: v.String(), Cause: "number is not a valid int64"}
		}
		return NumberID(n), nil
	default:
		return ID{}, IDInvalidError{Actual: string(data), Cause: "id must be a string, number or null"}
	}
}
