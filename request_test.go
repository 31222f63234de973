// Copyright (c) 2026 JrpcKit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jrpc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRequest(t *testing.T) {
	t.Run("will parse a fully valid request", func(t *testing.T) {
		req, err := ParseRequest([]byte(`{"jsonrpc":"2.0","id":1,"method":"echo","params":{"message":"hi"}}`))
		if !assert.Nil(t, err) {
			return
		}

		if !assert.Equal(t, NumberID(1), req.ID) {
			return
		}
		if !assert.Equal(t, "echo", req.Method) {
			return
		}
		if !assert.JSONEq(t, `{"message":"hi"}`, string(req.Params)) {
			return
		}
	})

	t.Run("will parse a request without params", func(t *testing.T) {
		req, err := ParseRequest([]byte(`{"jsonrpc":"2.0","id":"a","method":"ping"}`))
		if !assert.Nil(t, err) {
			return
		}

		if !assert.Equal(t, StringID("a"), req.ID) {
			return
		}
		if !assert.Nil(t, req.Params) {
			return
		}
	})

	t.Run("will parse array params", func(t *testing.T) {
		req, err := ParseRequest([]byte(`{"jsonrpc":"2.0","id":1,"method":"sum","params":[1,2,3]}`))
		if !assert.Nil(t, err) {
			return
		}
		if !assert.JSONEq(t, `[1,2,3]`, string(req.Params)) {
			return
		}
	})

	t.Run("will fail", func(t *testing.T) {
		t.Run("if the input is not valid json", func(t *testing.T) {
			_, err := ParseRequest([]byte(`{"jsonrpc":`))

			var malformed MalformedError
			if !assert.ErrorAs(t, err, &malformed) {
				return
			}
		})

		t.Run("if the input is not a json object", func(t *testing.T) {
			for data, wantType := range map[string]string{
				`[1,2]`:  "array",
				`"text"`: "string",
				`123`:    "number",
				`null`:   "null",
			} {
				_, err := ParseRequest([]byte(data))

				var shape RequestShapeError
				if !assert.ErrorAs(t, err, &shape) {
					return
				}
				if !assert.Equal(t, wantType, shape.Type) {
					return
				}
			}
		})

		t.Run("if the version member is missing", func(t *testing.T) {
			_, err := ParseRequest([]byte(`{"id":1,"method":"echo"}`))

			var missing VersionMissingError
			if !assert.ErrorAs(t, err, &missing) {
				return
			}
			if !assert.Equal(t, "echo", missing.Method) {
				return
			}
			if !assert.Equal(t, json.RawMessage(`1`), missing.ID) {
				return
			}
		})

		t.Run("if the version member is not 2.0", func(t *testing.T) {
			_, err := ParseRequest([]byte(`{"jsonrpc":"1.0","id":1,"method":"echo"}`))

			var invalid VersionInvalidError
			if !assert.ErrorAs(t, err, &invalid) {
				return
			}
			if !assert.Equal(t, json.RawMessage(`"1.0"`), invalid.Version) {
				return
			}
		})

		t.Run("if the method member is missing", func(t *testing.T) {
			_, err := ParseRequest([]byte(`{"jsonrpc":"2.0","id":1}`))

			var missing MethodMissingError
			if !assert.ErrorAs(t, err, &missing) {
				return
			}
		})

		t.Run("if the method member is not a string", func(t *testing.T) {
			_, err := ParseRequest([]byte(`{"jsonrpc":"2.0","id":1,"method":123}`))

			var invalid MethodInvalidError
			if !assert.ErrorAs(t, err, &invalid) {
				return
			}
		})

		t.Run("if the params member is a primitive", func(t *testing.T) {
			_, err := ParseRequest([]byte(`{"jsonrpc":"2.0","id":1,"method":"echo","params":"hi"}`))

			var shape ParamsShapeError
			if !assert.ErrorAs(t, err, &shape) {
				return
			}
			if !assert.Equal(t, "string", shape.Type) {
				return
			}
		})

		t.Run("if the id member is missing", func(t *testing.T) {
			_, err := ParseRequest([]byte(`{"jsonrpc":"2.0","method":"echo"}`))

			var missing IDMissingError
			if !assert.ErrorAs(t, err, &missing) {
				return
			}
			if !assert.Equal(t, "echo", missing.Method) {
				return
			}
		})

		t.Run("if the id member is fractional", func(t *testing.T) {
			_, err := ParseRequest([]byte(`{"jsonrpc":"2.0","id":1.5,"method":"echo"}`))

			var invalid IDInvalidError
			if !assert.ErrorAs(t, err, &invalid) {
				return
			}
		})
	})
}

func TestParseRequestWithChecks(t *testing.T) {
	t.Run("will default a missing id to null", func(t *testing.T) {
		t.Run("if the id check is disabled", func(t *testing.T) {
			req, err := ParseRequestWithChecks([]byte(`{"jsonrpc":"2.0","method":"echo"}`), CheckVersion)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.True(t, req.ID.IsNull()) {
				return
			}
		})
	})

	t.Run("will default an invalid id to null", func(t *testing.T) {
		t.Run("if the id check is disabled", func(t *testing.T) {
			req, err := ParseRequestWithChecks([]byte(`{"jsonrpc":"2.0","id":true,"method":"echo"}`), CheckVersion)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.True(t, req.ID.IsNull()) {
				return
			}
		})
	})

	t.Run("will skip the version check", func(t *testing.T) {
		t.Run("if both checks are disabled", func(t *testing.T) {
			req, err := ParseRequestWithChecks([]byte(`{"method":"echo"}`), CheckNone)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "echo", req.Method) {
				return
			}
			if !assert.True(t, req.ID.IsNull()) {
				return
			}
		})
	})

	t.Run("will still require the method member", func(t *testing.T) {
		_, err := ParseRequestWithChecks([]byte(`{"jsonrpc":"2.0","id":1}`), CheckNone)

		var missing MethodMissingError
		if !assert.ErrorAs(t, err, &missing) {
			return
		}
	})
}

func TestRequest_MarshalJSON(t *testing.T) {
	t.Run("will always emit the version member", func(t *testing.T) {
		req := NewRequest(NumberID(1), "echo", json.RawMessage(`{"message":"hi"}`))

		b, err := json.Marshal(req)
		if !assert.Nil(t, err) {
			return
		}
		if !assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"method":"echo","params":{"message":"hi"}}`, string(b)) {
			return
		}
	})

	t.Run("will omit absent params", func(t *testing.T) {
		req := NewRequest(NumberID(1), "ping", nil)

		b, err := json.Marshal(req)
		if !assert.Nil(t, err) {
			return
		}
		if !assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"method":"ping"}`, string(b)) {
			return
		}
	})

	t.Run("will round trip through unmarshal", func(t *testing.T) {
		req := NewRequest(StringID("abc"), "echo", json.RawMessage(`{"message":"hi"}`))

		b, err := json.Marshal(req)
		if !assert.Nil(t, err) {
			return
		}

		var parsed Request
		err = json.Unmarshal(b, &parsed)
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, req.ID, parsed.ID) {
			return
		}
		if !assert.Equal(t, req.Method, parsed.Method) {
			return
		}
	})
}
