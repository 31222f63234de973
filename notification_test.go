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

func TestParseNotification(t *testing.T) {
	t.Run("will parse a notification with params", func(t *testing.T) {
		n, err := ParseNotification([]byte(`{"jsonrpc":"2.0","method":"log","params":{"level":"info"}}`))
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, "log", n.Method) {
			return
		}
		if !assert.JSONEq(t, `{"level":"info"}`, string(n.Params)) {
			return
		}
	})

	t.Run("will parse a notification without params", func(t *testing.T) {
		n, err := ParseNotification([]byte(`{"jsonrpc":"2.0","method":"ping"}`))
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, "ping", n.Method) {
			return
		}
		if !assert.Nil(t, n.Params) {
			return
		}
	})

	t.Run("will fail", func(t *testing.T) {
		t.Run("if the input carries an id", func(t *testing.T) {
			_, err := ParseNotification([]byte(`{"jsonrpc":"2.0","id":1,"method":"ping"}`))

			var hasID NotificationHasIDError
			if !assert.ErrorAs(t, err, &hasID) {
				return
			}
			if !assert.Equal(t, "ping", hasID.Method) {
				return
			}
			if !assert.Equal(t, json.RawMessage(`1`), hasID.ID) {
				return
			}
		})

		t.Run("if the input carries a null id", func(t *testing.T) {
			_, err := ParseNotification([]byte(`{"jsonrpc":"2.0","id":null,"method":"ping"}`))

			var hasID NotificationHasIDError
			if !assert.ErrorAs(t, err, &hasID) {
				return
			}
		})

		t.Run("if the version tag is missing", func(t *testing.T) {
			_, err := ParseNotification([]byte(`{"method":"ping"}`))

			var missing VersionMissingError
			if !assert.ErrorAs(t, err, &missing) {
				return
			}
		})

		t.Run("if the method is missing", func(t *testing.T) {
			_, err := ParseNotification([]byte(`{"jsonrpc":"2.0"}`))

			var missing MethodMissingError
			if !assert.ErrorAs(t, err, &missing) {
				return
			}
		})

		t.Run("if params is not an object or array", func(t *testing.T) {
			_, err := ParseNotification([]byte(`{"jsonrpc":"2.0","method":"ping","params":5}`))

			var shape ParamsShapeError
			if !assert.ErrorAs(t, err, &shape) {
				return
			}
		})
	})

	t.Run("will round trip a marshaled notification", func(t *testing.T) {
		n := Notification{Method: "log", Params: json.RawMessage(`["a","b"]`)}

		b, err := json.Marshal(n)
		if !assert.Nil(t, err) {
			return
		}

		var parsed Notification
		err = json.Unmarshal(b, &parsed)
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, n, parsed) {
			return
		}
	})
}
