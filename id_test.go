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

func TestID_MarshalJSON(t *testing.T) {
	t.Run("will serialize each kind to its json value", func(t *testing.T) {
		ids := []ID{
			StringID("id-1"),
			StringID(""),
			NumberID(123),
			NullID(),
		}
		expected := []string{`"id-1"`, `""`, `123`, `null`}

		for i, id := range ids {
			b, err := json.Marshal(id)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, expected[i], string(b)) {
				return
			}
		}
	})
}

func TestID_UnmarshalJSON(t *testing.T) {
	t.Run("will round trip every kind", func(t *testing.T) {
		ids := []ID{
			StringID("id-1"),
			NumberID(123),
			NullID(),
		}

		for _, id := range ids {
			b, err := json.Marshal(id)
			if !assert.Nil(t, err) {
				return
			}

			var parsed ID
			err = json.Unmarshal(b, &parsed)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, id, parsed) {
				return
			}
		}
	})

	t.Run("will fail", func(t *testing.T) {
		t.Run("if the value is not a string, number or null", func(t *testing.T) {
			for _, data := range []string{`true`, `[1,2]`, `{"a":1}`} {
				var id ID
				err := json.Unmarshal([]byte(data), &id)

				var invalid IDInvalidError
				if !assert.ErrorAs(t, err, &invalid) {
					return
				}
			}
		})

		t.Run("if the number is fractional", func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(`123.45`), &id)

			var invalid IDInvalidError
			if !assert.ErrorAs(t, err, &invalid) {
				return
			}
		})
	})
}

func TestID_ZeroValue(t *testing.T) {
	t.Run("will be the null id", func(t *testing.T) {
		var id ID
		if !assert.True(t, id.IsNull()) {
			return
		}
		if !assert.Equal(t, IDNull, id.Kind()) {
			return
		}
		if !assert.Equal(t, "null", id.String()) {
			return
		}
	})
}

func TestID_Comparable(t *testing.T) {
	t.Run("will work as a map key", func(t *testing.T) {
		seen := map[ID]int{
			StringID("a"): 1,
			NumberID(2):   2,
			NullID():      3,
		}

		if !assert.Equal(t, 1, seen[StringID("a")]) {
			return
		}
		if !assert.Equal(t, 2, seen[NumberID(2)]) {
			return
		}
		if !assert.Equal(t, 3, seen[ID{}]) {
			return
		}
	})
}

func TestRandomID(t *testing.T) {
	t.Run("will return distinct string ids", func(t *testing.T) {
		a := RandomID()
		b := RandomID()

		if !assert.Equal(t, IDString, a.Kind()) {
			return
		}
		if !assert.NotEqual(t, a, b) {
			return
		}
	})
}
