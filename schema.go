// Copyright (c) 2026 JrpcKit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jrpc

import (
	"github.com/swaggest/jsonschema-go"
)

// MethodSchema describes the params and result types of a registered
// handler as JSON Schemas. Params is nil for handlers declaring no
// params argument.
type MethodSchema struct {
	Params *jsonschema.Schema
	Result *jsonschema.Schema
}

// Schemer is implemented by handlers constructed with the NewHandler
// family. Documentation tooling can use it, together with
// [Router.Methods], to describe a dispatch table without invoking any
// handler.
type Schemer interface {
	Schema() (MethodSchema, error)
}

// noParams marks the absent params argument of the resource only
// handler constructors.
type noParams struct{}

func schemaFor[P, R any]() (MethodSchema, error) {
	var ms MethodSchema
	var reflector jsonschema.Reflector

	var p P
	if _, ok := any(p).(noParams); !ok {
		paramsSchema, err := reflector.Reflect(p, jsonschema.InlineRefs)
		if err != nil {
			return ms, err
		}
		ms.Params = &paramsSchema
	}

	var r R
	resultSchema, err := reflector.Reflect(r, jsonschema.InlineRefs)
	if err != nil {
		return ms, err
	}
	ms.Result = &resultSchema
	return ms, nil
}
