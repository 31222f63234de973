// Copyright (c) 2026 JrpcKit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jrpc

import (
	"context"
	"encoding/json"
	"errors"
)

// Handler is the type erased calling convention every registered
// handler function is adapted to. Implementations extract their
// declared resources and params, invoke the underlying function and
// return its marshaled result.
//
// Handlers are constructed with the NewHandler family below, which
// preserves full static type checking at registration time. The digit
// in a constructor name is the number of resource arguments; the P
// suffix marks a trailing params argument.
type Handler interface {
	Call(ctx context.Context, resources Resources, params json.RawMessage) (json.RawMessage, error)
}

// HandlerFunc is an adapter to allow the use of ordinary functions as
// [Handler]s.
type HandlerFunc func(ctx context.Context, resources Resources, params json.RawMessage) (json.RawMessage, error)

// Call implements the [Handler] interface.
func (f HandlerFunc) Call(ctx context.Context, resources Resources, params json.RawMessage) (json.RawMessage, error) {
	return f(ctx, resources, params)
}

// handler pairs the erased call with the schema reflection for the
// underlying function's params and result types.
type handler struct {
	call   HandlerFunc
	schema func() (MethodSchema, error)
}

// Call implements the [Handler] interface.
func (h handler) Call(ctx context.Context, resources Resources, params json.RawMessage) (json.RawMessage, error) {
	return h.call(ctx, resources, params)
}

// Schema implements the [Schemer] interface.
func (h handler) Schema() (MethodSchema, error) {
	return h.schema()
}

// finish marshals a successful handler result, or boxes the returned
// application error. Errors already shaped as [*HandlerError] pass
// through unchanged so typed retrieval sees the original box.
func finish[R any](v R, err error) (json.RawMessage, error) {
	if err != nil {
		var he *HandlerError
		if errors.As(err, &he) {
			return nil, he
		}
		return nil, NewHandlerError(err)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, ResultMarshalError{Cause: err}
	}
	return b, nil
}

// NewHandler0 adapts a handler taking no resources and no params.
func NewHandler0[R any](fn func(context.Context) (R, error)) Handler {
	return handler{
		schema: schemaFor[noParams, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			return finish(fn(ctx))
		},
	}
}

// NewHandler1 adapts a handler taking one resource and no params.
func NewHandler1[T1, R any](fn func(context.Context, T1) (R, error)) Handler {
	return handler{
		schema: schemaFor[noParams, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			t1, err := resourceFrom[T1](res)
			if err != nil {
				return nil, err
			}
			return finish(fn(ctx, t1))
		},
	}
}

// NewHandler2 adapts a handler taking two resources and no params.
func NewHandler2[T1, T2, R any](fn func(context.Context, T1, T2) (R, error)) Handler {
	return handler{
		schema: schemaFor[noParams, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			t1, err := resourceFrom[T1](res)
			if err != nil {
				return nil, err
			}
			t2, err := resourceFrom[T2](res)
			if err != nil {
				return nil, err
			}
			return finish(fn(ctx, t1, t2))
		},
	}
}

// NewHandler3 adapts a handler taking three resources and no params.
func NewHandler3[T1, T2, T3, R any](fn func(context.Context, T1, T2, T3) (R, error)) Handler {
	return handler{
		schema: schemaFor[noParams, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			t1, err := resourceFrom[T1](res)
			if err != nil {
				return nil, err
			}
			t2, err := resourceFrom[T2](res)
			if err != nil {
				return nil, err
			}
			t3, err := resourceFrom[T3](res)
			if err != nil {
				return nil, err
			}
			return finish(fn(ctx, t1, t2, t3))
		},
	}
}

// NewHandler4 adapts a handler taking four resources and no params.
func NewHandler4[T1, T2, T3, T4, R any](fn func(context.Context, T1, T2, T3, T4) (R, error)) Handler {
	return handler{
		schema: schemaFor[noParams, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			t1, err := resourceFrom[T1](res)
			if err != nil {
				return nil, err
			}
			t2, err := resourceFrom[T2](res)
			if err != nil {
				return nil, err
			}
			t3, err := resourceFrom[T3](res)
			if err != nil {
				return nil, err
			}
			t4, err := resourceFrom[T4](res)
			if err != nil {
				return nil, err
			}
			return finish(fn(ctx, t1, t2, t3, t4))
		},
	}
}

// NewHandler5 adapts a handler taking five resources and no params.
func NewHandler5[T1, T2, T3, T4, T5, R any](fn func(context.Context, T1, T2, T3, T4, T5) (R, error)) Handler {
	return handler{
		schema: schemaFor[noParams, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			t1, err := resourceFrom[T1](res)
			if err != nil {
				return nil, err
			}
			t2, err := resourceFrom[T2](res)
			if err != nil {
				return nil, err
			}
			t3, err := resourceFrom[T3](res)
			if err != nil {
				return nil, err
			}
			t4, err := resourceFrom[T4](res)
			if err != nil {
				return nil, err
			}
			t5, err := resourceFrom[T5](res)
			if err != nil {
				return nil, err
			}
			return finish(fn(ctx, t1, t2, t3, t4, t5))
		},
	}
}

// NewHandler6 adapts a handler taking six resources and no params.
func NewHandler6[T1, T2, T3, T4, T5, T6, R any](fn func(context.Context, T1, T2, T3, T4, T5, T6) (R, error)) Handler {
	return handler{
		schema: schemaFor[noParams, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			t1, err := resourceFrom[T1](res)
			if err != nil {
				return nil, err
			}
			t2, err := resourceFrom[T2](res)
			if err != nil {
				return nil, err
			}
			t3, err := resourceFrom[T3](res)
			if err != nil {
				return nil, err
			}
			t4, err := resourceFrom[T4](res)
			if err != nil {
				return nil, err
			}
			t5, err := resourceFrom[T5](res)
			if err != nil {
				return nil, err
			}
			t6, err := resourceFrom[T6](res)
			if err != nil {
				return nil, err
			}
			return finish(fn(ctx, t1, t2, t3, t4, t5, t6))
		},
	}
}

// NewHandler7 adapts a handler taking seven resources and no params.
func NewHandler7[T1, T2, T3, T4, T5, T6, T7, R any](fn func(context.Context, T1, T2, T3, T4, T5, T6, T7) (R, error)) Handler {
	return handler{
		schema: schemaFor[noParams, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			t1, err := resourceFrom[T1](res)
			if err != nil {
				return nil, err
			}
			t2, err := resourceFrom[T2](res)
			if err != nil {
				return nil, err
			}
			t3, err := resourceFrom[T3](res)
			if err != nil {
				return nil, err
			}
			t4, err := resourceFrom[T4](res)
			if err != nil {
				return nil, err
			}
			t5, err := resourceFrom[T5](res)
			if err != nil {
				return nil, err
			}
			t6, err := resourceFrom[T6](res)
			if err != nil {
				return nil, err
			}
			t7, err := resourceFrom[T7](res)
			if err != nil {
				return nil, err
			}
			return finish(fn(ctx, t1, t2, t3, t4, t5, t6, t7))
		},
	}
}

// NewHandler8 adapts a handler taking eight resources and no params.
func NewHandler8[T1, T2, T3, T4, T5, T6, T7, T8, R any](fn func(context.Context, T1, T2, T3, T4, T5, T6, T7, T8) (R, error)) Handler {
	return handler{
		schema: schemaFor[noParams, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			t1, err := resourceFrom[T1](res)
			if err != nil {
				return nil, err
			}
			t2, err := resourceFrom[T2](res)
			if err != nil {
				return nil, err
			}
			t3, err := resourceFrom[T3](res)
			if err != nil {
				return nil, err
			}
			t4, err := resourceFrom[T4](res)
			if err != nil {
				return nil, err
			}
			t5, err := resourceFrom[T5](res)
			if err != nil {
				return nil, err
			}
			t6, err := resourceFrom[T6](res)
			if err != nil {
				return nil, err
			}
			t7, err := resourceFrom[T7](res)
			if err != nil {
				return nil, err
			}
			t8, err := resourceFrom[T8](res)
			if err != nil {
				return nil, err
			}
			return finish(fn(ctx, t1, t2, t3, t4, t5, t6, t7, t8))
		},
	}
}

// NewHandler0P adapts a handler taking no resources and a params argument.
func NewHandler0P[P, R any](fn func(context.Context, P) (R, error)) Handler {
	return handler{
		schema: schemaFor[P, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			p, err := paramsFrom[P](params)
			if err != nil {
				return nil, err
			}
			return finish(fn(ctx, p))
		},
	}
}

// NewHandler1P adapts a handler taking one resource and a params argument.
func NewHandler1P[T1, P, R any](fn func(context.Context, T1, P) (R, error)) Handler {
	return handler{
		schema: schemaFor[P, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			t1, err := resourceFrom[T1](res)
			if err != nil {
				return nil, err
			}
			p, err := paramsFrom[P](params)
			if err != nil {
				return nil, err
			}
			return finish(fn(ctx, t1, p))
		},
	}
}

// NewHandler2P adapts a handler taking two resources and a params argument.
func NewHandler2P[T1, T2, P, R any](fn func(context.Context, T1, T2, P) (R, error)) Handler {
	return handler{
		schema: schemaFor[P, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			t1, err := resourceFrom[T1](res)
			if err != nil {
				return nil, err
			}
			t2, err := resourceFrom[T2](res)
			if err != nil {
				return nil, err
			}
			p, err := paramsFrom[P](params)
			if err != nil {
				return nil, err
			}
			return finish(fn(ctx, t1, t2, p))
		},
	}
}

// NewHandler3P adapts a handler taking three resources and a params argument.
func NewHandler3P[T1, T2, T3, P, R any](fn func(context.Context, T1, T2, T3, P) (R, error)) Handler {
	return handler{
		schema: schemaFor[P, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			t1, err := resourceFrom[T1](res)
			if err != nil {
				return nil, err
			}
			t2, err := resourceFrom[T2](res)
			if err != nil {
				return nil, err
			}
			t3, err := resourceFrom[T3](res)
			if err != nil {
				return nil, err
			}
			p, err := paramsFrom[P](params)
			if err != nil {
				return nil, err
			}
			return finish(fn(ctx, t1, t2, t3, p))
		},
	}
}

// NewHandler4P adapts a handler taking four resources and a params argument.
func NewHandler4P[T1, T2, T3, T4, P, R any](fn func(context.Context, T1, T2, T3, T4, P) (R, error)) Handler {
	return handler{
		schema: schemaFor[P, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			t1, err := resourceFrom[T1](res)
			if err != nil {
				return nil, err
			}
			t2, err := resourceFrom[T2](res)
			if err != nil {
				return nil, err
			}
			t3, err := resourceFrom[T3](res)
			if err != nil {
				return nil, err
			}
			t4, err := resourceFrom[T4](res)
			if err != nil {
				return nil, err
			}
			p, err := paramsFrom[P](params)
			if err != nil {
				return nil, err
			}
			return finish(fn(ctx, t1, t2, t3, t4, p))
		},
	}
}

// NewHandler5P adapts a handler taking five resources and a params argument.
func NewHandler5P[T1, T2, T3, T4, T5, P, R any](fn func(context.Context, T1, T2, T3, T4, T5, P) (R, error)) Handler {
	return handler{
		schema: schemaFor[P, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			t1, err := resourceFrom[T1](res)
			if err != nil {
				return nil, err
			}
			t2, err := resourceFrom[T2](res)
			if err != nil {
				return nil, err
			}
			t3, err := resourceFrom[T3](res)
			if err != nil {
				return nil, err
			}
			t4, err := resourceFrom[T4](res)
			if err != nil {
				return nil, err
			}
			t5, err := resourceFrom[T5](res)
			if err != nil {
				return nil, err
			}
			p, err := paramsFrom[P](params)
			if err != nil {
				return nil, err
			}
			return finish(fn(ctx, t1, t2, t3, t4, t5, p))
		},
	}
}

// NewHandler6P adapts a handler taking six resources and a params argument.
func NewHandler6P[T1, T2, T3, T4, T5, T6, P, R any](fn func(context.Context, T1, T2, T3, T4, T5, T6, P) (R, error)) Handler {
	return handler{
		schema: schemaFor[P, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			t1, err := resourceFrom[T1](res)
			if err != nil {
				return nil, err
			}
			t2, err := resourceFrom[T2](res)
			if err != nil {
				return nil, err
			}
			t3, err := resourceFrom[T3](res)
			if err != nil {
				return nil, err
			}
			t4, err := resourceFrom[T4](res)
			if err != nil {
				return nil, err
			}
			t5, err := resourceFrom[T5](res)
			if err != nil {
				return nil, err
			}
			t6, err := resourceFrom[T6](res)
			if err != nil {
				return nil, err
			}
			p, err := paramsFrom[P](params)
			if err != nil {
				return nil, err
			}
			return finish(fn(ctx, t1, t2, t3, t4, t5, t6, p))
		},
	}
}

// NewHandler7P adapts a handler taking seven resources and a params argument.
func NewHandler7P[T1, T2, T3, T4, T5, T6, T7, P, R any](fn func(context.Context, T1, T2, T3, T4, T5, T6, T7, P) (R, error)) Handler {
	return handler{
		schema: schemaFor[P, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			t1, err := resourceFrom[T1](res)
			if err != nil {
				return nil, err
			}
			t2, err := resourceFrom[T2](res)
			if err != nil {
				return nil, err
			}
			t3, err := resourceFrom[T3](res)
			if err != nil {
				return nil, err
			}
			t4, err := resourceFrom[T4](res)
			if err != nil {
				return nil, err
			}
			t5, err := resourceFrom[T5](res)
			if err != nil {
				return nil, err
			}
			t6, err := resourceFrom[T6](res)
			if err != nil {
				return nil, err
			}
			t7, err := resourceFrom[T7](res)
			if err != nil {
				return nil, err
			}
			p, err := paramsFrom[P](params)
			if err != nil {
				return nil, err
			}
			return finish(fn(ctx, t1, t2, t3, t4, t5, t6, t7, p))
		},
	}
}

// NewHandler8P adapts a handler taking eight resources and a params argument.
func NewHandler8P[T1, T2, T3, T4, T5, T6, T7, T8, P, R any](fn func(context.Context, T1, T2, T3, T4, T5, T6, T7, T8, P) (R, error)) Handler {
	return handler{
		schema: schemaFor[P, R],
		call: func(ctx context.Context, res Resources, params json.RawMessage) (json.RawMessage, error) {
			t1, err := resourceFrom[T1](res)
			if err != nil {
				return nil, err
			}
			t2, err := resourceFrom[T2](res)
			if err != nil {
				return nil, err
			}
			t3, err := resourceFrom[T3](res)
			if err != nil {
				return nil, err
			}
			t4, err := resourceFrom[T4](res)
			if err != nil {
				return nil, err
			}
			t5, err := resourceFrom[T5](res)
			if err != nil {
				return nil, err
			}
			t6, err := resourceFrom[T6](res)
			if err != nil {
				return nil, err
			}
			t7, err := resourceFrom[T7](res)
			if err != nil {
				return nil, err
			}
			t8, err := resourceFrom[T8](res)
			if err != nil {
				return nil, err
			}
			p, err := paramsFrom[P](params)
			if err != nil {
				return nil, err
			}
			return finish(fn(ctx, t1, t2, t3, t4, t5, t6, t7, t8, p))
		},
	}
}
