// Copyright (c) 2026 JrpcKit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jrpc

import (
	"context"
	"encoding/json"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Router owns the method to handler dispatch table and the base
// [Resources] shared by every call. It is immutable once built and is
// designed to be constructed once and shared across concurrent
// callers; Router itself never spawns tasks, retries or queues calls.
type Router struct {
	routes map[string]Handler
	base   Resources
}

// NewRouter returns an empty [Builder].
func NewRouter() *Builder {
	return &Builder{}
}

// Builder is the mutable registration phase of a [Router]. Calling
// [Builder.Build] is the one way transition to the immutable, callable
// state.
type Builder struct {
	routes    map[string]Handler
	resources ResourcesBuilder
}

// Handle registers a handler under a method name, overwriting any
// previous registration for that name.
func (b *Builder) Handle(method string, h Handler) *Builder {
	if b.routes == nil {
		b.routes = make(map[string]Handler)
	}
	b.routes[method] = h
	return b
}

// WithResource stores v in the router's base resources under the type
// T, replacing any previous value of that type.
func WithResource[T any](b *Builder, v T) *Builder {
	AddResource[T](&b.resources, v)
	return b
}

// ExtendResources copies every value of rb into the router's base
// resources, replacing same type entries.
func (b *Builder) ExtendResources(rb *ResourcesBuilder) *Builder {
	b.resources.Extend(rb)
	return b
}

// Extend merges another builder's routes and resources into b. Later
// additions win on method name or resource type collision.
func (b *Builder) Extend(other *Builder) *Builder {
	for method, h := range other.routes {
		b.Handle(method, h)
	}
	b.resources.Extend(&other.resources)
	return b
}

// Build freezes the builder into a [Router]. The builder should not be
// used afterwards.
func (b *Builder) Build() *Router {
	routes := make(map[string]Handler, len(b.routes))
	for method, h := range b.routes {
		routes[method] = h
	}
	return &Router{
		routes: routes,
		base:   b.resources.Build(),
	}
}

// Call routes the request to its registered handler using the
// router's base resources.
//
// The returned error, when non-nil, is always a [*CallError] echoing
// the request's id and method.
func (r *Router) Call(ctx context.Context, req Request) (CallSuccess, error) {
	return r.CallRouteWithResources(ctx, req.ID, req.Method, req.Params, Resources{})
}

// CallWithResources is [Router.Call] with an extra [Resources] overlay
// checked before the router's base resources for this call only.
func (r *Router) CallWithResources(ctx context.Context, req Request, overlay Resources) (CallSuccess, error) {
	return r.CallRouteWithResources(ctx, req.ID, req.Method, req.Params, overlay)
}

// CallRoute is the lower level variant of [Router.Call] taking the
// request properties as values.
func (r *Router) CallRoute(ctx context.Context, id ID, method string, params json.RawMessage) (CallSuccess, error) {
	return r.CallRouteWithResources(ctx, id, method, params, Resources{})
}

// CallRouteWithResources routes one call. The id and method of the
// outcome are always taken from the arguments, never from the handler.
func (r *Router) CallRouteWithResources(ctx context.Context, id ID, method string, params json.RawMessage, overlay Resources) (CallSuccess, error) {
	spanCtx, span := otel.Tracer("jrpc").Start(
		ctx,
		"Router.Call",
		trace.WithAttributes(
			attribute.String("rpc.method", method),
			attribute.String("rpc.id", id.String()),
		),
	)
	defer span.End()

	h, ok := r.routes[method]
	if !ok {
		err := &CallError{ID: id, Method: method, Err: MethodUnknownError{Method: method}}
		span.RecordError(err)
		return CallSuccess{}, err
	}

	resources := r.base
	if !overlay.IsEmpty() {
		resources = r.base.withOverlay(overlay)
	}

	value, err := h.Call(spanCtx, resources, params)
	if err != nil {
		callErr := &CallError{ID: id, Method: method, Err: err}
		span.RecordError(callErr)
		return CallSuccess{}, callErr
	}

	return CallSuccess{ID: id, Method: method, Value: value}, nil
}

// Methods returns the sorted names of every registered method.
func (r *Router) Methods() []string {
	methods := make([]string, 0, len(r.routes))
	for method := range r.routes {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return methods
}

// Schema returns the [MethodSchema] of the named method's handler.
// It reports false when the method is unregistered or its handler does
// not implement [Schemer].
func (r *Router) Schema(method string) (MethodSchema, bool) {
	h, ok := r.routes[method]
	if !ok {
		return MethodSchema{}, false
	}
	s, ok := h.(Schemer)
	if !ok {
		return MethodSchema{}, false
	}
	ms, err := s.Schema()
	if err != nil {
		return MethodSchema{}, false
	}
	return ms, true
}
