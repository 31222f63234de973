// Copyright (c) 2026 JrpcKit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package jrpchttp serves a [jrpc.Router] over HTTP.
//
// The core library performs no network I/O itself; this package is the
// transport boundary made concrete. One HTTP POST body carries one
// JSON-RPC request or notification.
package jrpchttp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/jrpckit/jrpc"

	"github.com/go-chi/chi/v5"
	"github.com/z5labs/sdk-go/try"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

// HandlerOptions are configurable parameters of a [NewHandler] handler.
type HandlerOptions struct {
	checks  jrpc.CheckFlags
	overlay func(*http.Request) jrpc.Resources
	log     *slog.Logger
}

// HandlerOption sets a value on [HandlerOptions].
type HandlerOption interface {
	ApplyHandlerOption(*HandlerOptions)
}

type handlerOptionFunc func(*HandlerOptions)

func (f handlerOptionFunc) ApplyHandlerOption(ho *HandlerOptions) {
	f(ho)
}

// Checks overrides the validation strength applied to request bodies.
// The default is [jrpc.CheckAll]. A body without an "id" member is
// always served as a notification, regardless of the flags.
func Checks(checks jrpc.CheckFlags) HandlerOption {
	return handlerOptionFunc(func(ho *HandlerOptions) {
		ho.checks = checks
	})
}

// Overlay registers a function deriving per call overlay resources
// from the incoming HTTP request, for example an authenticated user
// looked up from a header. The overlay shadows the router's base
// resources for that call only.
func Overlay(f func(*http.Request) jrpc.Resources) HandlerOption {
	return handlerOptionFunc(func(ho *HandlerOptions) {
		ho.overlay = f
	})
}

// Log overrides the logger used for transport level failures.
func Log(log *slog.Logger) HandlerOption {
	return handlerOptionFunc(func(ho *HandlerOptions) {
		ho.log = log
	})
}

type handler struct {
	router  *jrpc.Router
	checks  jrpc.CheckFlags
	overlay func(*http.Request) jrpc.Resources
	log     *slog.Logger
}

// NewHandler returns an [http.Handler] which decodes one JSON-RPC
// request per POST body, dispatches it on the given router and writes
// the wire response. Notification bodies are dispatched as well and
// answered with 204 No Content. The handler is wrapped with otelhttp
// instrumentation.
func NewHandler(router *jrpc.Router, opts ...HandlerOption) http.Handler {
	ho := &HandlerOptions{
		checks: jrpc.CheckAll,
		log:    jrpc.Logger("jrpchttp"),
	}
	for _, opt := range opts {
		opt.ApplyHandlerOption(ho)
	}

	h := &handler{
		router:  router,
		checks:  ho.checks,
		overlay: ho.overlay,
		log:     ho.log,
	}
	return otelhttp.NewHandler(h, "jrpchttp")
}

// Mount registers a [NewHandler] handler for POST requests on the
// given pattern.
func Mount(mux chi.Router, pattern string, router *jrpc.Router, opts ...HandlerOption) {
	mux.Method(http.MethodPost, pattern, NewHandler(router, opts...))
}

// ServeHTTP implements the [http.Handler] interface.
func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	spanCtx, span := otel.Tracer("jrpchttp").Start(r.Context(), "handler.ServeHTTP")
	defer span.End()

	body, err := readBody(r)
	if err != nil {
		span.RecordError(err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if isNotification(body) {
		h.serveNotification(spanCtx, w, body)
		return
	}

	req, err := jrpc.ParseRequestWithChecks(body, h.checks)
	if err != nil {
		span.RecordError(err)
		h.writeResponse(spanCtx, w, jrpc.NewErrorResponse(jrpc.NullID(), err))
		return
	}

	overlay := jrpc.Resources{}
	if h.overlay != nil {
		overlay = h.overlay(r)
	}

	resp := jrpc.ResponseFrom(h.router.CallWithResources(spanCtx, req, overlay))
	h.writeResponse(spanCtx, w, resp)
}

// serveNotification handles a body without an id. No response object
// is ever written for a notification; call failures are only logged.
func (h *handler) serveNotification(ctx context.Context, w http.ResponseWriter, body []byte) {
	_, span := otel.Tracer("jrpchttp").Start(ctx, "handler.serveNotification")
	defer span.End()

	n, err := jrpc.ParseNotification(body)
	if err != nil {
		span.RecordError(err)
		h.writeResponse(ctx, w, jrpc.NewErrorResponse(jrpc.NullID(), err))
		return
	}

	_, err = h.router.CallRoute(ctx, jrpc.NullID(), n.Method, n.Params)
	if err != nil {
		span.RecordError(err)
		h.log.ErrorContext(ctx, "notification call failed",
			slog.String("method", n.Method),
			slog.String("error", err.Error()),
		)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) writeResponse(ctx context.Context, w http.ResponseWriter, resp jrpc.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	if err := enc.Encode(resp); err != nil {
		h.log.ErrorContext(ctx, "failed to write response",
			slog.String("error", err.Error()),
		)
	}
}

func readBody(r *http.Request) (_ []byte, err error) {
	defer try.Close(&err, r.Body)

	return io.ReadAll(r.Body)
}

// isNotification reports whether the body is a JSON object without an
// "id" member. The distinction is independent of the configured check
// flags so a notification never receives a response object. Anything
// which is not a well formed JSON object is treated as a request, so
// parse failures surface through the request path.
func isNotification(body []byte) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return false
	}
	if obj == nil {
		return false
	}
	_, ok := obj["id"]
	return !ok
}
