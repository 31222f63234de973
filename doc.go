// Copyright (c) 2026 JrpcKit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package jrpc implements a JSON-RPC 2.0 dispatch core.
//
// It parses decoded wire requests into [Request] values, routes them
// through a [Router] to statically typed handler functions, injects
// shared dependencies from a type indexed [Resources] store, and turns
// every outcome into a protocol compliant [Response].
//
// Handlers are ordinary functions. Any function of the shape
//
//	func(ctx context.Context, r1 R1, ..., rN RN, params P) (Result, error)
//
// with zero to eight resource arguments and an optional trailing params
// argument is admissible. The NewHandler constructor family type checks
// the function at registration time and erases it behind the single
// method [Handler] interface, so one dispatch table can hold handlers of
// arbitrarily different signatures.
//
// The package performs no network I/O. See [github.com/jrpckit/jrpc/jrpchttp]
// for serving a [Router] over HTTP.
package jrpc
