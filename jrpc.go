// Copyright (c) 2026 JrpcKit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jrpc

import (
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
)

// Logger returns a [slog.Logger] which emits records through the
// OTel logs bridge. The host application remains in control of
// where those records ultimately go by configuring the global
// OTel logger provider.
func Logger(name string) *slog.Logger {
	return otelslog.NewLogger(name)
}
