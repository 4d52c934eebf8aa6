// SPDX-License-Identifier: MIT
// File: logging.go
// Role: structured diagnostics for the CLI shell only — core, distmatrix,
// njoin, and render/* never log themselves, they only return errors,
// exactly as the teacher pack's library packages behave. Mirrors the
// logger-in-context shape of the pack's internal/cli/log.go.
package main

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/arborwright/njtree/distmatrix"
)

type ctxKey int

const loggerKey ctxKey = 0

// newLogger builds a leveled, timestamped logger writing to w, stamped
// with a fresh run ID so a batch of invocations can be correlated across
// aggregated logs.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})

	return l.With("run_id", uuid.New().String())
}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}

// logBuildError logs err at Error level with the stage it failed in, plus
// any extra key-value fields the caller supplies (e.g. "outlier"),
// replacing the original C program's bare fprintf(stderr, "Error: ...")
// diagnostics. When err carries a *distmatrix.ParseError, its kind/row/taxon
// fields are logged alongside stage/err so every error kind named in the
// taxonomy surfaces with structured context, not just a free-text message.
func logBuildError(l *log.Logger, stage string, err error, extra ...any) {
	fields := []any{"stage", stage, "err", err}

	var perr *distmatrix.ParseError
	if errors.As(err, &perr) {
		fields = append(fields, "kind", string(perr.Kind))
		if perr.Row >= 0 {
			fields = append(fields, "row", perr.Row)
		}
		if perr.Taxon != "" {
			fields = append(fields, "taxon", perr.Taxon)
		}
	}

	fields = append(fields, extra...)
	l.Error("njtree: operation failed", fields...)
}
