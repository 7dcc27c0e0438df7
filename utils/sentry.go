package utils

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
)

// ReportUnexpectedError logs err with its stack trace and sends it to sentry with tags.
// Errors of cancelled or timed out requests are logged only.
func ReportUnexpectedError(ctx context.Context, err error, tags map[string]string) {
	attrs := make([]any, 0, len(tags))
	for _, key := range slices.Sorted(maps.Keys(tags)) {
		attrs = append(attrs, slog.String(key, tags[key]))
	}
	LoggerFromContext(ctx).ErrorContext(ctx, fmt.Sprintf("%+v", err), attrs...)

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}
