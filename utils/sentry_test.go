package utils

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportingContext(t *testing.T, buf *bytes.Buffer) (context.Context, *[]*sentry.Event) {
	events := new([]*sentry.Event)
	client, err := sentry.NewClient(sentry.ClientOptions{
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			*events = append(*events, event)
			return nil
		},
	})
	require.NoError(t, err)

	ctx := StoreLoggerInContext(context.Background(), newLogger(buf, LoggingFormatText, slog.LevelDebug))
	return sentry.SetHubOnContext(ctx, sentry.NewHub(client, sentry.NewScope())), events
}

func TestReportUnexpectedError(t *testing.T) {
	var buf bytes.Buffer
	ctx, events := newReportingContext(t, &buf)

	ReportUnexpectedError(ctx, errors.New("listing query failed"), map[string]string{"route": "/grid/rows"})

	require.Len(t, *events, 1)
	assert.Equal(t, "/grid/rows", (*events)[0].Tags["route"])
	assert.Contains(t, buf.String(), "listing query failed")
	assert.Contains(t, buf.String(), "route=/grid/rows")
}

func TestReportUnexpectedError_cancelledRequest(t *testing.T) {
	var buf bytes.Buffer
	ctx, events := newReportingContext(t, &buf)

	ReportUnexpectedError(ctx, errors.Wrap(context.Canceled, "listing rows"), nil)

	assert.Empty(t, *events)
	assert.Contains(t, buf.String(), "listing rows")
}
