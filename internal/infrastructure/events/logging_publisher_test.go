package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	logginginfra "github.com/alexisbeaulieu97/themekit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

func newJSONLogger(t *testing.T, buf *bytes.Buffer) ports.Logger {
	t.Helper()
	logger, err := logginginfra.New(logginginfra.Options{
		Writer:    buf,
		Level:     "debug",
		JSON:      true,
		Layer:     "test",
		Component: "publisher",
	})
	require.NoError(t, err)
	return logger
}

func TestLoggingPublisherIncludesCorrelationID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newJSONLogger(t, buf))

	ctx := ports.WithCorrelationID(context.Background(), "abc-123")
	err := publisher.Publish(ctx, ports.NewEvent(ports.EventThemeImported, map[string]interface{}{"theme_id": "ocean"}))
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "theme event", entry["msg"])
	require.Equal(t, ports.EventThemeImported, entry["event_type"])
	require.Equal(t, "abc-123", entry["correlation_id"])
	require.Equal(t, "ocean", entry["theme_id"])
}

func TestLoggingPublisherInvokesSubscribers(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newJSONLogger(t, buf))

	var got []string
	sub, err := publisher.Subscribe(ports.EventThemeExported, func(_ context.Context, event ports.DomainEvent) error {
		got = append(got, event.Payload()["target"].(string))
		return nil
	})
	require.NoError(t, err)

	_, err = publisher.Subscribe(ports.EventThemeExported, func(context.Context, ports.DomainEvent) error {
		return errors.New("boom")
	})
	require.NoError(t, err)

	event := ports.NewEvent(ports.EventThemeExported, map[string]interface{}{"target": "file"})
	require.NoError(t, publisher.Publish(context.Background(), event))
	require.Equal(t, []string{"file"}, got)
	require.Contains(t, buf.String(), "event handler failed")

	sub.Unsubscribe()
	require.NoError(t, publisher.Publish(context.Background(), event))
	require.Len(t, got, 1)
}

func TestLoggingPublisherIgnoresOtherTypes(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)

	called := false
	_, err := publisher.Subscribe(ports.EventThemeAudited, func(context.Context, ports.DomainEvent) error {
		called = true
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), ports.NewEvent(ports.EventThemeImported, nil)))
	require.False(t, called)
}

func TestNilHandlerAndDiscard(t *testing.T) {
	t.Parallel()

	sub, err := NewLoggingPublisher(nil).Subscribe(ports.EventThemeImported, nil)
	require.NoError(t, err)
	sub.Unsubscribe()

	var d Discard
	require.NoError(t, d.Publish(context.Background(), ports.NewEvent(ports.EventThemeAudited, nil)))
}
