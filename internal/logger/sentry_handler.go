package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
)

// SentryHandler turns records at or above minLevel into Sentry events.
// Attributes become event extras; an "err" attribute holding an error is
// reported as the exception.
type SentryHandler struct {
	minLevel slog.Level
	attrs    []slog.Attr
}

func NewSentryHandler(minLevel slog.Level) *SentryHandler {
	return &SentryHandler{minLevel: minLevel}
}

func (h *SentryHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.minLevel
}

func (h *SentryHandler) Handle(_ context.Context, record slog.Record) error {
	event := sentry.NewEvent()
	event.Level = sentry.LevelError
	event.Message = record.Message
	event.Timestamp = record.Time

	collect := func(a slog.Attr) bool {
		if err, ok := a.Value.Any().(error); ok && a.Key == "err" {
			event.SetException(err, 5)
			return true
		}
		event.Extra[a.Key] = a.Value.String()
		return true
	}
	for _, a := range h.attrs {
		collect(a)
	}
	record.Attrs(collect)

	sentry.CaptureEvent(event)
	return nil
}

func (h *SentryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &SentryHandler{minLevel: h.minLevel}
	next.attrs = append(append(next.attrs, h.attrs...), attrs...)
	return next
}

func (h *SentryHandler) WithGroup(string) slog.Handler {
	return h
}
