package logging

import (
	"context"
	"log/slog"

	"go.uber.org/multierr"
)

// MultiHandler fans every record out to all handlers that accept its
// level. A failing handler does not stop the others; their errors are
// combined.
type MultiHandler struct {
	handlers []slog.Handler
}

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: append([]slog.Handler(nil), handlers...)}
}

func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		err = multierr.Append(err, h.Handle(ctx, r.Clone()))
	}
	return err
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, 0, len(m.handlers))
	for _, h := range m.handlers {
		out = append(out, h.WithAttrs(attrs))
	}
	return &MultiHandler{handlers: out}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, 0, len(m.handlers))
	for _, h := range m.handlers {
		out = append(out, h.WithGroup(name))
	}
	return &MultiHandler{handlers: out}
}
