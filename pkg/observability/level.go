package observability

import (
	"context"
	"log/slog"
)

// levelHandler drops records below minLevel before they reach next.
// The otelslog bridge has no level option of its own.
type levelHandler struct {
	minLevel slog.Leveler
	next     slog.Handler
}

func withLevel(minLevel slog.Leveler, next slog.Handler) slog.Handler {
	return &levelHandler{minLevel: minLevel, next: next}
}

func (h *levelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.minLevel.Level() && h.next.Enabled(ctx, level)
}

func (h *levelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.next.Handle(ctx, r)
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{minLevel: h.minLevel, next: h.next.WithAttrs(attrs)}
}

func (h *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{minLevel: h.minLevel, next: h.next.WithGroup(name)}
}
