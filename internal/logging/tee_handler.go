package logging

import (
	"context"
	"errors"
	"log/slog"
	"slices"
)

// teeHandler sends each record to every member that accepts its level. The
// console and the daily JSON file are the usual members.
type teeHandler []slog.Handler

// TeeHandler combines handlers into one. Nil handlers are dropped; a single
// survivor is returned unwrapped.
func TeeHandler(handlers ...slog.Handler) slog.Handler {
	members := slices.DeleteFunc(slices.Clone(handlers), func(h slog.Handler) bool { return h == nil })
	switch len(members) {
	case 0:
		return NoopHandler{}
	case 1:
		return members[0]
	}
	return teeHandler(members)
}

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(t, func(h slog.Handler) bool { return h.Enabled(ctx, level) })
}

// Handle writes to every sink and joins their errors.
func (t teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, h := range t {
		if h.Enabled(ctx, record.Level) {
			errs = append(errs, h.Handle(ctx, record.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return t.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	return t.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (t teeHandler) each(fn func(slog.Handler) slog.Handler) teeHandler {
	next := make(teeHandler, len(t))
	for i, h := range t {
		next[i] = fn(h)
	}
	return next
}
