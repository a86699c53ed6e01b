package logging

import (
	"context"
	"maps"
	"slices"

	"github.com/rs/zerolog"
)

// Field names shared by every component.
const (
	FieldComponent = "component"
	FieldPopupID   = "popup_id"
)

// FromContext returns the logger stored in ctx. Without one it returns a
// disabled logger, so callers never need a nil check.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// With stores a child logger carrying fields. Keys are added in sorted
// order so log lines stay comparable between runs.
func With(ctx context.Context, fields map[string]any) context.Context {
	lc := FromContext(ctx).With()
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		lc = lc.Interface(k, fields[k])
	}
	return WithContext(ctx, lc.Logger())
}

// WithComponent tags log lines with the emitting component.
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, FieldComponent, component)
}

// WithPopupID tags log lines with the popup they concern.
func WithPopupID(ctx context.Context, popupID string) context.Context {
	return withStr(ctx, FieldPopupID, popupID)
}

func withStr(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}
