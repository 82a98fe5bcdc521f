package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	l := New("warn").With("service", "storefront")
	ctx := IntoContext(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
}

func TestNew_Levels(t *testing.T) {
	ctx := context.Background()

	assert.True(t, New("debug").Enabled(ctx, slog.LevelDebug))
	assert.False(t, New("info").Enabled(ctx, slog.LevelDebug))
	assert.False(t, New("WARN").Enabled(ctx, slog.LevelInfo))
	assert.False(t, New("error").Enabled(ctx, slog.LevelWarn))
	assert.True(t, New("garbage").Enabled(ctx, slog.LevelInfo))
}
