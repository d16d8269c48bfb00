package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/kyuff/uuidv7/internal/assert"
	"github.com/kyuff/uuidv7/internal/logger"
)

type captureHandler struct {
	enabled bool
	records []slog.Record
}

func (h *captureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.enabled
}

func (h *captureHandler) Handle(ctx context.Context, record slog.Record) error {
	h.records = append(h.records, record)
	return nil
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(name string) slog.Handler       { return h }

func TestSlog(t *testing.T) {
	t.Run("should log a formatted message per level", func(t *testing.T) {
		// arrange
		var (
			handler = &captureHandler{enabled: true}
			sut     = logger.NewSlog(slog.New(handler))
		)

		// act
		sut.InfofCtx(t.Context(), "hello %s", "info")
		sut.WarnfCtx(t.Context(), "hello %s", "warn")
		sut.ErrorfCtx(t.Context(), "hello %s", "error")

		// assert
		assert.Equal(t, 3, len(handler.records))
		assert.Equal(t, "hello info", handler.records[0].Message)
		assert.Equal(t, slog.LevelInfo, handler.records[0].Level)
		assert.Equal(t, "hello warn", handler.records[1].Message)
		assert.Equal(t, slog.LevelWarn, handler.records[1].Level)
		assert.Equal(t, "hello error", handler.records[2].Message)
		assert.Equal(t, slog.LevelError, handler.records[2].Level)
	})

	t.Run("should ignore a disabled handler", func(t *testing.T) {
		// arrange
		var (
			handler = &captureHandler{enabled: false}
			sut     = logger.NewSlog(slog.New(handler))
		)

		// act
		sut.InfofCtx(t.Context(), "hello %s", "test")
		sut.ErrorfCtx(t.Context(), "hello %s", "test")

		// assert
		assert.Equal(t, 0, len(handler.records))
	})

	t.Run("should not break on noop", func(t *testing.T) {
		// arrange
		var (
			sut = logger.Noop{}
		)

		// act
		sut.InfofCtx(t.Context(), "hello %s", "test")
		sut.WarnfCtx(t.Context(), "hello %s", "test")
		sut.ErrorfCtx(t.Context(), "hello %s", "test")
	})
}
