package logger

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"
)

type Noop struct{}

func (Noop) InfofCtx(ctx context.Context, template string, args ...any)  {}
func (Noop) WarnfCtx(ctx context.Context, template string, args ...any)  {}
func (Noop) ErrorfCtx(ctx context.Context, template string, args ...any) {}

func NewSlog(logger *slog.Logger) *Slog {
	return &Slog{
		logger: logger,
	}
}

type Slog struct {
	logger *slog.Logger
}

func (log *Slog) InfofCtx(ctx context.Context, format string, args ...any) {
	log.logf(ctx, slog.LevelInfo, format, args...)
}

func (log *Slog) WarnfCtx(ctx context.Context, format string, args ...any) {
	log.logf(ctx, slog.LevelWarn, format, args...)
}

func (log *Slog) ErrorfCtx(ctx context.Context, format string, args ...any) {
	log.logf(ctx, slog.LevelError, format, args...)
}

func (log *Slog) logf(ctx context.Context, level slog.Level, format string, args ...any) {
	if !log.logger.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip [Callers, logf, exported level method]
	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	_ = log.logger.Handler().Handle(ctx, r)
}
