package uuidv7

import "context"

// Logger receives operational messages from the library, such as the
// randomness provider degrading to its last-resort source.
type Logger interface {
	InfofCtx(ctx context.Context, template string, args ...any)
	WarnfCtx(ctx context.Context, template string, args ...any)
	ErrorfCtx(ctx context.Context, template string, args ...any)
}
