package cli

import (
	"context"

	"github.com/thenoetrevino/flowlist/internal/app"
)

type contextKey string

const appKey contextKey = "flowlistApp"

// WithApp returns a context carrying an already built App. Commands run
// under it reuse that App instead of opening the database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI over the App stored in ctx, or opens a new
// one from the user's configuration.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: a.Config, ctx: ctx}, nil
	}
	return NewCLI(ctx)
}
