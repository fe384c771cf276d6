package api

import (
	"context"
	"net/http"

	"github.com/agencyflow/agencyflow/internal/domain"
)

// ─── Confirmation Gate ──────────────────────────────────────────────────────
// Destructive mutations (brand delete, month reset) require explicit user
// consent. Over HTTP the consent surface is the client UI: it shows its
// dialog and resends the request with ?confirm=true. The decision rides the
// request context so the planner's Confirmer can read it without the core
// knowing about HTTP.

type ctxKey int

const confirmKey ctxKey = iota

// WithConfirmation records a consent decision on the context.
func WithConfirmation(ctx context.Context, confirmed bool) context.Context {
	return context.WithValue(ctx, confirmKey, confirmed)
}

// Confirmed reports the consent decision carried by the context.
// Absent means not confirmed.
func Confirmed(ctx context.Context) bool {
	v, _ := ctx.Value(confirmKey).(bool)
	return v
}

// RequestConfirmer backs domain.Confirmer with the per-request decision.
func RequestConfirmer() domain.Confirmer {
	return domain.ConfirmFunc(func(ctx context.Context, _ string) bool {
		return Confirmed(ctx)
	})
}

// confirmMiddleware lifts the confirm query parameter onto the context.
func confirmMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithConfirmation(r.Context(), r.URL.Query().Get("confirm") == "true")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
