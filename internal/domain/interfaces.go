package domain

import "context"

// ─── Service Interfaces ─────────────────────────────────────────────────────
// These interfaces define boundaries between layers.
// Infrastructure implements them; the application layer depends on them.

// StateStore abstracts durable local storage of the full planner state.
// The entire aggregate is written as one blob; there is no partial persist.
type StateStore interface {
	// Load returns the last persisted state. A missing or undecodable
	// snapshot is reported as ErrNoSnapshot, never as corrupt data.
	Load(ctx context.Context) (*PlannerState, error)

	// Save replaces the persisted snapshot with the given state.
	Save(ctx context.Context, state *PlannerState) error

	// Close releases the underlying storage.
	Close() error
}

// CaptionGenerator drafts a social caption for a topic, platform, and brand.
// It never fails past its boundary: any service error becomes a fixed
// fallback string. It performs no planner mutation.
type CaptionGenerator interface {
	Generate(ctx context.Context, topic string, platform Platform, brandName string) string
}

// Confirmer requests an explicit user decision before a destructive
// mutation. Implementations decide the modality: a terminal prompt, an HTTP
// request flag, or an always-deny guard in tests.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a plain function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }
