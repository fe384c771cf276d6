// Package planner owns the canonical planner state and its mutation contract.
//
// The planner:
//  1. Validates input drafts at the commit boundary
//  2. Builds the next aggregate by copy-on-write, never mutating in place
//  3. Enforces invariants (at least one brand, cascade on brand delete)
//  4. Persists the full state after every successful mutation
//  5. Gates destructive operations behind an explicit user confirmation
package planner

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agencyflow/agencyflow/internal/domain"
)

// Planner is the single writer over the shared planner state.
type Planner struct {
	mu      sync.RWMutex
	state   *domain.PlannerState
	store   domain.StateStore
	confirm domain.Confirmer
	now     func() time.Time
}

// Option customizes a Planner.
type Option func(*Planner)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// New loads the last persisted state from the store, falling back to the
// default seed state when no usable snapshot exists.
func New(ctx context.Context, store domain.StateStore, confirm domain.Confirmer, opts ...Option) *Planner {
	p := &Planner{
		store:   store,
		confirm: confirm,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	state, err := store.Load(ctx)
	if err != nil {
		// Absent or unreadable snapshot: start from the seed state.
		state = domain.SeedState(uuid.NewString())
		log.Printf("planner: no prior state (%v), using seed state", err)
	}
	p.state = state
	return p
}

// Snapshot returns the current aggregate. The returned value is replaced,
// never mutated, so readers may hold it without locking.
func (p *Planner) Snapshot() *domain.PlannerState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// swap persists the next aggregate and installs it as current.
// A persist failure is best-effort: logged, in-memory state kept, no
// rollback. The prior snapshot on disk remains the last complete one.
func (p *Planner) swap(ctx context.Context, next *domain.PlannerState) {
	if err := p.store.Save(ctx, next); err != nil {
		log.Printf("planner: persist failed: %v", err)
	}
	p.state = next
}

// ─── Brand Operations ───────────────────────────────────────────────────────

// AddBrand appends a new brand. The handle is normalized to a single
// leading "@".
func (p *Planner) AddBrand(ctx context.Context, name, handle string) (domain.Brand, error) {
	if name == "" {
		return domain.Brand{}, domain.ErrNameRequired
	}
	if handle == "" {
		return domain.Brand{}, domain.ErrHandleRequired
	}

	brand := domain.Brand{
		ID:     uuid.NewString(),
		Name:   name,
		Handle: domain.NormalizeHandle(handle),
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	next := p.state.Clone()
	next.Brands = append(next.Brands, brand)
	p.swap(ctx, next)
	return brand, nil
}

// DeleteBrand removes a brand and cascades: every content item and finance
// entry belonging to it goes too. Deleting the last remaining brand is
// rejected outright; otherwise the injected Confirmer must approve.
func (p *Planner) DeleteBrand(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.FindBrand(id) == nil {
		return domain.ErrBrandNotFound
	}
	if len(p.state.Brands) <= 1 {
		return domain.ErrLastBrand
	}
	if !p.confirm.Confirm(ctx, "Are you sure? This will delete all content and financial data associated with this brand.") {
		return domain.ErrNotConfirmed
	}

	next := p.state.Clone()
	next.Brands = filterBrands(next.Brands, id)
	next.Content = filterContentByBrand(next.Content, id)
	next.Finances = filterFinancesByBrand(next.Finances, id)
	p.swap(ctx, next)
	return nil
}

// ─── Content Operations ─────────────────────────────────────────────────────

// AddContent validates a draft and appends the resulting content item.
// New items always start as Planned.
func (p *Planner) AddContent(ctx context.Context, draft domain.ContentDraft) (domain.ContentItem, error) {
	if err := draft.Validate(); err != nil {
		return domain.ContentItem{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.FindBrand(draft.BrandID) == nil {
		return domain.ContentItem{}, domain.ErrBrandNotFound
	}

	item := domain.ContentItem{
		ID:       uuid.NewString(),
		BrandID:  draft.BrandID,
		Type:     draft.Type,
		Platform: draft.Platform,
		Status:   domain.StatusPlanned,
		Date:     draft.Date,
		Title:    draft.Title,
		Caption:  draft.Caption,
		Notes:    draft.Notes,
	}

	next := p.state.Clone()
	next.Content = append(next.Content, item)
	p.swap(ctx, next)
	return item, nil
}

// ToggleContentStatus flips an item between Planned and Posted.
func (p *Planner) ToggleContentStatus(ctx context.Context, id string) (domain.ContentItem, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.state.Clone()
	for i, c := range next.Content {
		if c.ID == id {
			c.Status = c.Status.Toggle()
			next.Content[i] = c
			p.swap(ctx, next)
			return c, nil
		}
	}
	return domain.ContentItem{}, domain.ErrContentNotFound
}

// DeleteContent removes one content item by id.
func (p *Planner) DeleteContent(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !containsContent(p.state.Content, id) {
		return domain.ErrContentNotFound
	}
	next := p.state.Clone()
	next.Content = filterContent(next.Content, id)
	p.swap(ctx, next)
	return nil
}

// ListContent returns one brand's content items sorted by schedule date.
func (p *Planner) ListContent(brandID string) []domain.ContentItem {
	items := p.Snapshot().BrandContent(brandID)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
	return items
}

// ─── Finance Operations ─────────────────────────────────────────────────────

// AddFinance validates a draft and appends the resulting ledger entry.
// The entry date is set to now; it is not user-editable.
func (p *Planner) AddFinance(ctx context.Context, draft domain.FinanceDraft) (domain.FinanceEntry, error) {
	if err := draft.Validate(); err != nil {
		return domain.FinanceEntry{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.FindBrand(draft.BrandID) == nil {
		return domain.FinanceEntry{}, domain.ErrBrandNotFound
	}

	entry := domain.FinanceEntry{
		ID:          uuid.NewString(),
		BrandID:     draft.BrandID,
		Type:        draft.Type,
		Amount:      draft.Amount,
		Description: draft.Description,
		Date:        p.now(),
	}

	next := p.state.Clone()
	next.Finances = append(next.Finances, entry)
	p.swap(ctx, next)
	return entry, nil
}

// DeleteFinance removes one ledger entry by id.
func (p *Planner) DeleteFinance(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !containsFinance(p.state.Finances, id) {
		return domain.ErrFinanceNotFound
	}
	next := p.state.Clone()
	next.Finances = filterFinance(next.Finances, id)
	p.swap(ctx, next)
	return nil
}

// ─── Month Reset ────────────────────────────────────────────────────────────

// ResetMonth clears the entire content collection. Brands and financial
// history remain untouched. Irreversible, so the Confirmer must approve.
func (p *Planner) ResetMonth(ctx context.Context) error {
	if !p.confirm.Confirm(ctx, "This will clear all content items for the current month. Brands and financial history will remain. Continue?") {
		return domain.ErrNotConfirmed
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	next := p.state.Clone()
	next.Content = []domain.ContentItem{}
	p.swap(ctx, next)
	return nil
}

// ─── Filters ────────────────────────────────────────────────────────────────

func filterBrands(brands []domain.Brand, id string) []domain.Brand {
	out := brands[:0]
	for _, b := range brands {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}

func filterContent(items []domain.ContentItem, id string) []domain.ContentItem {
	out := items[:0]
	for _, c := range items {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

func filterContentByBrand(items []domain.ContentItem, brandID string) []domain.ContentItem {
	out := items[:0]
	for _, c := range items {
		if c.BrandID != brandID {
			out = append(out, c)
		}
	}
	return out
}

func filterFinance(entries []domain.FinanceEntry, id string) []domain.FinanceEntry {
	out := entries[:0]
	for _, f := range entries {
		if f.ID != id {
			out = append(out, f)
		}
	}
	return out
}

func filterFinancesByBrand(entries []domain.FinanceEntry, brandID string) []domain.FinanceEntry {
	out := entries[:0]
	for _, f := range entries {
		if f.BrandID != brandID {
			out = append(out, f)
		}
	}
	return out
}

func containsContent(items []domain.ContentItem, id string) bool {
	for _, c := range items {
		if c.ID == id {
			return true
		}
	}
	return false
}

func containsFinance(entries []domain.FinanceEntry, id string) bool {
	for _, f := range entries {
		if f.ID == id {
			return true
		}
	}
	return false
}
