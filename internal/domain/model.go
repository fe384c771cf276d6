// Package domain contains pure business types with ZERO infrastructure imports.
// This is the innermost ring — it depends on nothing but its own contracts.
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ─── Enumerations ───────────────────────────────────────────────────────────
// Closed string tags. Anything not listed here is rejected at construction,
// never stored.

// ContentType classifies a piece of planned content.
type ContentType string

const (
	TypePost  ContentType = "Post"
	TypeVideo ContentType = "Video"
	TypePhoto ContentType = "Photo"
	TypeReel  ContentType = "Reel"
)

// ContentTypes lists all content types in display order.
var ContentTypes = []ContentType{TypePost, TypeVideo, TypePhoto, TypeReel}

// Valid reports whether the content type is a known tag.
func (t ContentType) Valid() bool {
	switch t {
	case TypePost, TypeVideo, TypePhoto, TypeReel:
		return true
	}
	return false
}

// Platform identifies the social network a content item targets.
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformTikTok    Platform = "TikTok"
	PlatformYouTube   Platform = "YouTube"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformTwitter   Platform = "Twitter"
	PlatformFacebook  Platform = "Facebook"
)

// Valid reports whether the platform is a known tag.
func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformTikTok, PlatformYouTube,
		PlatformLinkedIn, PlatformTwitter, PlatformFacebook:
		return true
	}
	return false
}

// ContentStatus is the lifecycle state of a content item.
type ContentStatus string

const (
	StatusPlanned ContentStatus = "Planned"
	StatusPosted  ContentStatus = "Posted"
)

// Valid reports whether the status is a known tag.
func (s ContentStatus) Valid() bool {
	return s == StatusPlanned || s == StatusPosted
}

// Toggle returns the opposite status. Applying it twice is the identity.
func (s ContentStatus) Toggle() ContentStatus {
	if s == StatusPlanned {
		return StatusPosted
	}
	return StatusPlanned
}

// FinanceType classifies a ledger entry.
type FinanceType string

const (
	FinanceIncome   FinanceType = "Income"
	FinanceExpense  FinanceType = "Expense"
	FinanceAdBudget FinanceType = "Ad Budget"
)

// Valid reports whether the finance type is a known tag.
func (f FinanceType) Valid() bool {
	return f == FinanceIncome || f == FinanceExpense || f == FinanceAdBudget
}

// ─── Entities ───────────────────────────────────────────────────────────────

// Brand is a client account with its own content calendar and ledger.
type Brand struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Handle string `json:"handle"` // always begins with "@"
}

// NormalizeHandle ensures a social handle carries exactly one leading "@".
func NormalizeHandle(handle string) string {
	return "@" + strings.TrimPrefix(handle, "@")
}

// ContentItem is one scheduled or posted piece of social content.
type ContentItem struct {
	ID       string        `json:"id"`
	BrandID  string        `json:"brandId"`
	Type     ContentType   `json:"type"`
	Platform Platform      `json:"platform"`
	Status   ContentStatus `json:"status"`
	Date     time.Time     `json:"date"` // schedule date; only the calendar day matters for grouping
	Title    string        `json:"title"`
	Caption  string        `json:"caption"`
	Notes    string        `json:"notes"`
}

// Day returns the item's calendar day, truncated to midnight in the item's
// own location. Items at 00:00 and 23:59 of the same date share a Day.
func (c ContentItem) Day() time.Time {
	y, m, d := c.Date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.Date.Location())
}

// FinanceEntry is one income, expense, or ad-spend record.
type FinanceEntry struct {
	ID          string          `json:"id"`
	BrandID     string          `json:"brandId"`
	Type        FinanceType     `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"` // set at creation, not user-editable
}

// ─── Aggregate ──────────────────────────────────────────────────────────────

// PlannerState is the aggregate root and the single unit of persistence.
// It is replaced wholesale on every mutation; entities inside it are never
// mutated in place.
type PlannerState struct {
	Brands   []Brand        `json:"brands"`
	Content  []ContentItem  `json:"content"`
	Finances []FinanceEntry `json:"finances"`
}

// Clone returns a copy-on-write copy: fresh slices, shared immutable entity
// values.
func (s *PlannerState) Clone() *PlannerState {
	next := &PlannerState{
		Brands:   make([]Brand, len(s.Brands)),
		Content:  make([]ContentItem, len(s.Content)),
		Finances: make([]FinanceEntry, len(s.Finances)),
	}
	copy(next.Brands, s.Brands)
	copy(next.Content, s.Content)
	copy(next.Finances, s.Finances)
	return next
}

// FindBrand returns the brand with the given id, or nil.
func (s *PlannerState) FindBrand(id string) *Brand {
	for i := range s.Brands {
		if s.Brands[i].ID == id {
			return &s.Brands[i]
		}
	}
	return nil
}

// BrandContent returns the content items belonging to one brand.
func (s *PlannerState) BrandContent(brandID string) []ContentItem {
	var items []ContentItem
	for _, c := range s.Content {
		if c.BrandID == brandID {
			items = append(items, c)
		}
	}
	return items
}

// BrandFinances returns the finance entries belonging to one brand.
func (s *PlannerState) BrandFinances(brandID string) []FinanceEntry {
	var entries []FinanceEntry
	for _, f := range s.Finances {
		if f.BrandID == brandID {
			entries = append(entries, f)
		}
	}
	return entries
}

// SeedState returns the default state for a fresh install: one brand and
// empty content/finance collections.
func SeedState(brandID string) *PlannerState {
	return &PlannerState{
		Brands: []Brand{
			{ID: brandID, Name: "Luxe Agency", Handle: "@luxe_creative"},
		},
		Content:  []ContentItem{},
		Finances: []FinanceEntry{},
	}
}
