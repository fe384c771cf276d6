package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Draft Types ────────────────────────────────────────────────────────────
// Drafts hold in-progress, not-yet-validated input. They are converted into
// fully-validated entities only at the commit boundary (the planner's add
// operations), keeping partial state out of the canonical model.

// ContentDraft is the unvalidated input for a new content item.
type ContentDraft struct {
	BrandID  string      `json:"brand_id"`
	Type     ContentType `json:"type"`
	Platform Platform    `json:"platform"`
	Date     time.Time   `json:"date"`
	Title    string      `json:"title"`
	Caption  string      `json:"caption"`
	Notes    string      `json:"notes"`
}

// Validate checks the draft's required fields and enum tags.
func (d ContentDraft) Validate() error {
	if d.Title == "" {
		return ErrTitleRequired
	}
	if d.Date.IsZero() {
		return ErrDateRequired
	}
	if !d.Type.Valid() {
		return ErrInvalidContentType
	}
	if !d.Platform.Valid() {
		return ErrInvalidPlatform
	}
	return nil
}

// FinanceDraft is the unvalidated input for a new finance entry.
type FinanceDraft struct {
	BrandID     string          `json:"brand_id"`
	Type        FinanceType     `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Validate checks the draft's required fields and enum tags.
// A zero or negative amount is rejected; the ledger records spends and
// receipts, and a zero entry carries no information.
func (d FinanceDraft) Validate() error {
	if !d.Amount.IsPositive() {
		return ErrAmountRequired
	}
	if d.Description == "" {
		return ErrDescriptionRequired
	}
	if !d.Type.Valid() {
		return ErrInvalidFinanceType
	}
	return nil
}
