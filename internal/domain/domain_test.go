package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// ─── Enum Tests ─────────────────────────────────────────────────────────────

func TestEnumValidity(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
		check func() bool
	}{
		{"known content type", true, ContentType("Reel").Valid},
		{"unknown content type", false, ContentType("Story").Valid},
		{"empty content type", false, ContentType("").Valid},
		{"known platform", true, Platform("TikTok").Valid},
		{"unknown platform", false, Platform("MySpace").Valid},
		{"known status", true, ContentStatus("Posted").Valid},
		{"unknown status", false, ContentStatus("Archived").Valid},
		{"known finance type", true, FinanceType("Ad Budget").Valid},
		{"unknown finance type", false, FinanceType("Refund").Valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestContentStatus_Toggle(t *testing.T) {
	if got := StatusPlanned.Toggle(); got != StatusPosted {
		t.Errorf("Toggle() = %q, want %q", got, StatusPosted)
	}
	if got := StatusPosted.Toggle(); got != StatusPlanned {
		t.Errorf("Toggle() = %q, want %q", got, StatusPlanned)
	}
	// Applying twice returns the original value.
	if got := StatusPlanned.Toggle().Toggle(); got != StatusPlanned {
		t.Errorf("double Toggle() = %q, want %q", got, StatusPlanned)
	}
}

// ─── Handle Normalization ───────────────────────────────────────────────────

func TestNormalizeHandle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"tesla", "@tesla"},
		{"@tesla", "@tesla"}, // no double prefix
		{"@@tesla", "@@tesla"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeHandle(tt.input); got != tt.want {
				t.Errorf("NormalizeHandle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ─── Calendar Day ───────────────────────────────────────────────────────────

func TestContentItem_Day(t *testing.T) {
	morning := ContentItem{Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)}
	night := ContentItem{Date: time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)}

	if !morning.Day().Equal(night.Day()) {
		t.Errorf("same calendar day bucketed differently: %v vs %v", morning.Day(), night.Day())
	}

	nextDay := ContentItem{Date: time.Date(2024, 3, 6, 0, 0, 1, 0, time.UTC)}
	if morning.Day().Equal(nextDay.Day()) {
		t.Error("different calendar days share a bucket")
	}
}

// ─── Draft Validation ───────────────────────────────────────────────────────

func TestContentDraft_Validate(t *testing.T) {
	valid := ContentDraft{
		BrandID:  "b1",
		Type:     TypePost,
		Platform: PlatformInstagram,
		Date:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Title:    "Launch",
	}

	tests := []struct {
		name    string
		mutate  func(d ContentDraft) ContentDraft
		wantErr error
	}{
		{"valid", func(d ContentDraft) ContentDraft { return d }, nil},
		{"empty title", func(d ContentDraft) ContentDraft { d.Title = ""; return d }, ErrTitleRequired},
		{"zero date", func(d ContentDraft) ContentDraft { d.Date = time.Time{}; return d }, ErrDateRequired},
		{"bad type", func(d ContentDraft) ContentDraft { d.Type = "Story"; return d }, ErrInvalidContentType},
		{"bad platform", func(d ContentDraft) ContentDraft { d.Platform = "MySpace"; return d }, ErrInvalidPlatform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(valid).Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFinanceDraft_Validate(t *testing.T) {
	valid := FinanceDraft{
		BrandID:     "b1",
		Type:        FinanceIncome,
		Amount:      decimal.NewFromInt(100),
		Description: "Retainer",
	}

	tests := []struct {
		name    string
		mutate  func(d FinanceDraft) FinanceDraft
		wantErr error
	}{
		{"valid", func(d FinanceDraft) FinanceDraft { return d }, nil},
		{"zero amount", func(d FinanceDraft) FinanceDraft { d.Amount = decimal.Zero; return d }, ErrAmountRequired},
		{"negative amount", func(d FinanceDraft) FinanceDraft { d.Amount = decimal.NewFromInt(-5); return d }, ErrAmountRequired},
		{"empty description", func(d FinanceDraft) FinanceDraft { d.Description = ""; return d }, ErrDescriptionRequired},
		{"bad type", func(d FinanceDraft) FinanceDraft { d.Type = "Refund"; return d }, ErrInvalidFinanceType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(valid).Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ─── Error Taxonomy ─────────────────────────────────────────────────────────

func TestValidationErrorsWrapSentinel(t *testing.T) {
	for _, err := range []error{
		ErrNameRequired, ErrHandleRequired, ErrTitleRequired, ErrDateRequired,
		ErrInvalidContentType, ErrInvalidPlatform, ErrAmountRequired,
		ErrDescriptionRequired, ErrInvalidFinanceType,
	} {
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%v should wrap ErrValidation", err)
		}
	}
	if errors.Is(ErrLastBrand, ErrValidation) {
		t.Error("ErrLastBrand must not be a validation error")
	}
}

// ─── Aggregate ──────────────────────────────────────────────────────────────

func TestPlannerState_CloneIsIndependent(t *testing.T) {
	state := SeedState("b1")
	state.Content = append(state.Content, ContentItem{ID: "c1", BrandID: "b1", Title: "A"})

	next := state.Clone()
	next.Content[0].Title = "B"
	next.Brands = append(next.Brands, Brand{ID: "b2"})

	if state.Content[0].Title != "A" {
		t.Error("mutating the clone leaked into the original")
	}
	if len(state.Brands) != 1 {
		t.Errorf("original brand count = %d, want 1", len(state.Brands))
	}
}

func TestSeedState(t *testing.T) {
	state := SeedState("seed-id")
	if len(state.Brands) != 1 {
		t.Fatalf("seed brands = %d, want 1", len(state.Brands))
	}
	b := state.Brands[0]
	if b.Name != "Luxe Agency" || b.Handle != "@luxe_creative" {
		t.Errorf("seed brand = %+v", b)
	}
	if len(state.Content) != 0 || len(state.Finances) != 0 {
		t.Error("seed state must start with empty collections")
	}
}
