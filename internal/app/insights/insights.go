// Package insights computes read-only derived aggregates over the planner
// state. Nothing here is stored; every value is recomputed from the
// brand-filtered subset on demand.
package insights

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agencyflow/agencyflow/internal/domain"
)

// MaxVisiblePerDay caps how many items a calendar day cell shows before
// collapsing the remainder into an overflow count. Display policy, not a
// storage constraint.
const MaxVisiblePerDay = 3

// ─── Content Stats ──────────────────────────────────────────────────────────

// ContentStats summarizes one brand's content pipeline.
type ContentStats struct {
	Total   int `json:"total"`
	Posted  int `json:"posted"`
	Planned int `json:"planned"`
}

// ContentStatsFor counts one brand's items by status.
func ContentStatsFor(state *domain.PlannerState, brandID string) ContentStats {
	var stats ContentStats
	for _, c := range state.Content {
		if c.BrandID != brandID {
			continue
		}
		stats.Total++
		if c.Status == domain.StatusPosted {
			stats.Posted++
		} else {
			stats.Planned++
		}
	}
	return stats
}

// TypeCount is one slice of the content-mix breakdown.
type TypeCount struct {
	Type  domain.ContentType `json:"type"`
	Count int                `json:"count"`
}

// TypeBreakdown counts one brand's items per content type. All four types
// are always present, zero-filled, in display order.
func TypeBreakdown(state *domain.PlannerState, brandID string) []TypeCount {
	counts := make(map[domain.ContentType]int, len(domain.ContentTypes))
	for _, c := range state.Content {
		if c.BrandID == brandID {
			counts[c.Type]++
		}
	}
	out := make([]TypeCount, 0, len(domain.ContentTypes))
	for _, t := range domain.ContentTypes {
		out = append(out, TypeCount{Type: t, Count: counts[t]})
	}
	return out
}

// ─── Finance Totals ─────────────────────────────────────────────────────────

// FinanceTotals summarizes one brand's ledger.
type FinanceTotals struct {
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
	AdBudget decimal.Decimal `json:"ad_budget"`
	Profit   decimal.Decimal `json:"profit"`
	Margin   float64         `json:"margin"` // profit/income; 0 when income is 0
}

// FinanceTotalsFor sums one brand's entries by type and derives profit and
// margin. With zero income the margin is 0, never NaN or Inf.
func FinanceTotalsFor(state *domain.PlannerState, brandID string) FinanceTotals {
	t := FinanceTotals{
		Income:   decimal.Zero,
		Expense:  decimal.Zero,
		AdBudget: decimal.Zero,
	}
	for _, f := range state.Finances {
		if f.BrandID != brandID {
			continue
		}
		switch f.Type {
		case domain.FinanceIncome:
			t.Income = t.Income.Add(f.Amount)
		case domain.FinanceExpense:
			t.Expense = t.Expense.Add(f.Amount)
		case domain.FinanceAdBudget:
			t.AdBudget = t.AdBudget.Add(f.Amount)
		}
	}
	t.Profit = t.Income.Sub(t.Expense).Sub(t.AdBudget)
	if t.Income.IsPositive() {
		t.Margin = t.Profit.Div(t.Income).InexactFloat64()
	}
	return t
}

// ─── Calendar Grouping ──────────────────────────────────────────────────────

// DayBucket is one calendar day's worth of content for the calendar view.
// Day is the date-only key ("2024-03-05"); time-of-day never splits a
// bucket.
type DayBucket struct {
	Day      string               `json:"day"`
	Visible  []domain.ContentItem `json:"visible"`  // at most MaxVisiblePerDay
	Overflow int                  `json:"overflow"` // items beyond the cap
	Total    int                  `json:"total"`
}

// CalendarDays groups one brand's items by calendar day. Buckets come back
// ordered by day; items within a bucket keep insertion order.
func CalendarDays(state *domain.PlannerState, brandID string) []DayBucket {
	byDay := make(map[string][]domain.ContentItem)
	for _, c := range state.Content {
		if c.BrandID != brandID {
			continue
		}
		day := c.Day().Format(time.DateOnly)
		byDay[day] = append(byDay[day], c)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	buckets := make([]DayBucket, 0, len(days))
	for _, day := range days {
		items := byDay[day]
		visible := items
		overflow := 0
		if len(items) > MaxVisiblePerDay {
			visible = items[:MaxVisiblePerDay]
			overflow = len(items) - MaxVisiblePerDay
		}
		buckets = append(buckets, DayBucket{
			Day:      day,
			Visible:  visible,
			Overflow: overflow,
			Total:    len(items),
		})
	}
	return buckets
}

// MonthDays filters CalendarDays down to one month.
func MonthDays(state *domain.PlannerState, brandID string, year int, month time.Month) []DayBucket {
	prefix := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
	var out []DayBucket
	for _, b := range CalendarDays(state, brandID) {
		if strings.HasPrefix(b.Day, prefix) {
			out = append(out, b)
		}
	}
	return out
}
