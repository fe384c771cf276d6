package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/agencyflow/agencyflow/internal/app/insights"
	"github.com/agencyflow/agencyflow/internal/domain"
	"github.com/agencyflow/agencyflow/internal/infra/caption"
)

// ─── State ──────────────────────────────────────────────────────────────────

// handleState returns the full planner snapshot.
// GET /api/state
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.planner.Snapshot())
}

// ─── Brands ─────────────────────────────────────────────────────────────────

type addBrandRequest struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
}

// handleAddBrand creates a client brand.
// POST /api/brands
func (s *Server) handleAddBrand(w http.ResponseWriter, r *http.Request) {
	var req addBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	brand, err := s.planner.AddBrand(r.Context(), req.Name, req.Handle)
	recordMutation("add_brand", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, brand)
}

// handleDeleteBrand removes a brand and everything attributed to it.
// Requires ?confirm=true; the last remaining brand is rejected outright.
// DELETE /api/brands/{id}
func (s *Server) handleDeleteBrand(w http.ResponseWriter, r *http.Request) {
	err := s.planner.DeleteBrand(r.Context(), chi.URLParam(r, "id"))
	recordMutation("delete_brand", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.planner.Snapshot().Brands)
}

// ─── Content ────────────────────────────────────────────────────────────────

type addContentRequest struct {
	BrandID  string `json:"brand_id"`
	Type     string `json:"type"`
	Platform string `json:"platform"`
	Date     string `json:"date"`
	Title    string `json:"title"`
	Caption  string `json:"caption"`
	Notes    string `json:"notes"`
}

// handleAddContent schedules a new content item from a draft.
// POST /api/content
func (s *Server) handleAddContent(w http.ResponseWriter, r *http.Request) {
	var req addContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil && req.Date != "" {
		writeError(w, http.StatusBadRequest, "invalid date: use YYYY-MM-DD or RFC3339")
		return
	}

	draft := domain.ContentDraft{
		BrandID:  req.BrandID,
		Type:     domain.ContentType(req.Type),
		Platform: domain.Platform(req.Platform),
		Date:     date,
		Title:    req.Title,
		Caption:  req.Caption,
		Notes:    req.Notes,
	}
	item, err := s.planner.AddContent(r.Context(), draft)
	recordMutation("add_content", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// handleToggleContent flips an item between Planned and Posted.
// POST /api/content/{id}/toggle
func (s *Server) handleToggleContent(w http.ResponseWriter, r *http.Request) {
	item, err := s.planner.ToggleContentStatus(r.Context(), chi.URLParam(r, "id"))
	recordMutation("toggle_content", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// handleDeleteContent removes one content item.
// DELETE /api/content/{id}
func (s *Server) handleDeleteContent(w http.ResponseWriter, r *http.Request) {
	err := s.planner.DeleteContent(r.Context(), chi.URLParam(r, "id"))
	recordMutation("delete_content", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListContent returns one brand's items sorted by schedule date.
// GET /api/content?brand={id}
func (s *Server) handleListContent(w http.ResponseWriter, r *http.Request) {
	brandID, ok := s.requireBrand(w, r)
	if !ok {
		return
	}
	items := s.planner.ListContent(brandID)
	if items == nil {
		items = []domain.ContentItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// ─── Finances ───────────────────────────────────────────────────────────────

type addFinanceRequest struct {
	BrandID     string          `json:"brand_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// handleAddFinance records a ledger entry. The entry date is server-side.
// POST /api/finances
func (s *Server) handleAddFinance(w http.ResponseWriter, r *http.Request) {
	var req addFinanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := s.planner.AddFinance(r.Context(), domain.FinanceDraft{
		BrandID:     req.BrandID,
		Type:        domain.FinanceType(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
	})
	recordMutation("add_finance", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// handleDeleteFinance removes one ledger entry.
// DELETE /api/finances/{id}
func (s *Server) handleDeleteFinance(w http.ResponseWriter, r *http.Request) {
	err := s.planner.DeleteFinance(r.Context(), chi.URLParam(r, "id"))
	recordMutation("delete_finance", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─── Month Reset ────────────────────────────────────────────────────────────

// handleResetMonth clears every content item. Requires ?confirm=true.
// POST /api/reset-month
func (s *Server) handleResetMonth(w http.ResponseWriter, r *http.Request) {
	err := s.planner.ResetMonth(r.Context())
	recordMutation("reset_month", err)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─── Views ──────────────────────────────────────────────────────────────────

// handleDashboard returns the derived aggregates one brand's dashboard shows.
// GET /api/dashboard?brand={id}
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	brandID, ok := s.requireBrand(w, r)
	if !ok {
		return
	}
	state := s.planner.Snapshot()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"content":  insights.ContentStatsFor(state, brandID),
		"finances": insights.FinanceTotalsFor(state, brandID),
		"by_type":  insights.TypeBreakdown(state, brandID),
	})
}

// handleCalendar returns day buckets for the calendar grid. With year and
// month parameters the buckets are limited to that month.
// GET /api/calendar?brand={id}&year=2024&month=3
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	brandID, ok := s.requireBrand(w, r)
	if !ok {
		return
	}
	state := s.planner.Snapshot()

	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	var buckets []insights.DayBucket
	if yearStr != "" && monthStr != "" {
		year, errY := strconv.Atoi(yearStr)
		month, errM := strconv.Atoi(monthStr)
		if errY != nil || errM != nil || month < 1 || month > 12 {
			writeError(w, http.StatusBadRequest, "invalid year or month")
			return
		}
		buckets = insights.MonthDays(state, brandID, year, time.Month(month))
	} else {
		buckets = insights.CalendarDays(state, brandID)
	}
	if buckets == nil {
		buckets = []insights.DayBucket{}
	}
	writeJSON(w, http.StatusOK, buckets)
}

// ─── Caption ────────────────────────────────────────────────────────────────

type captionRequest struct {
	Topic    string `json:"topic"`
	Platform string `json:"platform"`
	BrandID  string `json:"brand_id"`
}

// handleCaption drafts a caption for the given topic. Service failures
// surface as the fixed fallback text, never as an error status.
// POST /api/caption
func (s *Server) handleCaption(w http.ResponseWriter, r *http.Request) {
	var req captionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	platform := domain.Platform(req.Platform)
	if !platform.Valid() {
		writeError(w, http.StatusBadRequest, "unknown platform")
		return
	}

	brandName := "Brand"
	if b := s.planner.Snapshot().FindBrand(req.BrandID); b != nil {
		brandName = b.Name
	}

	text := s.captions.Generate(r.Context(), req.Topic, platform, brandName)
	outcome := "ok"
	if text == caption.Fallback {
		outcome = "fallback"
	}
	captionRequestsTotal.WithLabelValues(outcome).Inc()

	writeJSON(w, http.StatusOK, map[string]string{"caption": text})
}

// ─── Helpers ────────────────────────────────────────────────────────────────

func (s *Server) requireBrand(w http.ResponseWriter, r *http.Request) (string, bool) {
	brandID := r.URL.Query().Get("brand")
	if brandID == "" {
		writeError(w, http.StatusBadRequest, "brand query parameter is required")
		return "", false
	}
	if s.planner.Snapshot().FindBrand(brandID) == nil {
		writeError(w, http.StatusNotFound, domain.ErrBrandNotFound.Error())
		return "", false
	}
	return brandID, true
}

// parseDate accepts RFC3339 or a bare calendar date.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

// writeDomainError maps planner errors onto HTTP statuses. Validation
// rejections are 400; missing entities 404; the last-brand invariant 409;
// an unconfirmed destructive mutation 428.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrLastBrand):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotConfirmed):
		writeError(w, http.StatusPreconditionRequired, err.Error())
	case errors.Is(err, domain.ErrBrandNotFound),
		errors.Is(err, domain.ErrContentNotFound),
		errors.Is(err, domain.ErrFinanceNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
