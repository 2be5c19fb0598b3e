package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mnsharma/expense-tracker/internal/analysis"
	"github.com/mnsharma/expense-tracker/internal/assets"
	"github.com/mnsharma/expense-tracker/internal/charts"
	"github.com/mnsharma/expense-tracker/internal/logger"
	"github.com/mnsharma/expense-tracker/internal/models"
	"github.com/mnsharma/expense-tracker/internal/report"
	"github.com/shopspring/decimal"
)

type addExpenseRequest struct {
	Amount   json.Number `json:"amount"`
	Category string      `json:"category"`
	Date     string      `json:"date"`
}

type quickAddRequest struct {
	Text string `json:"text"`
}

type summaryResponse struct {
	models.AnalysisResult
	ImagePath string `json:"image_path"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req addExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		writeError(w, http.StatusBadRequest, "amount must be a positive number")
		return
	}

	category := strings.ToLower(strings.TrimSpace(req.Category))
	if category == "" {
		writeError(w, http.StatusBadRequest, "category is required")
		return
	}

	dateISO := strings.TrimSpace(req.Date)
	if dateISO == "" {
		dateISO = s.now().Format(time.RFC3339)
	}

	if err := s.store.Add(r.Context(), amount, category, dateISO); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to add expense")
		writeError(w, http.StatusInternalServerError, "failed to save expense")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"amount":   amount.String(),
		"category": category,
		"date":     dateISO,
	})
}

func (s *Server) handleQuickAdd(w http.ResponseWriter, r *http.Request) {
	var req quickAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	parsed := analysis.Parse(req.Text, s.now())
	if parsed == nil {
		writeError(w, http.StatusUnprocessableEntity, "Could not parse text")
		return
	}

	dateISO := parsed.Date.Format(time.RFC3339)
	if err := s.store.Add(r.Context(), parsed.Amount, parsed.Category, dateISO); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to add parsed expense")
		writeError(w, http.StatusInternalServerError, "failed to save expense")
		return
	}

	logger.Log.Info().
		Str("category", parsed.Category).
		Str("amount", parsed.Amount.String()).
		Msg("Quick-added expense")

	writeJSON(w, http.StatusCreated, map[string]string{
		"amount":   parsed.Amount.String(),
		"category": parsed.Category,
		"date":     dateISO,
	})
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	table, err := s.loadFiltered(r.Context(), timeframeParam(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load expenses")
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	table, err := s.loadFiltered(r.Context(), timeframeParam(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load expenses")
		return
	}

	result := analysis.Analyze(table)
	writeJSON(w, http.StatusOK, summaryResponse{
		AnalysisResult: result,
		ImagePath:      assets.Resolve(s.assetsDir, result.ImageKey),
	})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	table, err := s.loadFiltered(r.Context(), timeframeParam(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load expenses")
		return
	}

	rows := models.ToRaw(table)
	var buf []byte
	switch chi.URLParam(r, "kind") {
	case "pie":
		buf, err = charts.Pie(rows)
	case "bar":
		buf, err = charts.Bar(rows, s.now())
	case "line":
		buf, err = charts.Line(rows, s.now())
	default:
		writeError(w, http.StatusBadRequest, "unknown chart kind, use pie, bar or line")
		return
	}
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	table, err := s.loadFiltered(r.Context(), timeframeParam(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load expenses")
		return
	}

	buf, err := report.Export(table)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to export CSV")
		writeError(w, http.StatusInternalServerError, "failed to export expenses")
		return
	}

	filename := fmt.Sprintf("expenses_%s.csv", s.now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	count, err := report.Import(r.Context(), r.Body, s.store)
	if err != nil {
		logger.Log.Warn().Err(err).Int("imported", count).Msg("CSV import failed")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"imported": count})
}

func (s *Server) handleClearAll(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ClearAll(r.Context()); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to clear expenses")
		writeError(w, http.StatusInternalServerError, "failed to clear expenses")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// loadFiltered runs the full read path: load raw rows, normalize,
// filter by timeframe. Every request recomputes from the store.
func (s *Server) loadFiltered(ctx context.Context, timeframe string) ([]models.Expense, error) {
	rows, err := s.store.GetAll(ctx)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to load expenses")
		return nil, err
	}
	table := analysis.Normalize(rows)
	return analysis.Filter(table, timeframe, s.now()), nil
}

// timeframeParam reads the timeframe query parameter, defaulting to
// This Month as the original UI does.
func timeframeParam(r *http.Request) string {
	tf := r.URL.Query().Get("timeframe")
	if tf == "" {
		return models.TimeframeThisMonth
	}
	return tf
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
