// Package server exposes the expense tracker over an HTTP JSON API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mnsharma/expense-tracker/internal/models"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Store is the persistence collaborator the handlers depend on.
type Store interface {
	Add(ctx context.Context, amount decimal.Decimal, category, dateISO string) error
	GetAll(ctx context.Context) ([]models.RawExpense, error)
	ClearAll(ctx context.Context) error
}

// Server holds handler dependencies. now is a field so tests can pin
// the clock that anchors timeframe filtering and relative dates.
type Server struct {
	store     Store
	assetsDir string
	now       func() time.Time
}

// New creates a Server backed by the given store.
func New(store Store, assetsDir string) *Server {
	return &Server{
		store:     store,
		assetsDir: assetsDir,
		now:       time.Now,
	}
}

// Handler builds the routing table, wrapped with otelhttp tracing.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/expenses", s.handleAddExpense)
		r.Post("/expenses/quick", s.handleQuickAdd)
		r.Get("/expenses", s.handleListExpenses)
		r.Delete("/expenses", s.handleClearAll)
		r.Get("/summary", s.handleSummary)
		r.Get("/charts/{kind}", s.handleChart)
		r.Get("/export", s.handleExport)
		r.Post("/import", s.handleImport)
	})

	return otelhttp.NewHandler(r, "expense-tracker")
}
