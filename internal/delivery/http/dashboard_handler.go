package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"journal-backend/internal/usecase"
)

// DashboardHandler serves the owner dashboard and the public view.
type DashboardHandler struct {
	journal *usecase.JournalUsecase
	log     zerolog.Logger
}

func NewDashboardHandler(journal *usecase.JournalUsecase, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{journal: journal, log: log}
}

// Dashboard handles GET /api/dashboard.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	view, err := h.journal.Dashboard(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("building dashboard")
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// Public handles GET /api/public with optional status/direction/strategy/
// symbol query filters.
func (h *DashboardHandler) Public(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	filter := usecase.TradeFilter{
		Status:      q.Get("status"),
		Direction:   q.Get("direction"),
		Strategy:    q.Get("strategy"),
		SymbolQuery: q.Get("symbol"),
	}

	view, err := h.journal.Public(r.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("building public view")
		http.Error(w, "Failed to load public view", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}
