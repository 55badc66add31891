package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"journal-backend/internal/domain"
	"journal-backend/internal/infrastructure/storage"
	"journal-backend/internal/usecase"
)

const maxUploadBytes = 10 << 20 // 10 MB, screenshots only

// TradeHandler handles the admin trade CRUD endpoints. Create and update
// take multipart forms (field values plus optional screenshot files), the
// same shape the journal entry form submits.
type TradeHandler struct {
	journal *usecase.JournalUsecase
	shots   *storage.UploadStore
	log     zerolog.Logger
}

func NewTradeHandler(journal *usecase.JournalUsecase, shots *storage.UploadStore, log zerolog.Logger) *TradeHandler {
	return &TradeHandler{journal: journal, shots: shots, log: log}
}

// Create handles POST /api/trades.
func (h *TradeHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	t := tradeFromForm(r)
	t.ScreenshotBefore = h.saveScreenshot(r, "screenshot_before", "before")
	t.ScreenshotAfter = h.saveScreenshot(r, "screenshot_after", "after")

	if err := h.journal.CreateTrade(r.Context(), t); err != nil {
		h.log.Error().Err(err).Msg("creating trade")
		http.Error(w, "Failed to create trade", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}

// Update handles PUT /api/trades/update?id={id}. The form is a full
// overwrite; screenshots are kept unless a replacement is uploaded.
func (h *TradeHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}

	existing, err := h.journal.GetTrade(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	t := tradeFromForm(r)
	t.ID = id
	t.ScreenshotBefore = existing.ScreenshotBefore
	t.ScreenshotAfter = existing.ScreenshotAfter
	if name := h.saveScreenshot(r, "screenshot_before", "before"); name != "" {
		t.ScreenshotBefore = name
	}
	if name := h.saveScreenshot(r, "screenshot_after", "after"); name != "" {
		t.ScreenshotAfter = name
	}

	if err := h.journal.UpdateTrade(r.Context(), t); err != nil {
		h.log.Error().Err(err).Str("trade_id", id).Msg("updating trade")
		http.Error(w, "Failed to update trade", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}

// Delete handles DELETE /api/trades/delete?id={id}.
func (h *TradeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}

	if err := h.journal.DeleteTrade(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"deleted"}`))
}

// Detail handles GET /api/trades/detail?id={id}. Public: the detail page is
// part of the shared journal.
func (h *TradeHandler) Detail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}

	t, err := h.journal.GetTrade(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	resp := struct {
		Trade           *domain.Trade `json:"trade"`
		DisciplineScore *float64      `json:"disciplineScore"`
	}{
		Trade:           t,
		DisciplineScore: h.journal.TradeDiscipline(t),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// saveScreenshot stores an uploaded file if present and returns the stored
// name, or "" when the field is absent or the save fails. Upload problems
// never fail the trade write.
func (h *TradeHandler) saveScreenshot(r *http.Request, field, slot string) string {
	if h.shots == nil {
		return ""
	}
	file, header, err := r.FormFile(field)
	if err != nil || header.Filename == "" {
		return ""
	}
	defer file.Close()

	name, err := h.shots.Save(slot, header.Filename, file)
	if err != nil {
		h.log.Warn().Err(err).Str("field", field).Msg("saving screenshot")
		return ""
	}
	return name
}

// tradeFromForm builds a Trade from the submitted form values. Prices that
// fail to parse are treated as absent; derived fields are left for the
// usecase to compute.
func tradeFromForm(r *http.Request) *domain.Trade {
	return &domain.Trade{
		TradeDate: r.FormValue("trade_date"),
		Symbol:    r.FormValue("symbol"),
		Timeframe: r.FormValue("timeframe"),
		Direction: domain.Direction(r.FormValue("direction")),

		EntryPrice:  formFloat(r, "entry_price"),
		StopLoss:    formFloat(r, "stop_loss"),
		TakeProfit:  formFloat(r, "take_profit"),
		RiskPercent: formFloat(r, "risk_percent"),

		Result: domain.Result(r.FormValue("result")),
		Status: domain.Status(r.FormValue("status")),

		FollowedPlan: formBool(r, "followed_plan"),
		NoRevenge:    formBool(r, "no_revenge"),
		NoFomo:       formBool(r, "no_fomo"),
		RespectedRR:  formBool(r, "respected_rr"),

		StrategyTag:     r.FormValue("strategy_tag"),
		MarketCondition: r.FormValue("market_condition"),
		Grade:           r.FormValue("grade"),
		Featured:        formBool(r, "featured"),
		NotesPublic:     r.FormValue("notes_public"),
		NotesPrivate:    r.FormValue("notes_private"),
	}
}

func formFloat(r *http.Request, field string) *float64 {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func formBool(r *http.Request, field string) bool {
	switch strings.ToLower(r.FormValue(field)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
