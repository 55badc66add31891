package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"journal-backend/internal/usecase"
)

// ExportHandler serves the closed-trades CSV download.
type ExportHandler struct {
	journal *usecase.JournalUsecase
	log     zerolog.Logger
}

func NewExportHandler(journal *usecase.JournalUsecase, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{journal: journal, log: log}
}

// ClosedCSV handles GET /api/public/export/csv.
func (h *ExportHandler) ClosedCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, err := h.journal.ExportClosedCSV(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("exporting csv")
		http.Error(w, "Failed to export trades", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trades_closed.csv"`)
	w.Write(data)
}
