package websocket

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"journal-backend/internal/usecase"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // single-user app behind the owner's own origin
	},
}

// Handler pushes the dashboard view over a websocket so the frontend can
// keep stats and the equity curve live without polling.
type Handler struct {
	journal  *usecase.JournalUsecase
	interval time.Duration
	log      zerolog.Logger
}

func NewHandler(journal *usecase.JournalUsecase, interval time.Duration, log zerolog.Logger) *Handler {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Handler{journal: journal, interval: interval, log: log}
}

// Handle upgrades the connection, sends the current view immediately and
// re-sends it on every tick until the client goes away.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	h.log.Debug().Str("remote", r.RemoteAddr).Msg("dashboard client connected")

	if err := h.push(r, conn); err != nil {
		return
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := h.push(r, conn); err != nil {
			return
		}
	}
}

func (h *Handler) push(r *http.Request, conn *websocket.Conn) error {
	view, err := h.journal.Dashboard(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("building dashboard for push")
		return err
	}
	if err := conn.WriteJSON(view); err != nil {
		h.log.Debug().Err(err).Msg("dashboard client gone")
		return err
	}
	return nil
}
