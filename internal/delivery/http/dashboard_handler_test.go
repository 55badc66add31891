package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal-backend/internal/domain"
	"journal-backend/internal/repository"
	"journal-backend/internal/usecase"
)

func seedJournal(t *testing.T) *usecase.JournalUsecase {
	t.Helper()
	repo := repository.NewInMemoryTradeRepository()
	journal := usecase.NewJournalUsecase(repo, nil, nil, usecase.ScoreAlways, zerolog.Nop())

	entry := func(date, symbol string, dir domain.Direction, result domain.Result) {
		e, s, tp := 100.0, 95.0, 110.0
		if dir == domain.DirectionSell {
			s, tp = 105.0, 90.0
		}
		tr := &domain.Trade{
			TradeDate: date, Symbol: symbol, Direction: dir,
			EntryPrice: &e, StopLoss: &s, TakeProfit: &tp,
			Result: result, Status: domain.StatusClosed,
			StrategyTag: "SND", NotesPrivate: "secret notes",
		}
		require.NoError(t, journal.CreateTrade(context.Background(), tr))
	}
	entry("2026-01-05", "EURUSD", domain.DirectionBuy, domain.ResultWin)
	entry("2026-01-06", "GBPJPY", domain.DirectionSell, domain.ResultLose)
	return journal
}

func TestDashboardEndpoint(t *testing.T) {
	h := NewDashboardHandler(seedJournal(t), zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Dashboard(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var view usecase.DashboardView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Len(t, view.Trades, 2)
	assert.Equal(t, 2, view.Stats.Total)
	assert.Equal(t, []string{"SND"}, view.Strategies)
}

func TestPublicEndpointAppliesQueryFilter(t *testing.T) {
	h := NewDashboardHandler(seedJournal(t), zerolog.Nop())

	rec := httptest.NewRecorder()
	h.Public(rec, httptest.NewRequest(http.MethodGet, "/api/public?direction=SELL", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var view usecase.PublicView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Trades, 1)
	assert.Equal(t, "GBPJPY", view.Trades[0].Symbol)
	assert.Equal(t, 2, view.Stats.Total) // stats ignore the filter

	assert.NotContains(t, rec.Body.String(), "secret notes")
}

func TestExportEndpoint(t *testing.T) {
	h := NewExportHandler(seedJournal(t), zerolog.Nop())

	rec := httptest.NewRecorder()
	h.ClosedCSV(rec, httptest.NewRequest(http.MethodGet, "/api/public/export/csv", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "trades_closed.csv")

	lines := strings.Split(strings.TrimRight(rec.Body.String(), "\n"), "\n")
	require.Len(t, lines, 3) // header + 2 closed trades
	assert.True(t, strings.HasPrefix(lines[0], "trade_date,symbol,"))
}

func TestTokenEndpoints(t *testing.T) {
	tokens := repository.NewTokenRepository()
	h := NewTokenHandler(tokens)

	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		if strings.HasSuffix(path, "unregister") {
			h.Unregister(rec, req)
		} else {
			h.Register(rec, req)
		}
		return rec
	}

	rec := post("/api/notifications/register", `{"token":"tok-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, tokens.Count())

	rec = post("/api/notifications/register", `{"token":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post("/api/notifications/unregister", `{"token":"tok-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, tokens.Count())
}
