package usecase

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal-backend/internal/domain"
)

func TestExportClosedCSVHeaderOnly(t *testing.T) {
	data, err := ExportClosedCSV(nil)
	require.NoError(t, err)

	assert.Equal(t,
		"trade_date,symbol,timeframe,direction,entry_price,stop_loss,take_profit,result,grade,strategy_tag,status,risk_percent,rr_ratio,realized_r\n",
		string(data))
}

func TestExportClosedCSVRows(t *testing.T) {
	trades := []*domain.Trade{
		{
			TradeDate: "2026-01-05", Symbol: "EURUSD", Timeframe: "H1",
			Direction:  domain.DirectionBuy,
			EntryPrice: fp(1.105), StopLoss: fp(1.1), TakeProfit: fp(1.115),
			Result: domain.ResultWin, Grade: "A", StrategyTag: "SND",
			Status: domain.StatusClosed, RiskPercent: fp(1),
			RRRatio: fp(2), RealizedR: fp(2),
		},
		{
			TradeDate: "2026-01-06", Symbol: "XAUUSD", Timeframe: "M15",
			Direction: domain.DirectionSell,
			Result:    domain.ResultLose, Status: domain.StatusClosed,
		},
	}

	data, err := ExportClosedCSV(trades)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows

	assert.Equal(t, []string{
		"2026-01-05", "EURUSD", "H1", "BUY",
		"1.105", "1.1", "1.115",
		"WIN", "A", "SND", "CLOSED",
		"1", "2", "2",
	}, records[1])

	// Missing optional values render as empty cells, never "0".
	assert.Equal(t, []string{
		"2026-01-06", "XAUUSD", "M15", "SELL",
		"", "", "",
		"LOSE", "", "", "CLOSED",
		"", "", "",
	}, records[2])
}

func TestExportClosedCSVQuotesSpecialCharacters(t *testing.T) {
	trades := []*domain.Trade{
		{
			TradeDate: "2026-01-05", Symbol: "EURUSD",
			Direction: domain.DirectionBuy,
			Result:    domain.ResultWin,
			Grade:     `A, "session open"`,
		},
	}

	data, err := ExportClosedCSV(trades)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Round-trips through a conforming reader without corrupting columns.
	assert.Equal(t, `A, "session open"`, records[1][8])
	assert.Len(t, records[1], 14)
}
