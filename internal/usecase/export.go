package usecase

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"journal-backend/internal/domain"
)

// csvHeader is the fixed export column order. Consumers depend on it; do not
// reorder.
var csvHeader = []string{
	"trade_date", "symbol", "timeframe", "direction",
	"entry_price", "stop_loss", "take_profit",
	"result", "grade", "strategy_tag", "status",
	"risk_percent", "rr_ratio", "realized_r",
}

// ExportClosedCSV serializes closed trades to CSV, one row per trade in
// input order. Missing optional values render as empty cells. Fields
// containing delimiters or quotes are quoted per RFC 4180, so free-text
// strategy tags cannot corrupt columns.
func ExportClosedCSV(trades []*domain.Trade) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, t := range trades {
		row := []string{
			t.TradeDate,
			t.Symbol,
			t.Timeframe,
			string(t.Direction),
			csvFloat(t.EntryPrice),
			csvFloat(t.StopLoss),
			csvFloat(t.TakeProfit),
			string(t.Result),
			t.Grade,
			t.StrategyTag,
			string(t.Status),
			csvFloat(t.RiskPercent),
			csvFloat(t.RRRatio),
			csvFloat(t.RealizedR),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func csvFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
