package usecase

import (
	"strings"

	"journal-backend/internal/domain"
)

// TradeFilter selects a view-specific subset of the journal. Empty fields
// (or the literal "ALL") leave that dimension unfiltered. SymbolQuery is a
// case-insensitive substring match; the other fields are case-insensitive
// equality. Predicates compose conjunctively.
type TradeFilter struct {
	Status      string `json:"status"`
	Direction   string `json:"direction"`
	Strategy    string `json:"strategy"`
	SymbolQuery string `json:"symbol"`
}

func wildcard(v string) bool {
	return v == "" || strings.EqualFold(v, "ALL")
}

// FilterTrades returns the matching subsequence of trades in input order.
// It never reorders and never mutates the input.
func FilterTrades(trades []*domain.Trade, f TradeFilter) []*domain.Trade {
	q := strings.ToLower(strings.TrimSpace(f.SymbolQuery))

	out := make([]*domain.Trade, 0, len(trades))
	for _, t := range trades {
		if !wildcard(f.Status) && !strings.EqualFold(string(t.Status), f.Status) {
			continue
		}
		if !wildcard(f.Direction) && !strings.EqualFold(string(t.Direction), f.Direction) {
			continue
		}
		if !wildcard(f.Strategy) && !strings.EqualFold(t.StrategyTag, f.Strategy) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(t.Symbol), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ClosedForStats returns the subsequence of trades with a recorded result,
// preserving input order. Note this deliberately differs from
// status == CLOSED: a closed trade without an outcome contributes nothing
// to statistics, and an active trade with a recorded partial result does.
func ClosedForStats(trades []*domain.Trade) []*domain.Trade {
	out := make([]*domain.Trade, 0, len(trades))
	for _, t := range trades {
		if t.HasResult() {
			out = append(out, t)
		}
	}
	return out
}
