package usecase

import (
	"fmt"

	"journal-backend/internal/domain"
)

// BuildEquityCurve walks trades in the order given and accumulates realized
// R into a cumulative series with a running maximum drawdown.
//
// The input must already be sorted ascending by (trade date, id) — the
// repository's ListChronological ordering. The builder does not sort;
// feeding it a reversed list produces a curve that is wrong in a way no
// check here can detect.
//
// Trades without a realized R contribute 0 to the cumulative sum but still
// emit a point, keeping labels and points index-aligned. The peak starts at
// 0, so a journal that only ever loses still reports its full drawdown.
func BuildEquityCurve(trades []*domain.Trade) domain.EquityCurve {
	curve := domain.EquityCurve{
		Labels: make([]string, 0, len(trades)),
		Points: make([]float64, 0, len(trades)),
	}

	var cumulative, peak, maxDrawdown float64
	for _, t := range trades {
		if t.RealizedR != nil {
			cumulative += *t.RealizedR
		}
		curve.Points = append(curve.Points, round2(cumulative))
		curve.Labels = append(curve.Labels, fmt.Sprintf("%s %s %s", t.TradeDate, t.Symbol, t.Direction))

		if cumulative > peak {
			peak = cumulative
		}
		if dd := peak - cumulative; dd > maxDrawdown {
			maxDrawdown = dd
		}
	}

	curve.MaxDrawdown = round2(maxDrawdown)
	return curve
}
