package usecase

import (
	"strings"

	"journal-backend/internal/domain"
)

// BuildStats rolls the journal up into dashboard statistics. Only trades
// with a recorded result participate; everything else is ignored. Every
// average and rate guards the empty set with a 0.0 default, so the function
// is safe on an empty journal.
func BuildStats(trades []*domain.Trade) domain.DashboardStats {
	closed := ClosedForStats(trades)

	stats := domain.DashboardStats{
		Total:      len(closed),
		Timeframes: make(map[string]*domain.TimeframeStats),
		Strategies: make(map[string]*domain.StrategyStats),
	}

	var rrSum, realizedSum, riskSum float64
	var rrN, realizedN, riskN int
	disciplined := 0

	tfRealized := make(map[string][]float64)

	for _, t := range closed {
		switch t.Result {
		case domain.ResultWin:
			stats.Wins++
		case domain.ResultLose:
			stats.Loses++
		}

		if t.RRRatio != nil {
			rrSum += *t.RRRatio
			rrN++
		}
		if t.RealizedR != nil {
			realizedSum += *t.RealizedR
			realizedN++
		}
		if t.RiskPercent != nil {
			riskSum += *t.RiskPercent
			riskN++
			if *t.RiskPercent > stats.MaxRisk {
				stats.MaxRisk = *t.RiskPercent
			}
		}
		if t.FullyDisciplined() {
			disciplined++
		}

		if tf := strings.TrimSpace(t.Timeframe); tf != "" {
			bucket := stats.Timeframes[tf]
			if bucket == nil {
				bucket = &domain.TimeframeStats{}
				stats.Timeframes[tf] = bucket
			}
			bucket.Count++
			switch t.Result {
			case domain.ResultWin:
				bucket.Wins++
			case domain.ResultLose:
				bucket.Loses++
			}
			if t.RealizedR != nil {
				tfRealized[tf] = append(tfRealized[tf], *t.RealizedR)
			}
		}

		if tag := strings.TrimSpace(t.StrategyTag); tag != "" {
			bucket := stats.Strategies[tag]
			if bucket == nil {
				bucket = &domain.StrategyStats{}
				stats.Strategies[tag] = bucket
			}
			bucket.Count++
			switch t.Result {
			case domain.ResultWin:
				bucket.Wins++
			case domain.ResultLose:
				bucket.Loses++
			}
		}
	}

	if stats.Total > 0 {
		stats.WinRate = round1(float64(stats.Wins) / float64(stats.Total) * 100)
		stats.DisciplineScore = round1(float64(disciplined) / float64(stats.Total) * 100)
	}
	if rrN > 0 {
		stats.AvgRR = round2(rrSum / float64(rrN))
	}
	if realizedN > 0 {
		stats.AvgRealizedR = round2(realizedSum / float64(realizedN))
	}
	if riskN > 0 {
		stats.AvgRisk = round2(riskSum / float64(riskN))
	}
	stats.MaxRisk = round2(stats.MaxRisk)

	for tf, bucket := range stats.Timeframes {
		if rs := tfRealized[tf]; len(rs) > 0 {
			sum := 0.0
			for _, r := range rs {
				sum += r
			}
			bucket.AvgR = round2(sum / float64(len(rs)))
		}
		if bucket.Count > 0 {
			bucket.WinRate = round1(float64(bucket.Wins) / float64(bucket.Count) * 100)
		}
	}

	return stats
}
