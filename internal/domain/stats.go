package domain

// TimeframeStats is the per-timeframe breakdown on the dashboard.
type TimeframeStats struct {
	Count   int     `json:"count"`
	Wins    int     `json:"wins"`
	Loses   int     `json:"loses"`
	AvgR    float64 `json:"avgR"`
	WinRate float64 `json:"winRate"`
}

// StrategyStats is the per-strategy breakdown on the dashboard.
type StrategyStats struct {
	Count int `json:"count"`
	Wins  int `json:"wins"`
	Loses int `json:"loses"`
}

// DashboardStats aggregates the closed-for-stats subset of the journal.
// DisciplineScore here is portfolio-level: the percentage of closed trades
// with all four checklist flags set.
type DashboardStats struct {
	Total           int     `json:"total"`
	Wins            int     `json:"wins"`
	Loses           int     `json:"loses"`
	WinRate         float64 `json:"winRate"`
	AvgRR           float64 `json:"avgRr"`
	AvgRealizedR    float64 `json:"avgRealizedR"`
	AvgRisk         float64 `json:"avgRisk"`
	MaxRisk         float64 `json:"maxRisk"`
	DisciplineScore float64 `json:"disciplineScore"`

	Timeframes map[string]*TimeframeStats `json:"timeframes"`
	Strategies map[string]*StrategyStats  `json:"strategies"`
}

// EquityCurve is the chronological cumulative-R series. Labels and Points
// are index-aligned and always the same length. MaxDrawdown is the largest
// peak-to-trough decline seen along the scan, never negative.
type EquityCurve struct {
	Labels      []string  `json:"labels"`
	Points      []float64 `json:"points"`
	MaxDrawdown float64   `json:"maxDrawdown"`
}
