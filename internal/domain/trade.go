package domain

import (
	"context"
	"strings"
	"time"
)

// Direction is the planned side of a trade.
type Direction string

const (
	DirectionBuy  Direction = "BUY"
	DirectionSell Direction = "SELL"
)

// Result is the recorded outcome of a trade. Empty means no outcome yet.
// Unknown values are kept as entered (uppercased) so the trade still shows
// up in listings; statistics simply ignore them.
type Result string

const (
	ResultWin       Result = "WIN"
	ResultLose      Result = "LOSE"
	ResultBreakEven Result = "BE"
)

// Status tracks the trade lifecycle. Status and Result are independent:
// a CLOSED trade without a recorded result is excluded from statistics.
type Status string

const (
	StatusPlanned Status = "PLANNED"
	StatusActive  Status = "ACTIVE"
	StatusClosed  Status = "CLOSED"
)

// NormalizeDirection maps free-form input to a Direction ("" stays "").
func NormalizeDirection(s string) Direction {
	return Direction(strings.ToUpper(strings.TrimSpace(s)))
}

// NormalizeResult maps free-form input to a Result.
func NormalizeResult(s string) Result {
	return Result(strings.ToUpper(strings.TrimSpace(s)))
}

// NormalizeStatus maps free-form input to a Status.
func NormalizeStatus(s string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(s)))
}

// Trade is a single journal entry. Price levels and risk are optional until
// the plan is filled in; RRRatio and RealizedR are derived and recomputed on
// every write, never set directly.
type Trade struct {
	ID        string `json:"id"`
	TradeDate string `json:"tradeDate"` // "2006-01-02", string-sortable

	Symbol    string    `json:"symbol"`
	Timeframe string    `json:"timeframe"` // e.g. "M15", "H1", "D1"
	Direction Direction `json:"direction"`

	EntryPrice  *float64 `json:"entryPrice,omitempty"`
	StopLoss    *float64 `json:"stopLoss,omitempty"`
	TakeProfit  *float64 `json:"takeProfit,omitempty"`
	RiskPercent *float64 `json:"riskPercent,omitempty"`

	Result Result `json:"result"`
	Status Status `json:"status"`

	RRRatio   *float64 `json:"rrRatio,omitempty"`
	RealizedR *float64 `json:"realizedR,omitempty"`

	FollowedPlan bool `json:"followedPlan"`
	NoRevenge    bool `json:"noRevenge"`
	NoFomo       bool `json:"noFomo"`
	RespectedRR  bool `json:"respectedRr"`

	StrategyTag     string `json:"strategyTag"` // uppercased on write
	MarketCondition string `json:"marketCondition"`
	Grade           string `json:"grade"`
	Featured        bool   `json:"featured"`
	NotesPublic     string `json:"notesPublic"`
	NotesPrivate    string `json:"notesPrivate,omitempty"`

	ScreenshotBefore string `json:"screenshotBefore,omitempty"`
	ScreenshotAfter  string `json:"screenshotAfter,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasResult reports whether an outcome has been recorded. This is the
// "closed for statistics" predicate used by every aggregate, the equity
// curve and the CSV export.
func (t *Trade) HasResult() bool {
	return t.Result != ""
}

// FullyDisciplined reports whether all four checklist flags are set.
func (t *Trade) FullyDisciplined() bool {
	return t.FollowedPlan && t.NoRevenge && t.NoFomo && t.RespectedRR
}

// TradeRepository defines persistence for journal entries.
// ListChronological returns trades ascending by (trade_date, id); the equity
// curve builder relies on that ordering and does not sort.
type TradeRepository interface {
	Create(ctx context.Context, t *Trade) error
	GetByID(ctx context.Context, id string) (*Trade, error)
	Update(ctx context.Context, t *Trade) error
	Delete(ctx context.Context, id string) error
	ListChronological(ctx context.Context) ([]*Trade, error)
}
