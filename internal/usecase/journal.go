package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"journal-backend/internal/domain"
	"journal-backend/internal/infrastructure/storage"
)

// strategyInfo describes the strategy tags used in the public playbook.
var strategyInfo = map[string]string{
	"SND":   "Supply & demand continuation after liquidity sweep.",
	"MR":    "Mean reversion after extended move away from value.",
	"BO":    "Breakout & retest strategy with structural confirmation.",
	"SWING": "Swing trading based on higher timeframe structures.",
	"INTRA": "Intraday momentum within specific trading sessions.",
}

// JournalUsecase orchestrates trade writes (with derived-field recompute)
// and assembles the dashboard and public views from the analytics engine.
type JournalUsecase struct {
	trades   domain.TradeRepository
	shots    *storage.UploadStore
	notifier *Notifier
	policy   DisciplinePolicy
	log      zerolog.Logger
}

func NewJournalUsecase(
	trades domain.TradeRepository,
	shots *storage.UploadStore,
	notifier *Notifier,
	policy DisciplinePolicy,
	log zerolog.Logger,
) *JournalUsecase {
	return &JournalUsecase{
		trades:   trades,
		shots:    shots,
		notifier: notifier,
		policy:   policy,
		log:      log,
	}
}

// prepare normalizes enums and the strategy tag and recomputes the derived
// fields. Every write path goes through here; RRRatio and RealizedR are
// never accepted from callers.
func (uc *JournalUsecase) prepare(t *domain.Trade) {
	t.Direction = domain.NormalizeDirection(string(t.Direction))
	t.Result = domain.NormalizeResult(string(t.Result))
	t.Status = domain.NormalizeStatus(string(t.Status))
	t.StrategyTag = strings.ToUpper(strings.TrimSpace(t.StrategyTag))
	t.Symbol = strings.TrimSpace(t.Symbol)
	t.Timeframe = strings.TrimSpace(t.Timeframe)

	t.RRRatio, t.RealizedR = ComputeRR(t.Direction, t.EntryPrice, t.StopLoss, t.TakeProfit, t.Result)
}

// CreateTrade fills defaults, computes derived fields and persists a new
// entry.
func (uc *JournalUsecase) CreateTrade(ctx context.Context, t *domain.Trade) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if strings.TrimSpace(t.TradeDate) == "" {
		t.TradeDate = time.Now().UTC().Format("2006-01-02")
	}
	if t.Status == "" {
		t.Status = domain.StatusPlanned
	}

	uc.prepare(t)
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := uc.trades.Create(ctx, t); err != nil {
		return fmt.Errorf("creating trade: %w", err)
	}

	uc.log.Info().Str("trade_id", t.ID).Str("symbol", t.Symbol).Msg("trade created")
	uc.maybeNotify(nil, t)
	return nil
}

// UpdateTrade overwrites every user-entered field of an existing entry and
// recomputes the derived ones. There are no partial updates.
func (uc *JournalUsecase) UpdateTrade(ctx context.Context, t *domain.Trade) error {
	existing, err := uc.trades.GetByID(ctx, t.ID)
	if err != nil {
		return err
	}

	if strings.TrimSpace(t.TradeDate) == "" {
		t.TradeDate = existing.TradeDate
	}
	uc.prepare(t)
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now().UTC()

	if err := uc.trades.Update(ctx, t); err != nil {
		return fmt.Errorf("updating trade: %w", err)
	}

	uc.log.Info().Str("trade_id", t.ID).Msg("trade updated")
	uc.maybeNotify(existing, t)
	return nil
}

// DeleteTrade removes an entry and releases its screenshots.
func (uc *JournalUsecase) DeleteTrade(ctx context.Context, id string) error {
	t, err := uc.trades.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if uc.shots != nil {
		for _, name := range []string{t.ScreenshotBefore, t.ScreenshotAfter} {
			if err := uc.shots.Remove(name); err != nil {
				uc.log.Warn().Err(err).Str("file", name).Msg("removing screenshot")
			}
		}
	}

	if err := uc.trades.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting trade: %w", err)
	}

	uc.log.Info().Str("trade_id", id).Msg("trade deleted")
	return nil
}

// GetTrade returns a single entry.
func (uc *JournalUsecase) GetTrade(ctx context.Context, id string) (*domain.Trade, error) {
	return uc.trades.GetByID(ctx, id)
}

// TradeDiscipline scores a single trade's checklist under the configured
// policy.
func (uc *JournalUsecase) TradeDiscipline(t *domain.Trade) *float64 {
	return DisciplineScore(t.FollowedPlan, t.NoRevenge, t.NoFomo, t.RespectedRR, uc.policy)
}

// maybeNotify pushes an alert when a result lands on a trade that had none.
func (uc *JournalUsecase) maybeNotify(before, after *domain.Trade) {
	if uc.notifier == nil || !after.HasResult() {
		return
	}
	if before != nil && before.Result == after.Result {
		return
	}
	uc.notifier.TradeClosed(after)
}

// StatusCounts breaks the whole journal down by lifecycle status.
type StatusCounts struct {
	Planned int `json:"planned"`
	Active  int `json:"active"`
	Closed  int `json:"closed"`
}

// PlaybookEntry describes a strategy tag in the public view.
type PlaybookEntry struct {
	Tag         string `json:"tag"`
	Description string `json:"description"`
}

// DashboardView is everything the owner dashboard renders.
type DashboardView struct {
	Trades     []*domain.Trade       `json:"trades"` // newest first
	Featured   []*domain.Trade       `json:"featured"`
	Stats      domain.DashboardStats `json:"stats"`
	Equity     domain.EquityCurve    `json:"equity"`
	Counts     StatusCounts          `json:"counts"`
	Strategies []string              `json:"strategies"`
}

// PublicView is the visitor-facing variant: filterable listing plus the
// strategy playbook. Private notes are stripped.
type PublicView struct {
	Trades     []*domain.Trade       `json:"trades"` // newest first
	Featured   []*domain.Trade       `json:"featured"`
	Stats      domain.DashboardStats `json:"stats"`
	Equity     domain.EquityCurve    `json:"equity"`
	Counts     StatusCounts          `json:"counts"`
	Strategies []string              `json:"strategies"`
	Playbook   []PlaybookEntry       `json:"playbook"`
	Filter     TradeFilter           `json:"filter"`
}

// Dashboard assembles the owner view from a single chronological snapshot.
func (uc *JournalUsecase) Dashboard(ctx context.Context) (*DashboardView, error) {
	trades, err := uc.trades.ListChronological(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading trades: %w", err)
	}

	return &DashboardView{
		Trades:     newestFirst(trades),
		Featured:   lastFeatured(trades, 3),
		Stats:      BuildStats(trades),
		Equity:     BuildEquityCurve(ClosedForStats(trades)),
		Counts:     countStatuses(trades),
		Strategies: uniqueStrategies(trades),
	}, nil
}

// Public assembles the visitor view, applying the filter to the listing
// only; statistics always cover the whole journal.
func (uc *JournalUsecase) Public(ctx context.Context, f TradeFilter) (*PublicView, error) {
	trades, err := uc.trades.ListChronological(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading trades: %w", err)
	}

	filtered := FilterTrades(trades, f)

	view := &PublicView{
		Trades:     newestFirst(filtered),
		Featured:   lastFeatured(trades, 3),
		Stats:      BuildStats(trades),
		Equity:     BuildEquityCurve(ClosedForStats(trades)),
		Counts:     countStatuses(trades),
		Strategies: uniqueStrategies(trades),
		Filter:     f,
	}

	for _, tag := range view.Strategies {
		desc, ok := strategyInfo[tag]
		if !ok {
			desc = "No description yet; used as a tag in my trades."
		}
		view.Playbook = append(view.Playbook, PlaybookEntry{Tag: tag, Description: desc})
	}

	stripPrivate(view.Trades)
	stripPrivate(view.Featured)
	return view, nil
}

// ExportClosedCSV serializes the closed-for-stats subset chronologically.
func (uc *JournalUsecase) ExportClosedCSV(ctx context.Context) ([]byte, error) {
	trades, err := uc.trades.ListChronological(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading trades: %w", err)
	}
	return ExportClosedCSV(ClosedForStats(trades))
}

func newestFirst(trades []*domain.Trade) []*domain.Trade {
	out := make([]*domain.Trade, 0, len(trades))
	for i := len(trades) - 1; i >= 0; i-- {
		out = append(out, trades[i])
	}
	return out
}

// lastFeatured returns the n most recent featured trades, newest first.
func lastFeatured(trades []*domain.Trade, n int) []*domain.Trade {
	out := make([]*domain.Trade, 0, n)
	for i := len(trades) - 1; i >= 0 && len(out) < n; i-- {
		if trades[i].Featured {
			out = append(out, trades[i])
		}
	}
	return out
}

func countStatuses(trades []*domain.Trade) StatusCounts {
	var c StatusCounts
	for _, t := range trades {
		switch t.Status {
		case domain.StatusPlanned:
			c.Planned++
		case domain.StatusActive:
			c.Active++
		case domain.StatusClosed:
			c.Closed++
		}
	}
	return c
}

func uniqueStrategies(trades []*domain.Trade) []string {
	seen := make(map[string]struct{})
	for _, t := range trades {
		if tag := strings.TrimSpace(t.StrategyTag); tag != "" {
			seen[tag] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// stripPrivate blanks fields that must never leave the public endpoint.
// The listing holds repository copies, so mutating here is safe.
func stripPrivate(trades []*domain.Trade) {
	for _, t := range trades {
		t.NotesPrivate = ""
	}
}
