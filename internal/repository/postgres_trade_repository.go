package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"journal-backend/internal/domain"
)

const tradeColumns = `id, trade_date, symbol, timeframe, direction,
	entry_price, stop_loss, take_profit, risk_percent,
	result, status, rr_ratio, realized_r,
	followed_plan, no_revenge, no_fomo, respected_rr,
	strategy_tag, market_condition, grade, featured,
	notes_public, notes_private, screenshot_before, screenshot_after,
	created_at, updated_at`

// PostgresTradeRepository stores journal entries in Postgres.
type PostgresTradeRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTradeRepository(pool *pgxpool.Pool) *PostgresTradeRepository {
	return &PostgresTradeRepository{pool: pool}
}

func (r *PostgresTradeRepository) Create(ctx context.Context, t *domain.Trade) error {
	if t == nil {
		return errors.New("nil trade")
	}

	_, err := r.pool.Exec(ctx, `
		insert into trades(
			id, trade_date, symbol, timeframe, direction,
			entry_price, stop_loss, take_profit, risk_percent,
			result, status, rr_ratio, realized_r,
			followed_plan, no_revenge, no_fomo, respected_rr,
			strategy_tag, market_condition, grade, featured,
			notes_public, notes_private, screenshot_before, screenshot_after,
			created_at, updated_at
		) values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27)
	`, tradeArgs(t)...)
	return err
}

func (r *PostgresTradeRepository) GetByID(ctx context.Context, id string) (*domain.Trade, error) {
	row := r.pool.QueryRow(ctx, `select `+tradeColumns+` from trades where id = $1`, id)

	t, err := scanTrade(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("trade %s not found", id)
		}
		return nil, err
	}
	return t, nil
}

func (r *PostgresTradeRepository) Update(ctx context.Context, t *domain.Trade) error {
	if t == nil {
		return errors.New("nil trade")
	}

	tag, err := r.pool.Exec(ctx, `
		update trades set
			trade_date=$2, symbol=$3, timeframe=$4, direction=$5,
			entry_price=$6, stop_loss=$7, take_profit=$8, risk_percent=$9,
			result=$10, status=$11, rr_ratio=$12, realized_r=$13,
			followed_plan=$14, no_revenge=$15, no_fomo=$16, respected_rr=$17,
			strategy_tag=$18, market_condition=$19, grade=$20, featured=$21,
			notes_public=$22, notes_private=$23, screenshot_before=$24, screenshot_after=$25,
			created_at=$26, updated_at=$27
		where id=$1
	`, tradeArgs(t)...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("trade %s not found", t.ID)
	}
	return nil
}

func (r *PostgresTradeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `delete from trades where id=$1`, id)
	return err
}

// ListChronological returns all trades ascending by (trade_date, id).
// The equity curve builder depends on this ordering.
func (r *PostgresTradeRepository) ListChronological(ctx context.Context) ([]*domain.Trade, error) {
	rows, err := r.pool.Query(ctx, `select `+tradeColumns+` from trades order by trade_date asc, id asc`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trades := make([]*domain.Trade, 0)
	for rows.Next() {
		t, scanErr := scanTrade(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}

// Helpers

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(s scanner) (*domain.Trade, error) {
	var t domain.Trade
	var entry, stop, target, risk, rr, realized pgtype.Float8

	if err := s.Scan(
		&t.ID,
		&t.TradeDate,
		&t.Symbol,
		&t.Timeframe,
		&t.Direction,
		&entry,
		&stop,
		&target,
		&risk,
		&t.Result,
		&t.Status,
		&rr,
		&realized,
		&t.FollowedPlan,
		&t.NoRevenge,
		&t.NoFomo,
		&t.RespectedRR,
		&t.StrategyTag,
		&t.MarketCondition,
		&t.Grade,
		&t.Featured,
		&t.NotesPublic,
		&t.NotesPrivate,
		&t.ScreenshotBefore,
		&t.ScreenshotAfter,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}

	t.EntryPrice = floatPtr(entry)
	t.StopLoss = floatPtr(stop)
	t.TakeProfit = floatPtr(target)
	t.RiskPercent = floatPtr(risk)
	t.RRRatio = floatPtr(rr)
	t.RealizedR = floatPtr(realized)

	return &t, nil
}

func tradeArgs(t *domain.Trade) []any {
	return []any{
		t.ID,
		t.TradeDate,
		t.Symbol,
		t.Timeframe,
		string(t.Direction),
		nullableFloat(t.EntryPrice),
		nullableFloat(t.StopLoss),
		nullableFloat(t.TakeProfit),
		nullableFloat(t.RiskPercent),
		string(t.Result),
		string(t.Status),
		nullableFloat(t.RRRatio),
		nullableFloat(t.RealizedR),
		t.FollowedPlan,
		t.NoRevenge,
		t.NoFomo,
		t.RespectedRR,
		t.StrategyTag,
		t.MarketCondition,
		t.Grade,
		t.Featured,
		t.NotesPublic,
		t.NotesPrivate,
		t.ScreenshotBefore,
		t.ScreenshotAfter,
		t.CreatedAt,
		t.UpdatedAt,
	}
}

func nullableFloat(v *float64) any {
	if v == nil {
		return pgtype.Float8{Valid: false}
	}
	return pgtype.Float8{Valid: true, Float64: *v}
}

func floatPtr(v pgtype.Float8) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// compile-time check
var _ domain.TradeRepository = (*PostgresTradeRepository)(nil)
