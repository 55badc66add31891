package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the journal schema. Inline DDL keeps setup to a single
// binary with no external migration tool.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`create table if not exists trades (
			id text primary key,
			trade_date text not null,
			symbol text not null default '',
			timeframe text not null default '',
			direction text not null default '',
			entry_price double precision null,
			stop_loss double precision null,
			take_profit double precision null,
			risk_percent double precision null,
			result text not null default '',
			status text not null default 'PLANNED',
			rr_ratio double precision null,
			realized_r double precision null,
			followed_plan boolean not null default false,
			no_revenge boolean not null default false,
			no_fomo boolean not null default false,
			respected_rr boolean not null default false,
			strategy_tag text not null default '',
			market_condition text not null default '',
			grade text not null default '',
			featured boolean not null default false,
			notes_public text not null default '',
			notes_private text not null default '',
			screenshot_before text not null default '',
			screenshot_after text not null default '',
			created_at timestamptz not null default now(),
			updated_at timestamptz not null default now()
		);`,
		// ListChronological orders by (trade_date, id); keep it indexed.
		`create index if not exists trades_date_id_idx on trades(trade_date, id);`,
		`create index if not exists trades_status_idx on trades(status);`,
		`create index if not exists trades_result_idx on trades(result);`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
