package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal-backend/internal/domain"
)

func TestInMemoryTradeRepositoryCRUD(t *testing.T) {
	repo := NewInMemoryTradeRepository()
	ctx := context.Background()

	tr := &domain.Trade{ID: "t1", Symbol: "EURUSD", TradeDate: "2026-01-05"}
	require.NoError(t, repo.Create(ctx, tr))

	assert.Error(t, repo.Create(ctx, tr), "duplicate id must fail")

	got, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "EURUSD", got.Symbol)

	got.Symbol = "MUTATED"
	again, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "EURUSD", again.Symbol, "repository must hand out copies")

	tr.Symbol = "GBPJPY"
	require.NoError(t, repo.Update(ctx, tr))
	updated, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "GBPJPY", updated.Symbol)

	require.NoError(t, repo.Delete(ctx, "t1"))
	_, err = repo.GetByID(ctx, "t1")
	assert.Error(t, err)
	assert.Error(t, repo.Delete(ctx, "t1"))
	assert.Error(t, repo.Update(ctx, tr))
}

func TestInMemoryTradeRepositoryListChronological(t *testing.T) {
	repo := NewInMemoryTradeRepository()
	ctx := context.Background()

	for _, tr := range []*domain.Trade{
		{ID: "b", TradeDate: "2026-01-06"},
		{ID: "c", TradeDate: "2026-01-05"},
		{ID: "a", TradeDate: "2026-01-06"},
	} {
		require.NoError(t, repo.Create(ctx, tr))
	}

	out, err := repo.ListChronological(ctx)
	require.NoError(t, err)
	require.Len(t, out, 3)

	// Ascending by date, id breaks ties.
	assert.Equal(t, "c", out[0].ID)
	assert.Equal(t, "a", out[1].ID)
	assert.Equal(t, "b", out[2].ID)
}
