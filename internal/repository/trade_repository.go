package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"journal-backend/internal/domain"
)

// InMemoryTradeRepository keeps the journal in memory. Used in tests and
// when the server runs without a DATABASE_URL.
type InMemoryTradeRepository struct {
	mu     sync.RWMutex
	trades map[string]*domain.Trade
}

func NewInMemoryTradeRepository() *InMemoryTradeRepository {
	return &InMemoryTradeRepository{
		trades: make(map[string]*domain.Trade),
	}
}

func (r *InMemoryTradeRepository) Create(_ context.Context, t *domain.Trade) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.trades[t.ID]; exists {
		return fmt.Errorf("trade %s already exists", t.ID)
	}

	cp := *t
	r.trades[t.ID] = &cp
	return nil
}

func (r *InMemoryTradeRepository) GetByID(_ context.Context, id string) (*domain.Trade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.trades[id]
	if !exists {
		return nil, fmt.Errorf("trade %s not found", id)
	}
	cp := *t
	return &cp, nil
}

func (r *InMemoryTradeRepository) Update(_ context.Context, t *domain.Trade) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.trades[t.ID]; !exists {
		return fmt.Errorf("trade %s not found", t.ID)
	}

	cp := *t
	r.trades[t.ID] = &cp
	return nil
}

func (r *InMemoryTradeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.trades[id]; !exists {
		return fmt.Errorf("trade %s not found", id)
	}

	delete(r.trades, id)
	return nil
}

// ListChronological returns copies sorted ascending by (trade date, id),
// the same ordering the Postgres repository produces.
func (r *InMemoryTradeRepository) ListChronological(_ context.Context) ([]*domain.Trade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Trade, 0, len(r.trades))
	for _, t := range r.trades {
		cp := *t
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TradeDate != out[j].TradeDate {
			return out[i].TradeDate < out[j].TradeDate
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// compile-time check
var _ domain.TradeRepository = (*InMemoryTradeRepository)(nil)
