package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"canteen-system/internal/domain"
	"canteen-system/internal/storage"
)

type LedgerRepositoryInterface interface {
	LoadOrders(ctx context.Context) ([]domain.Order, bool, error)
	SaveOrders(ctx context.Context, orders []domain.Order) error
	LoadSequence(ctx context.Context) (int, error)
	SaveSequence(ctx context.Context, seq int) error
}

// LedgerRepository persists the order ledger and its numbering sequence as
// two keys in the durable store.
type LedgerRepository struct {
	store storage.Store
}

func NewLedgerRepository(store storage.Store) LedgerRepositoryInterface {
	return &LedgerRepository{store: store}
}

func (r *LedgerRepository) LoadOrders(ctx context.Context) ([]domain.Order, bool, error) {
	b, found, err := r.store.Get(ctx, storage.KeyOrders)
	if err != nil {
		return nil, false, fmt.Errorf("load orders: %w: %w", domain.ErrPersistence, err)
	}
	if !found {
		return nil, false, nil
	}
	var orders []domain.Order
	if err := json.Unmarshal(b, &orders); err != nil {
		return nil, false, fmt.Errorf("decode ledger snapshot: %w: %w", domain.ErrPersistence, err)
	}
	return orders, true, nil
}

func (r *LedgerRepository) SaveOrders(ctx context.Context, orders []domain.Order) error {
	b, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode ledger snapshot: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyOrders, b); err != nil {
		return fmt.Errorf("save orders: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}

// LoadSequence returns the last issued order sequence number, 0 when none
// has ever been issued.
func (r *LedgerRepository) LoadSequence(ctx context.Context) (int, error) {
	b, found, err := r.store.Get(ctx, storage.KeySequence)
	if err != nil {
		return 0, fmt.Errorf("load sequence: %w: %w", domain.ErrPersistence, err)
	}
	if !found {
		return 0, nil
	}
	seq, err := strconv.Atoi(string(b))
	if err != nil {
		return 0, fmt.Errorf("decode sequence: %w: %w", domain.ErrPersistence, err)
	}
	return seq, nil
}

func (r *LedgerRepository) SaveSequence(ctx context.Context, seq int) error {
	if err := r.store.Set(ctx, storage.KeySequence, []byte(strconv.Itoa(seq))); err != nil {
		return fmt.Errorf("save sequence: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}
