package ledger

import (
	"context"
	"fmt"
	"time"

	"canteen-system/internal/cart"
	"canteen-system/internal/domain"
)

// tokenRange bounds the pickup-counter token; tokens cycle 1..tokenRange so
// they stay short enough to call out at the counter.
const tokenRange = 200

type LedgerServiceInterface interface {
	PlaceOrder(ctx context.Context, c *cart.Cart) (domain.Order, error)
	AdvanceStatus(ctx context.Context, orderID string, target domain.Status) (domain.Order, error)
	AllOrders(ctx context.Context) []domain.Order
}

// LedgerService owns the durable, insertion-ordered sequence of placed
// orders. Orders are append-only except for forward status transitions.
type LedgerService struct {
	repo   LedgerRepositoryInterface
	orders []domain.Order // most recent first
	seq    int            // last issued order number

	now func() time.Time
}

var _ LedgerServiceInterface = (*LedgerService)(nil)

func NewLedgerService(repo LedgerRepositoryInterface) *LedgerService {
	return &LedgerService{repo: repo, now: time.Now}
}

// Initialize restores the persisted ledger and sequence. Absence of either
// is the normal first-run case.
func (ls *LedgerService) Initialize(ctx context.Context) error {
	orders, found, err := ls.repo.LoadOrders(ctx)
	if err != nil {
		return err
	}
	if found {
		ls.orders = orders
	}
	seq, err := ls.repo.LoadSequence(ctx)
	if err != nil {
		return err
	}
	ls.seq = seq
	return nil
}

// PlaceOrder materializes the cart into a new pending order: snapshots the
// lines, fixes the total at the cart's current total, assigns the next
// order number and token, prepends to the ledger and persists. The cart is
// cleared only after the order is safely recorded.
func (ls *LedgerService) PlaceOrder(ctx context.Context, c *cart.Cart) (domain.Order, error) {
	if c.Len() == 0 {
		return domain.Order{}, fmt.Errorf("place order: %w", domain.ErrEmptyCart)
	}

	seq := ls.seq + 1
	order := domain.Order{
		ID:     orderNumber(ls.now(), seq),
		Items:  c.Lines(),
		Total:  c.Total(),
		Status: domain.StatusPending,
		Date:   ls.now().Format("1/2/2006, 3:04:05 PM"),
		Token:  (seq-1)%tokenRange + 1,
	}

	// The sequence goes first: if the orders write then fails, the number
	// is merely burned. Writing orders first could leave a durable order
	// next to a stale sequence, and a restart would reissue its id.
	if err := ls.repo.SaveSequence(ctx, seq); err != nil {
		return domain.Order{}, err
	}
	updated := append([]domain.Order{order}, ls.orders...)
	if err := ls.repo.SaveOrders(ctx, updated); err != nil {
		return domain.Order{}, err
	}

	ls.orders = updated
	ls.seq = seq
	c.Clear()
	return order, nil
}

// AdvanceStatus moves the order to target, which must be the immediate
// successor of its current status. Anything else fails with
// ErrInvalidTransition and leaves the order untouched, so out-of-band
// misuse cannot corrupt the lifecycle.
func (ls *LedgerService) AdvanceStatus(ctx context.Context, orderID string, target domain.Status) (domain.Order, error) {
	idx := -1
	for i := range ls.orders {
		if ls.orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Order{}, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}

	current := ls.orders[idx].Status
	next, ok := current.Next()
	if !ok || target != next {
		return domain.Order{}, fmt.Errorf("order %s: %s -> %s: %w",
			orderID, current, target, domain.ErrInvalidTransition)
	}

	ls.orders[idx].Status = target
	if err := ls.repo.SaveOrders(ctx, ls.orders); err != nil {
		// Roll the in-memory state back so a retry sees the persisted truth.
		ls.orders[idx].Status = current
		return domain.Order{}, err
	}
	return ls.orders[idx], nil
}

// AllOrders returns a copy of the ledger, most recently placed first.
func (ls *LedgerService) AllOrders(_ context.Context) []domain.Order {
	return append([]domain.Order(nil), ls.orders...)
}

// orderNumber formats identifiers as ORD_YYYYMMDD_NNN from the issue date
// and the persisted sequence.
func orderNumber(t time.Time, seq int) string {
	return fmt.Sprintf("ORD_%s_%03d", t.UTC().Format("20060102"), seq)
}
