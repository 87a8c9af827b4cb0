// Package stats derives the owner-dashboard aggregates from the order
// ledger. It holds no state of its own; the ledger is always the source of
// truth and everything here is recomputed on demand.
package stats

import (
	"context"

	"canteen-system/internal/domain"
)

// Stats is one dashboard snapshot.
type Stats struct {
	Revenue float64
	Orders  int
	Pending int
}

// Revenue sums the fixed totals of every order regardless of status.
// Counting pending and unfulfilled orders as revenue is an intentional
// simplification of this system, not an oversight.
func Revenue(orders []domain.Order) float64 {
	var sum float64
	for _, o := range orders {
		sum += o.Total
	}
	return sum
}

// PendingCount counts orders that have not yet completed, i.e. everything
// still somewhere on the counter queue.
func PendingCount(orders []domain.Order) int {
	n := 0
	for _, o := range orders {
		if o.Status != domain.StatusCompleted {
			n++
		}
	}
	return n
}

// Count is the total number of placed orders.
func Count(orders []domain.Order) int { return len(orders) }

// Ledger is the slice of the ledger service the aggregator reads.
type Ledger interface {
	AllOrders(ctx context.Context) []domain.Order
}

// Service binds the pure derivations to a live ledger.
type Service struct {
	ledger Ledger
}

func NewService(ledger Ledger) *Service {
	return &Service{ledger: ledger}
}

func (s *Service) Revenue(ctx context.Context) float64 {
	return Revenue(s.ledger.AllOrders(ctx))
}

func (s *Service) PendingCount(ctx context.Context) int {
	return PendingCount(s.ledger.AllOrders(ctx))
}

// Snapshot computes all dashboard numbers from one ledger read.
func (s *Service) Snapshot(ctx context.Context) Stats {
	orders := s.ledger.AllOrders(ctx)
	return Stats{
		Revenue: Revenue(orders),
		Orders:  Count(orders),
		Pending: PendingCount(orders),
	}
}
