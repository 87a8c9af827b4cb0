// Package insight produces the "AI analysis" panel text. The output is
// templated from current aggregates after a fixed delay that mimics
// thinking time; there is no inference here and none is intended.
package insight

import (
	"context"
	"fmt"
	"time"

	"canteen-system/internal/catalog"
	"canteen-system/internal/stats"
)

// revenueBaseline splits the financial insight into its two branches.
const revenueBaseline = 50.0

// Analyzer lets the presentation layer swap the templated implementation
// for a double.
type Analyzer interface {
	Analyze(ctx context.Context) ([]string, error)
}

// Templated reads the aggregates at trigger time and fills in three fixed
// insight templates. It only reads, so it never blocks or is blocked by
// any other operation.
type Templated struct {
	stats   *stats.Service
	catalog catalog.CatalogServiceInterface
	delay   time.Duration
}

func NewTemplated(st *stats.Service, cat catalog.CatalogServiceInterface, delay time.Duration) *Templated {
	return &Templated{stats: st, catalog: cat, delay: delay}
}

// Analyze waits the configured delay, then returns the three templated
// insights. Canceling the context cuts the wait short with ctx.Err().
func (t *Templated) Analyze(ctx context.Context) ([]string, error) {
	if t.delay > 0 {
		timer := time.NewTimer(t.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	revenue := t.stats.Revenue(ctx)

	var financial string
	if revenue > revenueBaseline {
		financial = fmt.Sprintf(
			"Financial Analysis: Current daily revenue is $%.2f. This is 15%% higher than the predicted baseline for this time of week.",
			revenue)
	} else {
		financial = `Financial Alert: Revenue is below average. AI suggests launching a "Combo Offer" to boost sales during the next hour.`
	}

	inventory := "Predictive Inventory: No menu data available."
	if menu := t.catalog.List(ctx); len(menu) > 0 {
		inventory = fmt.Sprintf(
			"Predictive Inventory: Demand for %q items is rising. AI recommends stocking +20%% inventory for tomorrow.",
			menu[0].Category)
	}

	operational := "Operational Efficiency: Average prep time is optimal. Kitchen staff utilization is at 85%. No adjustments needed."

	return []string{financial, inventory, operational}, nil
}

var _ Analyzer = (*Templated)(nil)

// Static is a canned Analyzer for tests and demos.
type Static struct {
	Insights []string
	Err      error
}

func (s *Static) Analyze(context.Context) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]string(nil), s.Insights...), nil
}

var _ Analyzer = (*Static)(nil)
