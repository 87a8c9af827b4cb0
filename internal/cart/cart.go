// Package cart implements the customer's in-progress selection. A cart is
// session-local and never persisted; logout or reload discards it.
package cart

import (
	"fmt"

	"canteen-system/internal/domain"
)

// Cart is an ordered sequence of lines, at most one per menu item id.
// It is not safe for concurrent use; the whole system runs user-triggered
// operations one at a time.
type Cart struct {
	lines []domain.CartLine
}

func New() *Cart { return &Cart{} }

// Add puts item in the cart. A line for the same item id has its quantity
// incremented; otherwise a new line with quantity 1 is appended. The line
// keeps its own copy of the item, so later catalog additions never alter
// what was carted.
func (c *Cart) Add(item domain.MenuItem) {
	for i := range c.lines {
		if c.lines[i].ID == item.ID {
			c.lines[i].Qty++
			return
		}
	}
	c.lines = append(c.lines, domain.CartLine{MenuItem: item, Qty: 1})
}

// Remove deletes the line at index. An out-of-range index returns an error
// wrapping domain.ErrNotFound; the cart is left unchanged.
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.lines) {
		return fmt.Errorf("cart line %d: %w", index, domain.ErrNotFound)
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// Total is the sum of price×quantity over all lines; 0 for an empty cart.
func (c *Cart) Total() float64 {
	var total float64
	for _, ln := range c.lines {
		total += ln.Price * float64(ln.Qty)
	}
	return total
}

// Count is the sum of quantities, the number shown on the cart badge.
func (c *Cart) Count() int {
	n := 0
	for _, ln := range c.lines {
		n += ln.Qty
	}
	return n
}

// Len is the number of distinct lines.
func (c *Cart) Len() int { return len(c.lines) }

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	return append([]domain.CartLine(nil), c.lines...)
}

// Clear empties the cart. Called once, right after a successful order
// placement.
func (c *Cart) Clear() { c.lines = nil }
