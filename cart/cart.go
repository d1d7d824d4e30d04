// Package cart holds the in-progress order for the active cashier session.
// All totals are recomputed from the lines on demand, so they can never go
// stale against the order state.
package cart

import (
	"errors"

	"kasir-pos/models"
)

var (
	ErrEmptyOrder        = errors.New("order is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Order is a mutable sequence of lines, one per product, in insertion order.
// It is owned by a single session; there is no locking.
type Order struct {
	lines []models.OrderLine
}

func New() *Order {
	return &Order{}
}

// AddItem merges qty into the existing line for the product, or appends a
// new line. The product must already be resolved through the catalog; qty
// must be at least 1. When the product tracks stock, the line may not grow
// past it.
func (o *Order) AddItem(p models.Product, qty int) error {
	if qty < 1 {
		qty = 1
	}
	for i := range o.lines {
		if o.lines[i].ProductID == p.ID {
			if p.Stock != nil && *p.Stock < o.lines[i].Quantity+qty {
				return ErrInsufficientStock
			}
			o.lines[i].Quantity += qty
			return nil
		}
	}
	if p.Stock != nil && *p.Stock < qty {
		return ErrInsufficientStock
	}
	o.lines = append(o.lines, models.OrderLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Cost:      p.Cost,
		Quantity:  qty,
	})
	return nil
}

// RemoveItem drops the line for the product. Unknown ids are a no-op.
func (o *Order) RemoveItem(productID int) {
	for i := range o.lines {
		if o.lines[i].ProductID == productID {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			return
		}
	}
}

// ChangeQuantity adjusts the line's quantity by delta. Unknown ids are a
// no-op; a result of zero or less removes the line.
func (o *Order) ChangeQuantity(productID, delta int) {
	for i := range o.lines {
		if o.lines[i].ProductID == productID {
			o.lines[i].Quantity += delta
			if o.lines[i].Quantity <= 0 {
				o.RemoveItem(productID)
			}
			return
		}
	}
}

// Clear empties the order. Clearing an already empty order is reported as
// ErrEmptyOrder so the UI can warn instead of pretending it did something.
func (o *Order) Clear() error {
	if len(o.lines) == 0 {
		return ErrEmptyOrder
	}
	o.Reset()
	return nil
}

// Reset empties the order unconditionally. Checkout uses it after a
// successful fold.
func (o *Order) Reset() {
	o.lines = nil
}

func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

// Lines returns a copy of the order lines in insertion order.
func (o *Order) Lines() []models.OrderLine {
	out := make([]models.OrderLine, len(o.lines))
	copy(out, o.lines)
	return out
}

// Subtotal sums price × quantity over all lines.
func (o *Order) Subtotal() float64 {
	total := 0.0
	for _, line := range o.lines {
		total += line.Total()
	}
	return total
}

// TotalProfit sums (price − cost) × quantity over all lines. Products with
// no recorded cost fold in as zero-margin.
func (o *Order) TotalProfit() float64 {
	profit := 0.0
	for _, line := range o.lines {
		profit += line.Profit()
	}
	return profit
}
