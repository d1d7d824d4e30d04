// models/order.go
package models

// OrderLine is one row of the in-progress cart. At most one line exists per
// product id; merging quantities is the cart's job.
type OrderLine struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Cost      float64 `json:"cost"`
	Quantity  int     `json:"quantity"`
}

// Total is the line amount shown to the customer.
func (l OrderLine) Total() float64 {
	return l.Price * float64(l.Quantity)
}

// Profit is the margin earned on this line.
func (l OrderLine) Profit() float64 {
	return (l.Price - l.Cost) * float64(l.Quantity)
}
