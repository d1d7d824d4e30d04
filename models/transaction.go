// models/transaction.go
package models

// TransactionItem is a frozen copy of an order line at checkout time.
type TransactionItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Cost     float64 `json:"cost"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// Transaction is the immutable record of a completed sale. ID is the
// checkout timestamp in unix milliseconds; checkouts are serialized so it
// doubles as an identifier.
type Transaction struct {
	ID       int64             `json:"id"`
	Date     string            `json:"date"` // "2006-01-02", local time
	Time     string            `json:"time"` // "15:04:05", local time
	Items    []TransactionItem `json:"items"`
	Subtotal float64           `json:"subtotal"`
	Total    float64           `json:"total"`
	Profit   float64           `json:"profit"`
}

// ItemCount sums the quantities across all items.
func (t Transaction) ItemCount() int {
	count := 0
	for _, item := range t.Items {
		count += item.Quantity
	}
	return count
}
