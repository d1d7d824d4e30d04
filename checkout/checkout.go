// Package checkout finalizes an order into an immutable transaction and
// folds it into the running daily statistics.
package checkout

import (
	"fmt"
	"log"
	"time"

	"kasir-pos/cart"
	"kasir-pos/models"
	"kasir-pos/store"
)

// PersistenceError wraps a store failure during checkout. When it is
// returned the order has NOT been reset, so the cashier can retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Service runs the checkout pipeline against a key-value store. Checkouts
// are serialized by the single cashier session, so the wall-clock id cannot
// collide.
type Service struct {
	kv  store.KV
	now func() time.Time
}

func New(kv store.KV) *Service {
	return &Service{kv: kv, now: time.Now}
}

// Checkout builds a Transaction from the order, appends it to the
// transaction log, folds it into the day's statistics and only then resets
// the order. A persistence failure leaves the order untouched.
func (s *Service) Checkout(order *cart.Order) (models.Transaction, error) {
	if order.IsEmpty() {
		return models.Transaction{}, cart.ErrEmptyOrder
	}

	now := s.now()
	txn := models.Transaction{
		ID:       now.UnixMilli(),
		Date:     now.Format("2006-01-02"),
		Time:     now.Format("15:04:05"),
		Subtotal: order.Subtotal(),
		Total:    order.Subtotal(),
		Profit:   order.TotalProfit(),
	}
	for _, line := range order.Lines() {
		txn.Items = append(txn.Items, models.TransactionItem{
			ID:       line.ProductID,
			Name:     line.Name,
			Price:    line.Price,
			Cost:     line.Cost,
			Quantity: line.Quantity,
			Total:    line.Total(),
		})
	}

	if err := s.appendToLog(txn); err != nil {
		return models.Transaction{}, err
	}
	if err := s.foldIntoStats(txn); err != nil {
		return models.Transaction{}, err
	}

	order.Reset()
	if err := order.Snapshot(s.kv); err != nil {
		// The sale itself is recorded; a stale snapshot only resurfaces an
		// already-sold cart on restart.
		log.Printf("Failed to clear cart snapshot after checkout #%d: %v", txn.ID, err)
	}
	return txn, nil
}

// appendToLog rewrites the whole transaction log. Fine at stall scale; an
// indexed store would be needed before the history grows large.
func (s *Service) appendToLog(txn models.Transaction) error {
	var history []models.Transaction
	if _, err := s.kv.Load(store.KeyTransactions, &history); err != nil {
		return &PersistenceError{Op: "transaction log", Err: err}
	}
	history = append(history, txn)
	if err := s.kv.Save(store.KeyTransactions, history); err != nil {
		return &PersistenceError{Op: "transaction log", Err: err}
	}
	return nil
}

func (s *Service) foldIntoStats(txn models.Transaction) error {
	stats := models.DailyStats{}
	if _, err := s.kv.Load(store.KeyDailyStats, &stats); err != nil {
		return &PersistenceError{Op: "daily stats", Err: err}
	}

	day, ok := stats[txn.Date]
	if !ok {
		day = models.DayStats{Items: make(map[int]models.ProductStats)}
	}
	if day.Items == nil {
		day.Items = make(map[int]models.ProductStats)
	}

	day.Revenue += txn.Total
	day.Transactions++
	day.Profit += txn.Profit
	for _, item := range txn.Items {
		day.ItemsSold += item.Quantity

		p, ok := day.Items[item.ID]
		if !ok {
			p = models.ProductStats{Name: item.Name}
		}
		p.Quantity += item.Quantity
		p.Revenue += item.Total
		p.Profit += (item.Price - item.Cost) * float64(item.Quantity)
		day.Items[item.ID] = p
	}
	stats[txn.Date] = day

	if err := s.kv.Save(store.KeyDailyStats, stats); err != nil {
		return &PersistenceError{Op: "daily stats", Err: err}
	}
	return nil
}
