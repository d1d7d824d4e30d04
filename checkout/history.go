package checkout

import (
	"kasir-pos/models"
	"kasir-pos/store"
)

// Transactions returns the full transaction log, oldest first.
func (s *Service) Transactions() ([]models.Transaction, error) {
	var history []models.Transaction
	if _, err := s.kv.Load(store.KeyTransactions, &history); err != nil {
		return nil, &PersistenceError{Op: "transaction log", Err: err}
	}
	return history, nil
}

// TransactionsByDate filters the log to one calendar day.
func (s *Service) TransactionsByDate(date string) ([]models.Transaction, error) {
	history, err := s.Transactions()
	if err != nil {
		return nil, err
	}
	var filtered []models.Transaction
	for _, txn := range history {
		if txn.Date == date {
			filtered = append(filtered, txn)
		}
	}
	return filtered, nil
}

// TransactionByID looks up a single transaction, reporting false when it is
// not in the log.
func (s *Service) TransactionByID(id int64) (models.Transaction, bool, error) {
	history, err := s.Transactions()
	if err != nil {
		return models.Transaction{}, false, err
	}
	for _, txn := range history {
		if txn.ID == id {
			return txn, true, nil
		}
	}
	return models.Transaction{}, false, nil
}

// DailyStats returns the aggregate for every recorded day. Reading is pure;
// repeated calls without an intervening checkout return identical values.
func (s *Service) DailyStats() (models.DailyStats, error) {
	stats := models.DailyStats{}
	if _, err := s.kv.Load(store.KeyDailyStats, &stats); err != nil {
		return nil, &PersistenceError{Op: "daily stats", Err: err}
	}
	return stats, nil
}

// StatsFor returns one day's aggregate, reporting false when no checkout
// has happened on that date.
func (s *Service) StatsFor(date string) (models.DayStats, bool, error) {
	stats, err := s.DailyStats()
	if err != nil {
		return models.DayStats{}, false, err
	}
	day, ok := stats[date]
	return day, ok, nil
}
