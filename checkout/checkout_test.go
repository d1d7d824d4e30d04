package checkout

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasir-pos/cart"
	"kasir-pos/models"
	"kasir-pos/store"
)

// failingKV passes everything through to a MemoryKV except saves of the
// configured key, which fail.
type failingKV struct {
	*store.MemoryKV
	failKey string
}

var errDiskFull = errors.New("disk full")

func (f *failingKV) Save(key string, value any) error {
	if key == f.failKey {
		return errDiskFull
	}
	return f.MemoryKV.Save(key, value)
}

func fixedClock() time.Time {
	return time.Date(2024, 1, 15, 10, 30, 5, 0, time.Local)
}

func newTestService(kv store.KV) *Service {
	svc := New(kv)
	svc.now = fixedClock
	return svc
}

func exampleOrder(t *testing.T) *cart.Order {
	t.Helper()
	order := cart.New()
	require.NoError(t, order.AddItem(models.Product{ID: 1, Name: "Dimsum Ayam", Price: 15000, Cost: 8000}, 2))
	require.NoError(t, order.AddItem(models.Product{ID: 2, Name: "Saus Sambal", Price: 2000, Cost: 500}, 1))
	return order
}

func TestCheckoutEmptyOrder(t *testing.T) {
	kv := store.NewMemoryKV()
	svc := newTestService(kv)

	_, err := svc.Checkout(cart.New())
	assert.ErrorIs(t, err, cart.ErrEmptyOrder)

	// No persisted state may change.
	history, err := svc.Transactions()
	require.NoError(t, err)
	assert.Empty(t, history)

	stats, err := svc.DailyStats()
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestCheckoutBuildsTransaction(t *testing.T) {
	kv := store.NewMemoryKV()
	svc := newTestService(kv)
	order := exampleOrder(t)

	txn, err := svc.Checkout(order)
	require.NoError(t, err)

	assert.Equal(t, fixedClock().UnixMilli(), txn.ID)
	assert.Equal(t, "2024-01-15", txn.Date)
	assert.Equal(t, "10:30:05", txn.Time)
	assert.Equal(t, 32000.0, txn.Subtotal)
	assert.Equal(t, 32000.0, txn.Total)
	assert.Equal(t, 15500.0, txn.Profit)

	require.Len(t, txn.Items, 2)
	assert.Equal(t, 30000.0, txn.Items[0].Total)
	assert.Equal(t, 2000.0, txn.Items[1].Total)
	assert.Equal(t, 3, txn.ItemCount())

	t.Run("order is reset and snapshot cleared", func(t *testing.T) {
		assert.True(t, order.IsEmpty())

		restored := cart.New()
		require.NoError(t, restored.Restore(kv))
		assert.True(t, restored.IsEmpty())
	})

	t.Run("transaction is appended to the log", func(t *testing.T) {
		history, err := svc.Transactions()
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, txn, history[0])
	})
}

func TestCheckoutFoldsDailyStats(t *testing.T) {
	kv := store.NewMemoryKV()
	svc := newTestService(kv)

	_, err := svc.Checkout(exampleOrder(t))
	require.NoError(t, err)

	day, found, err := svc.StatsFor("2024-01-15")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, 32000.0, day.Revenue)
	assert.Equal(t, 1, day.Transactions)
	assert.Equal(t, 3, day.ItemsSold)
	assert.Equal(t, 15500.0, day.Profit)

	require.Contains(t, day.Items, 1)
	assert.Equal(t, "Dimsum Ayam", day.Items[1].Name)
	assert.Equal(t, 2, day.Items[1].Quantity)
	assert.Equal(t, 30000.0, day.Items[1].Revenue)
	assert.Equal(t, 14000.0, day.Items[1].Profit)

	require.Contains(t, day.Items, 2)
	assert.Equal(t, 1, day.Items[2].Quantity)
	assert.Equal(t, 2000.0, day.Items[2].Revenue)
	assert.Equal(t, 1500.0, day.Items[2].Profit)
}

func TestSequentialCheckoutsAccumulate(t *testing.T) {
	kv := store.NewMemoryKV()
	svc := newTestService(kv)

	_, err := svc.Checkout(exampleOrder(t))
	require.NoError(t, err)
	_, err = svc.Checkout(exampleOrder(t))
	require.NoError(t, err)

	day, found, err := svc.StatsFor("2024-01-15")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, 64000.0, day.Revenue)
	assert.Equal(t, 2, day.Transactions)
	assert.Equal(t, 6, day.ItemsSold)
	assert.Equal(t, 31000.0, day.Profit)
	assert.Equal(t, 4, day.Items[1].Quantity)

	history, err := svc.Transactions()
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestStatsReadsArePure(t *testing.T) {
	kv := store.NewMemoryKV()
	svc := newTestService(kv)

	_, err := svc.Checkout(exampleOrder(t))
	require.NoError(t, err)

	first, err := svc.DailyStats()
	require.NoError(t, err)
	second, err := svc.DailyStats()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCheckoutPersistenceFailure(t *testing.T) {
	t.Run("transaction log save fails", func(t *testing.T) {
		kv := &failingKV{MemoryKV: store.NewMemoryKV(), failKey: store.KeyTransactions}
		svc := newTestService(kv)
		order := exampleOrder(t)

		_, err := svc.Checkout(order)
		var perr *PersistenceError
		require.ErrorAs(t, err, &perr)
		assert.ErrorIs(t, err, errDiskFull)

		// The cart survives for a retry and the day's stats are untouched.
		assert.False(t, order.IsEmpty())
		_, found, err := svc.StatsFor("2024-01-15")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("daily stats save fails", func(t *testing.T) {
		kv := &failingKV{MemoryKV: store.NewMemoryKV(), failKey: store.KeyDailyStats}
		svc := newTestService(kv)
		order := exampleOrder(t)

		_, err := svc.Checkout(order)
		var perr *PersistenceError
		require.ErrorAs(t, err, &perr)

		assert.False(t, order.IsEmpty())
		_, found, err := svc.StatsFor("2024-01-15")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestHistoryLookups(t *testing.T) {
	kv := store.NewMemoryKV()
	svc := newTestService(kv)

	txn, err := svc.Checkout(exampleOrder(t))
	require.NoError(t, err)

	t.Run("by date", func(t *testing.T) {
		matched, err := svc.TransactionsByDate("2024-01-15")
		require.NoError(t, err)
		assert.Len(t, matched, 1)

		empty, err := svc.TransactionsByDate("2024-01-16")
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("by id", func(t *testing.T) {
		got, found, err := svc.TransactionByID(txn.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, txn, got)

		_, found, err = svc.TransactionByID(42)
		require.NoError(t, err)
		assert.False(t, found)
	})
}
