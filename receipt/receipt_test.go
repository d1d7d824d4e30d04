package receipt_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasir-pos/models"
	"kasir-pos/receipt"
)

func exampleTransaction() models.Transaction {
	return models.Transaction{
		ID:   1705285805000,
		Date: "2024-01-15",
		Time: "10:30:05",
		Items: []models.TransactionItem{
			{ID: 1, Name: "Dimsum Ayam", Price: 15000, Cost: 8000, Quantity: 2, Total: 30000},
			{ID: 2, Name: "Saus Sambal", Price: 2000, Cost: 500, Quantity: 1, Total: 2000},
		},
		Subtotal: 32000,
		Total:    32000,
		Profit:   15500,
	}
}

func TestRender(t *testing.T) {
	out := receipt.Render(receipt.DefaultHeader, exampleTransaction())

	for _, want := range []string{
		"NYUMIL DIMSUM",
		"TRANSAKSI #1705285805000",
		"2024-01-15 10:30",
		"Item: 3",
		"Dimsum Ayam",
		"x2",
		"Rp 30.000",
		"Saus Sambal",
		"Rp 32.000",
		"TERIMA KASIH",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderFitsThermalWidth(t *testing.T) {
	out := receipt.Render(receipt.DefaultHeader, exampleTransaction())
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 32, "line too wide: %q", line)
	}
}

func TestRenderHandlesMultiByteNames(t *testing.T) {
	txn := exampleTransaction()
	txn.Items[0].Name = "Dimsum Spésial Édisi Kafé Ayam Jumbo"

	out := receipt.Render(receipt.DefaultHeader, txn)
	assert.True(t, utf8.ValidString(out), "truncation split a rune")
	assert.Contains(t, out, "Dimsum Spésial")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), 32, "line too wide: %q", line)
	}
}

func TestRenderTruncatesLongNames(t *testing.T) {
	txn := exampleTransaction()
	txn.Items[0].Name = "Paket Dimsum Campur Spesial Jumbo"

	out := receipt.Render(receipt.DefaultHeader, txn)
	require.NotContains(t, out, "Paket Dimsum Campur Spesial Jumbo")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 32)
	}
}
