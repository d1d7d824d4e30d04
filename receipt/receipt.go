// Package receipt renders a completed transaction as plain text for an
// 80mm thermal printer (32 characters per row, monospaced).
package receipt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"kasir-pos/currency"
	"kasir-pos/models"
)

const width = 32

// Header is the stall identity printed at the top of every receipt.
type Header struct {
	StoreName string
	Address   string
	Phone     string
	Cashier   string
}

// DefaultHeader matches the storefront branding.
var DefaultHeader = Header{
	StoreName: "NYUMIL DIMSUM",
	Address:   "Jl. Dimsum Lezat No. 123",
	Phone:     "Telp: (021) 555-7890",
	Cashier:   "Admin",
}

// Render lays out the receipt. The caller decides where it goes (HTTP
// response, printer spool, file).
func Render(h Header, txn models.Transaction) string {
	var b strings.Builder

	writeCentered(&b, strings.ToUpper(h.StoreName))
	writeCentered(&b, h.Address)
	writeCentered(&b, h.Phone)
	writeDivider(&b)

	writeRow(&b, fmt.Sprintf("TRANSAKSI #%d", txn.ID), "")
	writeRow(&b, txn.Date+" "+shortTime(txn.Time), "")
	writeRow(&b, "Kasir: "+h.Cashier, fmt.Sprintf("Item: %d", txn.ItemCount()))
	writeDivider(&b)

	for _, item := range txn.Items {
		writeRow(&b, truncate(item.Name, 20), fmt.Sprintf("x%d", item.Quantity))
		writeRow(&b, "", currency.FormatRupiah(item.Total))
	}
	writeDivider(&b)

	writeRow(&b, "Subtotal:", currency.FormatRupiah(txn.Subtotal))
	writeRow(&b, "TOTAL:", currency.FormatRupiah(txn.Total))
	writeDivider(&b)

	writeCentered(&b, fmt.Sprintf("* %d *", txn.ID))
	b.WriteString("\n")
	writeCentered(&b, "TERIMA KASIH")
	writeCentered(&b, "Struk ini sebagai bukti")
	writeCentered(&b, "pembayaran")

	return b.String()
}

// shortTime trims seconds off an "HH:MM:SS" stamp.
func shortTime(t string) string {
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return t
	}
	return parts[0] + ":" + parts[1]
}

// truncate cuts by runes so multi-byte product names survive intact.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func writeCentered(b *strings.Builder, s string) {
	s = truncate(s, width)
	pad := (width - utf8.RuneCountInString(s)) / 2
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(s)
	b.WriteString("\n")
}

func writeRow(b *strings.Builder, left, right string) {
	if right == "" {
		b.WriteString(left)
		b.WriteString("\n")
		return
	}
	gap := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(left)
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(right)
	b.WriteString("\n")
}

func writeDivider(b *strings.Builder) {
	b.WriteString(strings.Repeat("-", width))
	b.WriteString("\n")
}
