package controllers

import (
	"log"

	"kasir-pos/cart"
	"kasir-pos/catalog"
	"kasir-pos/checkout"
	"kasir-pos/notify"
	"kasir-pos/store"
)

// Handler owns the single cashier session: the active order plus its
// collaborators. One Handler per terminal.
type Handler struct {
	Catalog     catalog.Catalog
	KV          store.KV
	Order       *cart.Order
	CheckoutSvc *checkout.Service
	Notifier    notify.Notifier
}

func NewHandler(cat catalog.Catalog, kv store.KV, notifier notify.Notifier) *Handler {
	order := cart.New()
	if err := order.Restore(kv); err != nil {
		log.Printf("Failed to restore cart snapshot, starting empty: %v", err)
	}
	return &Handler{
		Catalog:     cat,
		KV:          kv,
		Order:       order,
		CheckoutSvc: checkout.New(kv),
		Notifier:    notifier,
	}
}

// snapshot persists the cart after a mutation. A failed snapshot only costs
// crash recovery, not the sale, so it is logged rather than surfaced.
func (h *Handler) snapshot() {
	if err := h.Order.Snapshot(h.KV); err != nil {
		log.Printf("Failed to snapshot cart: %v", err)
	}
}
