package cart

import (
	"kasir-pos/models"
	"kasir-pos/store"
)

// Restore replaces the order contents with the persisted snapshot, if one
// exists. Called once at startup so a crashed or reloaded terminal picks up
// the cart where it left off.
func (o *Order) Restore(kv store.KV) error {
	var lines []models.OrderLine
	found, err := kv.Load(store.KeyCart, &lines)
	if err != nil {
		return err
	}
	if found {
		o.lines = lines
	}
	return nil
}

// Snapshot persists the current lines. Called after every mutation.
func (o *Order) Snapshot(kv store.KV) error {
	return kv.Save(store.KeyCart, o.lines)
}
