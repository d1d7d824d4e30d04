package store

import "encoding/json"

// MemoryKV is an in-memory KV used in tests and as a fallback when no
// database is wired up. The JSON round trip keeps its semantics identical
// to SQLiteKV.
type MemoryKV struct {
	values map[string]json.RawMessage
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]json.RawMessage)}
}

func (m *MemoryKV) Load(key string, out any) (bool, error) {
	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *MemoryKV) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	return nil
}
