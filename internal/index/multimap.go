package index

// MultiMap is an insertion-ordered map from text to an append-only list of
// question ids. Iteration follows first appearance of each key, which keeps
// index construction deterministic for identical input.
type MultiMap struct {
	keys []string
	ids  map[string][]string
}

// NewMultiMap returns an empty multimap. A key's empty id list is created
// explicitly on first append; there is no auto-initializing access.
func NewMultiMap() *MultiMap {
	return &MultiMap{ids: make(map[string][]string)}
}

// Append adds id to the list for key, registering the key on first use.
func (m *MultiMap) Append(key, id string) {
	if _, ok := m.ids[key]; !ok {
		m.keys = append(m.keys, key)
		m.ids[key] = []string{}
	}
	m.ids[key] = append(m.ids[key], id)
}

// IDs returns the id list for key in append order, or nil if absent.
func (m *MultiMap) IDs(key string) []string {
	return m.ids[key]
}

// Keys returns all keys in first-appearance order.
func (m *MultiMap) Keys() []string {
	return m.keys
}

// Len returns the number of distinct keys.
func (m *MultiMap) Len() int {
	return len(m.keys)
}
