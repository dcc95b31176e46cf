package align

// OrderedSet is a string set that remembers first-insertion order. Duplicates
// are dropped; the relative order of first appearances is kept.
type OrderedSet struct {
	seen  map[string]struct{}
	items []string
}

// NewOrderedSet returns an empty ordered set.
func NewOrderedSet() *OrderedSet {
	return &OrderedSet{seen: make(map[string]struct{})}
}

// Add inserts value if unseen and reports whether it was inserted.
func (s *OrderedSet) Add(value string) bool {
	if _, ok := s.seen[value]; ok {
		return false
	}
	s.seen[value] = struct{}{}
	s.items = append(s.items, value)
	return true
}

// Items returns the distinct values in insertion order.
func (s *OrderedSet) Items() []string {
	return s.items
}

// Len returns the number of distinct values.
func (s *OrderedSet) Len() int {
	return len(s.items)
}
