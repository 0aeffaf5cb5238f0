package models

// ParsedURLSet holds the pieces harvested from a list of absolute URLs.
// Every list is a set kept in first insertion order.
type ParsedURLSet struct {
	Paths   []string `json:"paths"`
	Params  []string `json:"params"`
	Domains []string `json:"domains"`
}

// OrderedSet is an insertion-ordered string set.
// It is not safe for concurrent use.
type OrderedSet struct {
	index map[string]struct{}
	items []string
}

// NewOrderedSet creates an empty OrderedSet.
func NewOrderedSet() *OrderedSet {
	return &OrderedSet{index: make(map[string]struct{})}
}

// Add inserts s and reports whether it was new.
func (s *OrderedSet) Add(item string) bool {
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

// Contains reports whether s holds item.
func (s *OrderedSet) Contains(item string) bool {
	_, ok := s.index[item]
	return ok
}

// Len returns the number of items.
func (s *OrderedSet) Len() int {
	return len(s.items)
}

// Items returns a copy of the items in insertion order. It never returns nil.
func (s *OrderedSet) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
