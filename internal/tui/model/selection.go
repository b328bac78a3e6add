package model

// Selection tracks the highlighted result by logical index. It knows nothing
// about separator rows; the view maps logical indices to visual rows.
//
// The zero value is inactive. While Count is zero every mutator is a no-op.
type Selection struct {
	index int
	count int
}

// Reset points the selection at the first of count items.
func (s *Selection) Reset(count int) {
	if count < 0 {
		count = 0
	}
	s.count = count
	s.index = 0
}

// Count returns the number of selectable items.
func (s Selection) Count() int {
	return s.count
}

// Index returns the selected logical index, or false when nothing can be
// selected.
func (s Selection) Index() (int, bool) {
	if s.count == 0 {
		return 0, false
	}
	return s.index, true
}

// Next moves one item down. It reports whether the index changed.
func (s *Selection) Next() bool {
	if s.count == 0 || s.index >= s.count-1 {
		return false
	}
	s.index++
	return true
}

// Previous moves one item up.
func (s *Selection) Previous() bool {
	if s.count == 0 || s.index == 0 {
		return false
	}
	s.index--
	return true
}

// First jumps to the first item.
func (s *Selection) First() bool {
	return s.Set(0)
}

// Last jumps to the last item.
func (s *Selection) Last() bool {
	return s.Set(s.count - 1)
}

// Set selects index i. Out of range values are ignored.
func (s *Selection) Set(i int) bool {
	if s.count == 0 || i < 0 || i >= s.count || i == s.index {
		return false
	}
	s.index = i
	return true
}
