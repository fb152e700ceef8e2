// Package rotation implements the index arithmetic behind the site carousels:
// a current page into an ordered collection, advanced on a timer or moved by
// explicit navigation, exposing the visible window for rendering.
package rotation

// State tracks which page of a collection is currently visible.
// Invariant: 0 <= Current < PageCount() whenever Count > 0; an empty
// collection keeps Current pinned at 0 and yields an empty window.
type State struct {
	Current  int `json:"current"`
	Count    int `json:"count"`
	PageSize int `json:"pageSize"`
}

// NewState builds a State for a collection of count items paged pageSize at a
// time. A page size below 1 is treated as 1.
func NewState(count, pageSize int) State {
	if pageSize < 1 {
		pageSize = 1
	}
	if count < 0 {
		count = 0
	}
	return State{Count: count, PageSize: pageSize}
}

// PageCount returns the number of pages, zero for an empty collection.
func (s State) PageCount() int {
	if s.Count <= 0 {
		return 0
	}
	size := s.PageSize
	if size < 1 {
		size = 1
	}
	return (s.Count + size - 1) / size
}

// Advance moves to the next page, wrapping to the first after the last.
// Advancing an empty collection is a no-op rather than an error.
func (s State) Advance() State {
	pages := s.PageCount()
	if pages == 0 {
		return s
	}
	s.Current = (s.Current + 1) % pages
	return s
}

// GoTo moves to an explicit page, clamping out-of-range targets into the
// valid range. Used for pagination dots and drag positioning.
func (s State) GoTo(target int) State {
	pages := s.PageCount()
	if pages == 0 {
		s.Current = 0
		return s
	}
	if target < 0 {
		target = 0
	}
	if target >= pages {
		target = pages - 1
	}
	s.Current = target
	return s
}

// Resize replaces the item count and re-clamps Current into the now-valid
// range. Collections arrive asynchronously after the first render, so a
// stale index must never survive a count change.
func (s State) Resize(count int) State {
	if count < 0 {
		count = 0
	}
	s.Count = count
	pages := s.PageCount()
	if pages == 0 {
		s.Current = 0
		return s
	}
	if s.Current >= pages {
		s.Current = pages - 1
	}
	if s.Current < 0 {
		s.Current = 0
	}
	return s
}

// Bounds returns the half-open slice range of the visible window. The window
// holds at most PageSize items and is shorter on the final page.
func (s State) Bounds() (start, end int) {
	if s.Count <= 0 {
		return 0, 0
	}
	size := s.PageSize
	if size < 1 {
		size = 1
	}
	start = s.Current * size
	if start > s.Count {
		start = s.Count
	}
	end = start + size
	if end > s.Count {
		end = s.Count
	}
	return start, end
}

// Window slices the visible page out of items. The slice length never exceeds
// the state's page size and never indexes past len(items).
func Window[T any](s State, items []T) []T {
	if s.Count > len(items) {
		s = s.Resize(len(items))
	}
	start, end := s.Bounds()
	if start >= len(items) {
		return nil
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
