// Package nav owns the reader's navigation state: the selected work, book
// and chapter, the active browser column, and the two scroll offsets. It is
// deliberately free of any widget-library state; the UI derives its list
// rendering from this state every frame.
package nav

import "scripture-tui/internal/scripture"

// Column identifies one of the three browser columns.
type Column int

const (
	ColumnWork Column = iota
	ColumnBook
	ColumnChapter

	numColumns = 3
)

// Rect is a viewport rectangle in terminal cells, recorded by the last
// render and used to route pointer scroll events.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// State is the complete navigation state. Selection indices are always kept
// inside the corpus bounds; moving a selection resets everything downstream
// of it (a new work selects its first book and chapter and rewinds both
// scrolls, a new book its first chapter, a new chapter the scrolls).
type State struct {
	Work    int
	Book    int
	Chapter int
	Active  Column

	TextScroll     int
	FootnoteScroll int

	TextRect     Rect
	FootnoteRect Rect
}

// MoveDown advances the active column's selection by one, wrapping past the
// end, then applies the cascading resets.
func (s *State) MoveDown(works []scripture.Work) {
	s.move(works, 1)
}

// MoveUp retreats the active column's selection by one, wrapping before the
// start, then applies the cascading resets.
func (s *State) MoveUp(works []scripture.Work) {
	s.move(works, -1)
}

func (s *State) move(works []scripture.Work, dir int) {
	if len(works) == 0 {
		return
	}
	switch s.Active {
	case ColumnWork:
		s.Work = wrap(s.Work+dir, len(works))
		s.Book = 0
		s.Chapter = 0
		s.resetScrolls()
	case ColumnBook:
		s.Book = wrap(s.Book+dir, len(works[s.Work].Books))
		s.Chapter = 0
		s.resetScrolls()
	case ColumnChapter:
		s.Chapter = wrap(s.Chapter+dir, len(works[s.Work].Books[s.Book].Chapters))
		s.resetScrolls()
	}
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	if i < 0 {
		return n - 1
	}
	if i >= n {
		return 0
	}
	return i
}

// MoveLeft rotates the active column backward. Selection and scrolls are
// untouched.
func (s *State) MoveLeft() {
	s.Active = (s.Active + numColumns - 1) % numColumns
}

// MoveRight rotates the active column forward.
func (s *State) MoveRight() {
	s.Active = (s.Active + 1) % numColumns
}

func (s *State) resetScrolls() {
	s.TextScroll = 0
	s.FootnoteScroll = 0
}

// Scroll applies a pointer scroll delta to whichever viewport contains the
// pointer. Offsets floor at zero here; the upper bound is clamped against
// the wrapped text height at render time. Outside both viewports the event
// is a no-op.
func (s *State) Scroll(x, y, delta int) {
	switch {
	case s.TextRect.Contains(x, y):
		s.TextScroll = clampLow(s.TextScroll + delta)
	case s.FootnoteRect.Contains(x, y):
		s.FootnoteScroll = clampLow(s.FootnoteScroll + delta)
	}
}

func clampLow(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// SelectedChapter returns the chapter under the current selection and true,
// or false over an empty corpus.
func SelectedChapter(works []scripture.Work, s State) (scripture.Chapter, bool) {
	if s.Work >= len(works) {
		return scripture.Chapter{}, false
	}
	books := works[s.Work].Books
	if s.Book >= len(books) {
		return scripture.Chapter{}, false
	}
	chapters := books[s.Book].Chapters
	if s.Chapter >= len(chapters) {
		return scripture.Chapter{}, false
	}
	return chapters[s.Chapter], true
}
