// Package styledtext holds the backend-independent output model of the
// chapter renderer: ordered lines of styled spans, plus the wrap metric
// and scroll clamping that the drawing layer shares.
package styledtext

import "github.com/mattn/go-runewidth"

// Align is the horizontal alignment of a line.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Span is a run of text with uniform emphasis.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
}

// Line is an ordered sequence of spans.
type Line struct {
	Spans []Span
	Align Align
}

// Text is an ordered sequence of lines.
type Text struct {
	Lines []Line
}

func Plain(s string) Span  { return Span{Text: s} }
func Bold(s string) Span   { return Span{Text: s, Bold: true} }
func Italic(s string) Span { return Span{Text: s, Italic: true} }

// NewLine builds a left-aligned line from spans.
func NewLine(spans ...Span) Line {
	return Line{Spans: spans}
}

// CenteredLine builds a centered line from spans.
func CenteredLine(spans ...Span) Line {
	return Line{Spans: spans, Align: AlignCenter}
}

// Append adds lines to the text.
func (t *Text) Append(lines ...Line) {
	t.Lines = append(t.Lines, lines...)
}

// AppendBlank adds an empty line.
func (t *Text) AppendBlank() {
	t.Lines = append(t.Lines, Line{})
}

// Empty reports whether the text has no lines.
func (t Text) Empty() bool { return len(t.Lines) == 0 }

// Width returns the display width of the line in terminal cells.
func (l Line) Width() int {
	w := 0
	for _, sp := range l.Spans {
		w += runewidth.StringWidth(sp.Text)
	}
	return w
}

// WrapLine hard-wraps a line at width cells and returns the resulting rows.
// A line whose width is an exact multiple of the wrap width produces a
// trailing empty row; the scroll bound metric (1 + width/viewport extra rows)
// counts rows the same way, so the two can never disagree.
func WrapLine(l Line, width int) []Line {
	if width <= 0 {
		return []Line{l}
	}

	rows := []Line{{Align: l.Align}}
	col := 0
	for _, sp := range l.Spans {
		cur := Span{Bold: sp.Bold, Italic: sp.Italic}
		for _, r := range sp.Text {
			rw := runewidth.RuneWidth(r)
			if col+rw > width {
				if cur.Text != "" {
					last := &rows[len(rows)-1]
					last.Spans = append(last.Spans, cur)
					cur.Text = ""
				}
				rows = append(rows, Line{Align: l.Align})
				col = 0
			}
			cur.Text += string(r)
			col += rw
			if col == width {
				last := &rows[len(rows)-1]
				last.Spans = append(last.Spans, cur)
				cur.Text = ""
				rows = append(rows, Line{Align: l.Align})
				col = 0
			}
		}
		if cur.Text != "" {
			last := &rows[len(rows)-1]
			last.Spans = append(last.Spans, cur)
		}
	}
	return rows
}

// WrappedLineCount returns the total number of terminal rows the text
// occupies once wrapped to width. This is the drawing layer's metric too.
func WrappedLineCount(t Text, width int) int {
	n := 0
	for _, l := range t.Lines {
		n += len(WrapLine(l, width))
	}
	return n
}

// ClampScroll clamps a requested scroll offset against the wrapped height of
// the text in a viewport. The result is never negative and never exceeds
// totalRows - viewportHeight (floored at 0).
func ClampScroll(t Text, width, height, requested int) int {
	if requested < 0 {
		requested = 0
	}
	maxOffset := WrappedLineCount(t, width) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if requested > maxOffset {
		return maxOffset
	}
	return requested
}
