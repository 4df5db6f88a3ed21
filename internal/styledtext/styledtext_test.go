package styledtext

import (
	"strings"
	"testing"
)

func textOfWidths(widths ...int) Text {
	var t Text
	for _, w := range widths {
		t.Append(NewLine(Plain(strings.Repeat("x", w))))
	}
	return t
}

func TestWrapLineRowCounts(t *testing.T) {
	tests := []struct {
		name      string
		lineWidth int
		wrapWidth int
		rows      int
	}{
		{"empty line", 0, 10, 1},
		{"shorter than width", 5, 10, 1},
		{"one past width", 11, 10, 2},
		{"two and a half widths", 25, 10, 3},
		{"exact multiple", 20, 10, 3},
		{"exact width", 10, 10, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLine(Plain(strings.Repeat("x", tt.lineWidth)))
			rows := WrapLine(l, tt.wrapWidth)
			if len(rows) != tt.rows {
				t.Fatalf("expected %d rows, got %d", tt.rows, len(rows))
			}
			// Row counts must agree with 1 + floor(width/wrap), the
			// scroll bound metric.
			want := 1 + tt.lineWidth/tt.wrapWidth
			if len(rows) != want {
				t.Fatalf("rows %d disagree with metric %d", len(rows), want)
			}
		})
	}
}

func TestWrapLineSplitsAcrossSpans(t *testing.T) {
	l := NewLine(Bold("12345"), Plain("67890abc"))
	rows := WrapLine(l, 10)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if got := rows[0].Width(); got != 10 {
		t.Fatalf("expected first row width 10, got %d", got)
	}
	if !rows[0].Spans[0].Bold {
		t.Fatal("expected bold preserved on wrapped row")
	}
	if got := rows[1].Width(); got != 3 {
		t.Fatalf("expected remainder width 3, got %d", got)
	}
}

func TestWrapLineZeroWidthReturnsLineAsIs(t *testing.T) {
	l := NewLine(Plain("hello"))
	rows := WrapLine(l, 0)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestWrappedLineCountSumsLines(t *testing.T) {
	text := textOfWidths(5, 25, 0)
	if got := WrappedLineCount(text, 10); got != 5 {
		t.Fatalf("expected 5 rows, got %d", got)
	}
}

func TestClampScrollBounds(t *testing.T) {
	text := textOfWidths(5, 5, 5, 5, 5, 5, 5, 5, 5, 5) // 10 rows at width 10

	if got := ClampScroll(text, 10, 4, 100); got != 6 {
		t.Fatalf("expected clamp to 6, got %d", got)
	}
	if got := ClampScroll(text, 10, 4, 3); got != 3 {
		t.Fatalf("expected 3 unchanged, got %d", got)
	}
	if got := ClampScroll(text, 10, 4, -1); got != 0 {
		t.Fatalf("expected floor at 0, got %d", got)
	}
	// Viewport taller than content: only offset 0 is valid.
	if got := ClampScroll(text, 10, 50, 7); got != 0 {
		t.Fatalf("expected 0 for tall viewport, got %d", got)
	}
}

func TestClampScrollAccountsForWrapping(t *testing.T) {
	// One logical line of 25 cells wraps to 3 rows at width 10.
	text := textOfWidths(25)
	if got := ClampScroll(text, 10, 1, 100); got != 2 {
		t.Fatalf("expected max offset 2, got %d", got)
	}
}
