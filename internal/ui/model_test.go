package ui

import (
	"strings"
	"testing"

	"scripture-tui/internal/scripture"
	"scripture-tui/internal/settings"

	tea "github.com/charmbracelet/bubbletea"
)

func longChapter() scripture.Chapter {
	var sb strings.Builder
	sb.WriteString("<body>")
	for i := 0; i < 40; i++ {
		sb.WriteString(`<p class="verse"><span class="verse-number">1 </span>And it came to pass that the words of this verse run long enough to wrap.</p>`)
	}
	sb.WriteString("</body>")
	return scripture.Chapter{Title: "Test 1", Body: sb.String()}
}

func testWorks() []scripture.Work {
	return []scripture.Work{
		{Title: "OT", Books: []scripture.Book{
			{Title: "Genesis", Chapters: []scripture.Chapter{longChapter(), longChapter()}},
			{Title: "Exodus", Chapters: []scripture.Chapter{longChapter()}},
		}},
		{Title: "NT", Books: []scripture.Book{
			{Title: "Matthew", Chapters: []scripture.Chapter{longChapter()}},
		}},
	}
}

func sizedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(testWorks(), nil, settings.Settings{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestWindowSizeComputesViewports(t *testing.T) {
	m := sizedModel(t)
	if !m.ready {
		t.Fatal("expected model ready after resize")
	}
	text, foot := m.state.TextRect, m.state.FootnoteRect
	if text.W < 1 || text.H < 1 || foot.W < 1 || foot.H < 1 {
		t.Fatalf("expected usable viewports, got %+v and %+v", text, foot)
	}
	if text.W != foot.W {
		t.Fatalf("expected aligned viewports, got widths %d and %d", text.W, foot.W)
	}
	if foot.Y <= text.Y+text.H-1 {
		t.Fatalf("expected footnote viewport below text viewport, got %+v after %+v", foot, text)
	}
}

func TestKeyNavigationMovesSelection(t *testing.T) {
	m := sizedModel(t)

	updated, _ := m.Update(keyMsg(tea.KeyDown))
	m = updated.(Model)
	if m.state.Work != 1 {
		t.Fatalf("expected work selection to advance, got %d", m.state.Work)
	}

	updated, _ = m.Update(keyMsg(tea.KeyDown))
	m = updated.(Model)
	if m.state.Work != 0 {
		t.Fatalf("expected work selection to wrap, got %d", m.state.Work)
	}

	updated, _ = m.Update(keyMsg(tea.KeyRight))
	m = updated.(Model)
	if m.state.Active != 1 {
		t.Fatalf("expected active column 1, got %d", m.state.Active)
	}
}

func TestWheelScrollRoutesToTextViewport(t *testing.T) {
	m := sizedModel(t)
	r := m.state.TextRect

	msg := tea.MouseMsg{X: r.X + 1, Y: r.Y + 1, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}
	updated, _ := m.Update(msg)
	m = updated.(Model)
	if m.state.TextScroll != 1 {
		t.Fatalf("expected text scroll 1, got %d", m.state.TextScroll)
	}
	if m.state.FootnoteScroll != 0 {
		t.Fatalf("expected footnote scroll untouched, got %d", m.state.FootnoteScroll)
	}

	up := tea.MouseMsg{X: r.X + 1, Y: r.Y + 1, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}
	updated, _ = m.Update(up)
	m = updated.(Model)
	updated, _ = m.Update(up)
	m = updated.(Model)
	if m.state.TextScroll != 0 {
		t.Fatalf("expected scroll floored at 0, got %d", m.state.TextScroll)
	}
}

func TestWheelScrollOutsideViewportsIsNoOp(t *testing.T) {
	m := sizedModel(t)
	msg := tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}
	updated, _ := m.Update(msg)
	m = updated.(Model)
	if m.state.TextScroll != 0 || m.state.FootnoteScroll != 0 {
		t.Fatalf("expected no scroll outside viewports, got %+v", m.state)
	}
}

func TestSelectionChangeResetsScroll(t *testing.T) {
	m := sizedModel(t)

	msg := tea.MouseMsg{X: m.state.TextRect.X + 1, Y: m.state.TextRect.Y + 1, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}
	updated, _ := m.Update(msg)
	m = updated.(Model)
	if m.state.TextScroll == 0 {
		t.Fatal("expected scrolled text before selection change")
	}

	updated, _ = m.Update(keyMsg(tea.KeyDown))
	m = updated.(Model)
	if m.state.TextScroll != 0 {
		t.Fatalf("expected scroll reset on selection change, got %d", m.state.TextScroll)
	}
}

func TestScrollClampedToWrappedHeight(t *testing.T) {
	m := sizedModel(t)
	msg := tea.MouseMsg{X: m.state.TextRect.X + 1, Y: m.state.TextRect.Y + 1, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}

	for i := 0; i < 10000; i++ {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	if m.state.TextScroll >= 10000 {
		t.Fatalf("expected scroll clamped well below request, got %d", m.state.TextScroll)
	}
	if m.state.TextScroll <= 0 {
		t.Fatalf("expected clamped scroll to stay positive for long chapter, got %d", m.state.TextScroll)
	}
}

func TestEmptyCorpusKeepsRunning(t *testing.T) {
	m := NewModel(nil, nil, settings.Settings{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	updated, _ = m.Update(keyMsg(tea.KeyDown))
	m = updated.(Model)
	if m.state.Work != 0 {
		t.Fatalf("expected no movement over empty corpus, got %d", m.state.Work)
	}
	if view := m.View(); view == "" {
		t.Fatal("expected a view over empty corpus")
	}
}

func TestViewShowsLoadErrorInFooter(t *testing.T) {
	loadErr := errString("loading work OT: no such file")
	m := NewModel(nil, loadErr, settings.Settings{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if !strings.Contains(m.View(), "loading work OT") {
		t.Fatal("expected load error in footer")
	}
}

func TestViewRendersMalformedChapterPlaceholder(t *testing.T) {
	works := []scripture.Work{{Title: "OT", Books: []scripture.Book{{
		Title:    "Genesis",
		Chapters: []scripture.Chapter{{Title: "Bad", Body: `<body><p class="verse">broken</body>`}},
	}}}}
	m := NewModel(works, nil, settings.Settings{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if !strings.Contains(m.View(), "malformed chapter markup") {
		t.Fatal("expected malformed markup placeholder in view")
	}
}

type errString string

func (e errString) Error() string { return string(e) }
