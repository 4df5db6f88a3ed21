package ui

import (
	"scripture-tui/internal/nav"
	"scripture-tui/internal/render"
	"scripture-tui/internal/scripture"
	"scripture-tui/internal/settings"
	"scripture-tui/internal/styledtext"
	"scripture-tui/internal/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Column widths of the three browser lists, matching the classic layout.
const (
	worksColWidth    = 8
	booksColWidth    = 20
	chaptersColWidth = 16
)

type Model struct {
	works   []scripture.Work
	state   nav.State
	theme   theme.Theme
	cfg     settings.Settings
	keys    keyMap
	width   int
	height  int
	ready   bool
	loadErr error
}

// NewModel builds the UI over an already-loaded corpus. loadErr, when
// non-nil, is the startup load failure; the reader still runs and shows it
// in the footer over an empty corpus.
func NewModel(works []scripture.Work, loadErr error, cfg settings.Settings) Model {
	return Model{
		works:   works,
		theme:   theme.GetTheme(cfg.Theme),
		cfg:     cfg,
		keys:    defaultKeyMap(),
		loadErr: loadErr,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.state.MoveUp(m.works)
			return m.clampScrolls(), nil
		case key.Matches(msg, m.keys.Down):
			m.state.MoveDown(m.works)
			return m.clampScrolls(), nil
		case key.Matches(msg, m.keys.Left):
			m.state.MoveLeft()
		case key.Matches(msg, m.keys.Right):
			m.state.MoveRight()
		case key.Matches(msg, m.keys.Theme):
			m.theme = theme.Next(m.theme)
			m.cfg.Theme = m.theme.Name
			// Best effort; an unwritable config dir should not stop reading.
			_ = settings.Save(m.cfg)
		}

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.state.Scroll(msg.X, msg.Y, -1)
		case tea.MouseButtonWheelDown:
			m.state.Scroll(msg.X, msg.Y, 1)
			return m.clampScrolls(), nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.state.TextRect, m.state.FootnoteRect = m.layout()
		return m.clampScrolls(), nil
	}

	return m, nil
}

// layout computes the two reading viewports from the window size. The three
// list columns take fixed widths on the left; the chapter pane fills the
// rest, with a rounded border, a title row, the body text, a separator row
// and the footnote pane below it (4:1 split).
func (m Model) layout() (text, foot nav.Rect) {
	paneX := worksColWidth + 1 + booksColWidth + 1 + chaptersColWidth + 1
	innerW := m.width - paneX - 2
	innerH := m.height - 1 - 2
	contentH := innerH - 2 // title row and separator row
	if innerW < 1 || contentH < 2 {
		return nav.Rect{}, nav.Rect{}
	}
	textH := contentH * 4 / 5
	if textH < 1 {
		textH = 1
	}
	footH := contentH - textH

	text = nav.Rect{X: paneX + 1, Y: 2, W: innerW, H: textH}
	foot = nav.Rect{X: paneX + 1, Y: 3 + textH, W: innerW, H: footH}
	return text, foot
}

// clampScrolls re-derives both styled texts for the current chapter and
// clamps the scroll offsets against their wrapped heights in the last-known
// viewports.
func (m Model) clampScrolls() Model {
	body, notes := m.chapterText()
	m.state.TextScroll = styledtext.ClampScroll(
		body, m.state.TextRect.W, m.state.TextRect.H, m.state.TextScroll)
	m.state.FootnoteScroll = styledtext.ClampScroll(
		notes, m.state.FootnoteRect.W, m.state.FootnoteRect.H, m.state.FootnoteScroll)
	return m
}

// chapterText renders the selected chapter's body and footnotes. Malformed
// chapter markup degrades to a visible placeholder line so navigation
// survives a bad chapter.
func (m Model) chapterText() (body, notes styledtext.Text) {
	ch, ok := nav.SelectedChapter(m.works, m.state)
	if !ok {
		return body, notes
	}
	body, err := render.ChapterBody(ch)
	if err != nil {
		body = parseErrorText(err)
	}
	notes, err = render.ChapterFootnotes(ch)
	if err != nil {
		notes = parseErrorText(err)
	}
	return body, notes
}

func parseErrorText(err error) styledtext.Text {
	var t styledtext.Text
	t.Append(styledtext.NewLine(styledtext.Bold("malformed chapter markup: " + err.Error())))
	return t
}

func (m Model) chapterTitle() string {
	ch, ok := nav.SelectedChapter(m.works, m.state)
	if !ok {
		return "No works loaded"
	}
	return ch.Title
}

func (m Model) worksTitles() []string {
	titles := make([]string, len(m.works))
	for i, w := range m.works {
		titles[i] = w.Title
	}
	return titles
}

func (m Model) booksTitles() []string {
	if m.state.Work >= len(m.works) {
		return nil
	}
	books := m.works[m.state.Work].Books
	titles := make([]string, len(books))
	for i, b := range books {
		titles[i] = b.Title
	}
	return titles
}

func (m Model) chaptersTitles() []string {
	if m.state.Work >= len(m.works) {
		return nil
	}
	books := m.works[m.state.Work].Books
	if m.state.Book >= len(books) {
		return nil
	}
	chapters := books[m.state.Book].Chapters
	titles := make([]string, len(chapters))
	for i, c := range chapters {
		titles[i] = c.Title
	}
	return titles
}
