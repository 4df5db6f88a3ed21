package ui

import (
	"strings"

	"scripture-tui/internal/styledtext"
	"scripture-tui/internal/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	listH := m.height - 1
	main := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderColumn("Work", m.worksTitles(), m.state.Work, m.state.Active == 0, worksColWidth, listH),
		" ",
		m.renderColumn("Book", m.booksTitles(), m.state.Book, m.state.Active == 1, booksColWidth, listH),
		" ",
		m.renderColumn("CH", m.chaptersTitles(), m.state.Chapter, m.state.Active == 2, chaptersColWidth, listH),
		" ",
		m.renderPane(),
	)

	return main + "\n" + m.renderFooter()
}

// renderColumn draws one browser list: a centered title row, then the items
// with the selection marked. The selected row of the active column gets the
// highlight background; in inactive columns it is only bold.
func (m Model) renderColumn(title string, items []string, selected int, active bool, width, height int) string {
	th := m.theme
	titleStyle := lipgloss.NewStyle().Foreground(th.Muted)
	itemStyle := lipgloss.NewStyle().Foreground(th.Text)
	selectedStyle := lipgloss.NewStyle().Foreground(th.Text).Bold(true)
	if active {
		selectedStyle = selectedStyle.Background(th.Highlight)
	}

	rows := make([]string, 0, height)
	rows = append(rows, titleStyle.Render(centerPad(title, width)))

	visible := height - 1
	offset := 0
	if selected >= visible {
		offset = selected - visible + 1
	}
	for i := offset; i < len(items) && i-offset < visible; i++ {
		marker := "  "
		if i == selected {
			marker = "> "
		}
		label := runewidth.Truncate(items[i], width-2, "…")
		row := rightPad(marker+label, width)
		if i == selected {
			rows = append(rows, selectedStyle.Render(row))
		} else {
			rows = append(rows, itemStyle.Render(row))
		}
	}
	for len(rows) < height {
		rows = append(rows, strings.Repeat(" ", width))
	}

	return strings.Join(rows, "\n")
}

// renderPane draws the chapter pane: centered chapter title, the body text,
// a footnote separator and the footnote text, inside a rounded border.
func (m Model) renderPane() string {
	th := m.theme
	textRect, footRect := m.layout()
	if textRect.W < 1 {
		return ""
	}
	innerW := textRect.W

	body, notes := m.chapterText()

	rows := make([]string, 0, m.height-3)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(th.Text)
	rows = append(rows, titleStyle.Render(centerPad(runewidth.Truncate(m.chapterTitle(), innerW, "…"), innerW)))
	rows = append(rows, renderRows(body, innerW, textRect.H, m.state.TextScroll, th, th.VerseNumber)...)
	rows = append(rows, lipgloss.NewStyle().Foreground(th.Border).Render(separator("Footnotes", innerW)))
	rows = append(rows, renderRows(notes, innerW, footRect.H, m.state.FootnoteScroll, th, th.FootnoteLabel)...)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border)
	return border.Render(strings.Join(rows, "\n"))
}

func (m Model) renderFooter() string {
	th := m.theme
	helpStyle := lipgloss.NewStyle().Foreground(th.Muted)
	errorStyle := lipgloss.NewStyle().Foreground(th.Error).Bold(true)

	help := helpStyle.Render("↑/↓: select | ←/→: column | wheel: scroll | t: theme | q: quit")
	if m.loadErr != nil {
		return help + "  " + errorStyle.Render("Error: "+m.loadErr.Error())
	}
	return help
}

// renderRows wraps the styled text to the viewport width, slices the visible
// rows at the scroll offset and styles each span. The wrap here and the
// scroll clamp share styledtext.WrapLine, so the offset is always in range.
func renderRows(t styledtext.Text, width, height, scroll int, th theme.Theme, boldColor lipgloss.Color) []string {
	var wrapped []styledtext.Line
	for _, l := range t.Lines {
		wrapped = append(wrapped, styledtext.WrapLine(l, width)...)
	}

	if scroll > len(wrapped) {
		scroll = len(wrapped)
	}
	end := scroll + height
	if end > len(wrapped) {
		end = len(wrapped)
	}

	out := make([]string, 0, height)
	for _, row := range wrapped[scroll:end] {
		out = append(out, renderRow(row, width, th, boldColor))
	}
	for len(out) < height {
		out = append(out, strings.Repeat(" ", width))
	}
	return out
}

func renderRow(l styledtext.Line, width int, th theme.Theme, boldColor lipgloss.Color) string {
	var sb strings.Builder

	w := l.Width()
	pad := 0
	if l.Align == styledtext.AlignCenter && w < width {
		pad = (width - w) / 2
	}
	sb.WriteString(strings.Repeat(" ", pad))

	for _, sp := range l.Spans {
		style := lipgloss.NewStyle().Foreground(th.Text)
		if sp.Bold {
			style = style.Bold(true).Foreground(boldColor)
		}
		if sp.Italic {
			style = style.Italic(true).Foreground(th.Summary)
		}
		sb.WriteString(style.Render(sp.Text))
	}

	if rest := width - pad - w; rest > 0 {
		sb.WriteString(strings.Repeat(" ", rest))
	}
	return sb.String()
}

func centerPad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

func rightPad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func separator(title string, width int) string {
	label := " " + title + " "
	w := runewidth.StringWidth(label)
	if w >= width {
		return runewidth.Truncate(label, width, "")
	}
	left := (width - w) / 2
	return strings.Repeat("─", left) + label + strings.Repeat("─", width-w-left)
}
