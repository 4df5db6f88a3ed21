// Package render turns a chapter's raw markup into styled text: the body
// renderer, the footnote linker, and the footnote marker mapper.
package render

import (
	"scripture-tui/internal/markup"
	"scripture-tui/internal/scripture"
	"scripture-tui/internal/styledtext"
)

// ChapterBody renders a chapter's markup into styled text: optional header
// elements (title, subtitle, intro, study summary) followed by one line per
// verse, each verse separated by a blank line.
func ChapterBody(ch scripture.Chapter) (styledtext.Text, error) {
	var text styledtext.Text

	doc, err := markup.Parse(ch.Body)
	if err != nil {
		return text, err
	}
	body := doc.Body()
	if body == nil {
		return text, nil
	}

	if header := body.Header(); header != nil {
		renderHeader(header, &text)
	}

	for _, verse := range body.DescendantsByClass("verse") {
		text.Append(verseLine(verse))
		text.AppendBlank()
	}
	return text, nil
}

// renderHeader emits title, subtitle, intro and study summary lines in that
// order, each only when it collects any text. A blank line precedes the
// intro and brackets the summary so the header never runs into the first
// verse.
func renderHeader(header *markup.Node, text *styledtext.Text) {
	if title := header.DescendantByID("title1"); title != nil {
		if s := title.CollectText(); s != "" {
			text.Append(styledtext.CenteredLine(styledtext.Bold(s)))
		}
	}
	if subtitle := header.DescendantByID("subtitle1"); subtitle != nil {
		if s := subtitle.CollectText(); s != "" {
			text.Append(styledtext.CenteredLine(styledtext.Bold(s)))
		}
	}

	hasIntro := false
	if intro := header.DescendantByID("intro1"); intro != nil {
		if s := intro.CollectText(); s != "" {
			text.AppendBlank()
			text.Append(styledtext.NewLine(styledtext.Plain(s)))
			hasIntro = true
		}
	}
	if summary := header.DescendantByClass("study-summary"); summary != nil {
		if s := summary.CollectText(); s != "" {
			text.AppendBlank()
			text.Append(styledtext.NewLine(styledtext.Italic(s)))
			text.AppendBlank()
			return
		}
	}
	if hasIntro {
		text.AppendBlank()
	}
}

// verseLine builds one verse line from the verse node's direct children.
func verseLine(verse *markup.Node) styledtext.Line {
	var line styledtext.Line
	for _, child := range verse.Children() {
		switch {
		case child.IsText():
			line.Spans = append(line.Spans, styledtext.Plain(child.Text()))
		case child.Class() == "verse-number":
			line.Spans = append(line.Spans, styledtext.Bold(child.Text()))
		case child.Class() == "para-mark":
			line.Spans = append(line.Spans, styledtext.Plain(child.Text()))
		case child.Class() == "clarity-word":
			line.Spans = append(line.Spans, clarityWordSpans(child)...)
		case child.Class() == "study-note-ref":
			line.Spans = append(line.Spans, noteRefSpans(child, false)...)
		}
	}
	return line
}

// clarityWordSpans renders an editorially-clarified run in italics. A
// clarity word with direct text is a single span; otherwise its children are
// walked one level down with the italic context applied, including any
// nested footnote reference.
func clarityWordSpans(word *markup.Node) []styledtext.Span {
	if s := word.Text(); s != "" {
		return []styledtext.Span{styledtext.Italic(s)}
	}
	var spans []styledtext.Span
	for _, child := range word.Children() {
		switch {
		case child.IsText():
			spans = append(spans, styledtext.Italic(child.Text()))
		case child.Class() == "study-note-ref":
			spans = append(spans, noteRefSpans(child, true)...)
		}
	}
	return spans
}

// noteRefSpans renders a footnote reference. A sup child maps through the
// marker table to a superscript glyph; an unmapped tag emits nothing. Other
// text children pass through unchanged.
func noteRefSpans(ref *markup.Node, italic bool) []styledtext.Span {
	var spans []styledtext.Span
	for _, child := range ref.Children() {
		switch {
		case child.Name() == "sup":
			if glyph, ok := Marker(child.Text()); ok {
				spans = append(spans, styledtext.Span{Text: glyph, Italic: italic})
			}
		case child.IsText():
			spans = append(spans, styledtext.Span{Text: child.Text(), Italic: italic})
		}
	}
	return spans
}
