package render

import (
	"scripture-tui/internal/markup"
	"scripture-tui/internal/scripture"
	"scripture-tui/internal/styledtext"
)

// ChapterFootnotes scans the chapter markup for footnote references in
// document order and resolves each against the chapter's footnote table.
// A reference with no table entry produces no line. A reference id that
// occurs twice is resolved twice, in scan order.
func ChapterFootnotes(ch scripture.Chapter) (styledtext.Text, error) {
	var text styledtext.Text

	doc, err := markup.Parse(ch.Body)
	if err != nil {
		return text, err
	}

	for _, ref := range doc.DescendantsByClass("study-note-ref") {
		fn, ok := ch.Footnotes[ref.Attr("data-ref")]
		if !ok {
			continue
		}
		text.Append(styledtext.NewLine(
			styledtext.Bold(fragmentText(fn.Label)),
			styledtext.Plain(fragmentText(fn.Content)),
		))
	}
	return text, nil
}

// fragmentText extracts the concatenated text of a footnote label or content
// fragment. Fragments in the corpus carry stray markup declarations, so they
// go through the tolerant fragment parser; a fragment that still fails to
// parse yields no text.
func fragmentText(src string) string {
	node, err := markup.ParseFragment(src)
	if err != nil {
		return ""
	}
	return node.CollectText()
}
