// Package scripture holds the immutable corpus model and its SQLite loader.
package scripture

// Footnote is one entry in a chapter's footnote table. Label and Content are
// raw markup fragments.
type Footnote struct {
	ID      string
	Label   string
	Content string
}

// Chapter is the smallest navigable unit: a title, the raw body markup, and
// the footnote table keyed by reference id.
type Chapter struct {
	Title     string
	Body      string
	Footnotes map[string]Footnote
}

// Book is an ordered list of chapters.
type Book struct {
	Title    string
	Chapters []Chapter
}

// Work is a top-level named collection of books.
type Work struct {
	Title string
	Books []Book
}
