package scripture

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// sources lists the per-work databases in reading order.
var sources = []struct {
	Title string
	File  string
}{
	{"OT", "ot.sqlite"},
	{"NT", "nt.sqlite"},
	{"BoM", "bom.sqlite"},
	{"D&C", "dc.sqlite"},
	{"PoGP", "pgp.sqlite"},
}

// chapterQuery walks the navigation join in position order. The book title
// comes from the nav collection when the section is nested, else from the
// nav item itself.
const chapterQuery = `
SELECT subitem_content.subitem_id, content_html, subitem.title,
       IIF(nav_collection.nav_section_id IS NULL, nav_item.title, nav_collection.title)
FROM subitem_content
JOIN subitem ON subitem_content.subitem_id = subitem.id
JOIN nav_item ON subitem_content.subitem_id = nav_item.subitem_id
JOIN nav_section ON nav_item.nav_section_id = nav_section.id
JOIN nav_collection ON nav_collection.id = nav_section.nav_collection_id
ORDER BY subitem.position`

const footnoteQuery = `
SELECT subitem_id, ref_id, label_html, content_html
FROM related_content_item
ORDER BY subitem_id, position`

// LoadWorks loads the whole corpus from the per-work databases under dir.
// Works, books and chapters come back in reading order; each chapter carries
// its footnote table. Any unreadable database or empty navigation join is a
// load error.
func LoadWorks(dir string) ([]Work, error) {
	works := make([]Work, 0, len(sources))
	for _, src := range sources {
		work, err := loadWork(filepath.Join(dir, src.File), src.Title)
		if err != nil {
			return nil, fmt.Errorf("loading work %s: %w", src.Title, err)
		}
		works = append(works, work)
	}
	return works, nil
}

func loadWork(path, title string) (Work, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return Work{}, err
	}
	defer db.Close()

	footnotes, err := loadFootnotes(db)
	if err != nil {
		return Work{}, err
	}

	rows, err := db.Query(chapterQuery)
	if err != nil {
		return Work{}, err
	}
	defer rows.Close()

	work := Work{Title: title}
	var book Book
	for rows.Next() {
		var (
			subitemID          int64
			body, chapterTitle string
			bookTitle          string
		)
		if err := rows.Scan(&subitemID, &body, &chapterTitle, &bookTitle); err != nil {
			return Work{}, err
		}

		// Chapters arrive in position order; a change in book title
		// closes the running book.
		if book.Title != bookTitle {
			if len(book.Chapters) > 0 {
				work.Books = append(work.Books, book)
			}
			book = Book{Title: bookTitle}
		}
		book.Chapters = append(book.Chapters, Chapter{
			Title:     chapterTitle,
			Body:      body,
			Footnotes: footnotes[subitemID],
		})
	}
	if err := rows.Err(); err != nil {
		return Work{}, err
	}
	if len(book.Chapters) > 0 {
		work.Books = append(work.Books, book)
	}
	if len(work.Books) == 0 {
		return Work{}, fmt.Errorf("no chapters in %s", path)
	}
	return work, nil
}

// loadFootnotes reads every footnote in the database, grouped by the chapter
// (subitem) it belongs to and keyed by reference id.
func loadFootnotes(db *sql.DB) (map[int64]map[string]Footnote, error) {
	rows, err := db.Query(footnoteQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]map[string]Footnote)
	for rows.Next() {
		var (
			subitemID      int64
			refID          string
			label, content string
		)
		if err := rows.Scan(&subitemID, &refID, &label, &content); err != nil {
			return nil, err
		}
		if out[subitemID] == nil {
			out[subitemID] = make(map[string]Footnote)
		}
		out[subitemID][refID] = Footnote{ID: refID, Label: label, Content: content}
	}
	return out, rows.Err()
}
