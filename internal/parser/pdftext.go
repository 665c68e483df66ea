package parser

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// extractPages returns plain text per page. Pages whose text cannot be
// extracted come back empty rather than failing the document; only a
// completely unreadable file is an error.
func extractPages(filepath string) (pages []string, err error) {
	defer func() {
		// The pdf library panics on some malformed cross-reference tables.
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("pdf extraction panicked: %v", r)
		}
	}()

	f, reader, err := pdf.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	total := reader.NumPage()
	pages = make([]string, 0, total)
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, textErr := page.GetPlainText(nil)
		if textErr != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}
