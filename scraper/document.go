package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/aryaman-sowilo/stock-price-scraper/customerrors"
)

// Document wraps a parsed quote page and exposes the handful of structural
// queries the extractors need. It holds no state beyond the tree itself.
type Document struct {
	root *goquery.Document
}

// ParseDocument builds a Document from raw markup. The only failure mode is
// markup the HTML parser cannot consume at all, surfaced as
// ErrMalformedDocument.
func ParseDocument(markup string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", customerrors.ErrMalformedDocument, err)
	}
	return &Document{root: doc}, nil
}

// FindByAttr returns the first tag element carrying the attribute, or nil.
// An empty value matches on attribute presence alone.
func (d *Document) FindByAttr(tag, name, value string) *goquery.Selection {
	var pattern string
	if value == "" {
		pattern = fmt.Sprintf("%s[%s]", tag, name)
	} else {
		pattern = fmt.Sprintf("%s[%s='%s']", tag, name, value)
	}
	sel := d.root.Find(pattern)
	if sel.Length() == 0 {
		return nil
	}
	return sel.First()
}

// SelectFirst returns the first element matching the CSS pattern, or nil.
func (d *Document) SelectFirst(pattern string) *goquery.Selection {
	sel := d.root.Find(pattern)
	if sel.Length() == 0 {
		return nil
	}
	return sel.First()
}

// SelectAll returns every element matching the CSS pattern. The selection may
// be empty; it is never nil.
func (d *Document) SelectAll(pattern string) *goquery.Selection {
	return d.root.Find(pattern)
}

// EachText walks the text nodes of the document in order, calling fn for each
// one until fn returns false.
func (d *Document) EachText(fn func(text string) bool) {
	d.root.Find("*").Contents().EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if goquery.NodeName(s) != "#text" {
			return true
		}
		return fn(s.Text())
	})
}

// TextOf returns the trimmed text content of an element.
func TextOf(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}
