package page

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is one parsed page. The same node tree backs both views, so a
// Document is parsed exactly once per fetch.
type Document struct {
	query *goquery.Document
	root  *html.Node
}

// NewDocument parses HTML from r into a Document.
func NewDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &Document{
		query: goquery.NewDocumentFromNode(root),
		root:  root,
	}, nil
}

// Query returns the goquery view for CSS selection.
func (d *Document) Query() *goquery.Document {
	return d.query
}

// Root returns the raw node tree for XPath lookups.
func (d *Document) Root() *html.Node {
	return d.root
}
