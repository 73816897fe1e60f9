// Package render turns site content into final HTML pages.
//
// Every page passes through Process exactly once: footer credits are
// rewritten and headings inside the content container are linkified.
package render

import (
	"fmt"
	"io"

	"github.com/DiscordGophers/docsite/footer"
	"github.com/DiscordGophers/docsite/linkify"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DefaultSelector scopes linkification to the main content area.
const DefaultSelector = "#site-main #content"

type Options struct {
	// ContentSelector defaults to DefaultSelector.
	ContentSelector string

	// Credit, when set, replaces the paragraphs of the last footer row.
	Credit *footer.Credit
}

// Result counts the changes made to a page.
type Result struct {
	Anchors int
	Credits int
}

func Process(r io.Reader, w io.Writer, opts Options) (Result, error) {
	var res Result

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return res, fmt.Errorf("could not parse page: %w", err)
	}

	if opts.Credit != nil {
		res.Credits = footer.Cleanup(doc.Selection, *opts.Credit)
	}

	selector := opts.ContentSelector
	if selector == "" {
		selector = DefaultSelector
	}
	res.Anchors = linkify.LinkifyAllLevels(doc.Selection, selector)

	if err := html.Render(w, doc.Nodes[0]); err != nil {
		return res, fmt.Errorf("could not render page: %w", err)
	}
	return res, nil
}
