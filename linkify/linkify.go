// Package linkify appends deep-link anchors to the identified headings of a
// rendered page.
package linkify

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// ClassName is set on every generated anchor.
	ClassName = "header-link"

	MinLevel = 1
	MaxLevel = 4

	iconClass = "fa fa-link"
)

// LinkifyAllLevels finds the first node under root matching selector and
// linkifies its h1 to h4 headings, lowest level first. A selector matching
// nothing (or not parsing at all) leaves the tree untouched. It returns the
// number of anchors appended.
func LinkifyAllLevels(root *goquery.Selection, selector string) int {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return 0
	}

	container := root.FindMatcher(sel).First()
	if container.Length() == 0 {
		return 0
	}

	var added int
	for level := MinLevel; level <= MaxLevel; level++ {
		added += LinkifyAnchors(level, container)
	}
	return added
}

// LinkifyAnchors appends an anchor to every h<level> under container that
// has a non-empty id, in document order.
//
// Headings that already carry an anchor get another one.
func LinkifyAnchors(level int, container *goquery.Selection) int {
	var added int
	for _, heading := range FindHeadingsAtLevel(container, level) {
		id := headingID(heading)
		if id == "" {
			continue
		}
		heading.AppendChild(AnchorForID(id))
		added++
	}
	return added
}

// FindHeadingsAtLevel returns the h<level> descendants of root in document
// order. Levels outside MinLevel..MaxLevel yield nothing.
func FindHeadingsAtLevel(root *goquery.Selection, level int) []*html.Node {
	if level < MinLevel || level > MaxLevel {
		return nil
	}
	return root.Find("h" + strconv.Itoa(level)).Nodes
}

// AnchorForID builds a detached <a class="header-link" href="#id"> node
// wrapping the link icon.
func AnchorForID(id string) *html.Node {
	anchor := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.A,
		Data:     "a",
		Attr: []html.Attribute{
			{Key: "class", Val: ClassName},
			{Key: "href", Val: "#" + id},
		},
	}
	anchor.AppendChild(&html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.I,
		Data:     "i",
		Attr:     []html.Attribute{{Key: "class", Val: iconClass}},
	})
	return anchor
}

func headingID(node *html.Node) string {
	for _, attr := range node.Attr {
		if attr.Namespace == "" && attr.Key == "id" {
			return attr.Val
		}
	}
	return ""
}
