package footer

import (
	"fmt"
	"html"

	"github.com/PuerkitoBio/goquery"
)

const rows = "#site-footer .row"

// Credit is the "Website built with" line placed in the generated footer.
type Credit struct {
	Tool    string
	ToolURL string

	Vendor    string
	VendorURL string
}

var DefaultCredit = Credit{
	Tool:      "sbt-microsites",
	ToolURL:   "https://47deg.github.io/sbt-microsites",
	Vendor:    "47 Degrees",
	VendorURL: "https://www.47deg.com",
}

func (c Credit) HTML() string {
	return fmt.Sprintf(`Website built with %s by %s`, link(c.ToolURL, c.Tool), link(c.VendorURL, c.Vendor))
}

func link(href, text string) string {
	return fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, html.EscapeString(href), html.EscapeString(text))
}

// Cleanup replaces the paragraphs of the last footer row with the credit.
// Pages without a footer are left alone.
func Cleanup(root *goquery.Selection, c Credit) int {
	paragraphs := root.Find(rows).Last().Find("p")
	if paragraphs.Length() == 0 {
		return 0
	}

	paragraphs.SetHtml(c.HTML())
	return paragraphs.Length()
}
