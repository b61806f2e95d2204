package links

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DOMRewriter rewrites links by parsing the HTML. Unlike TextRewriter it also
// finds hrefs that are not the first attribute of the anchor, at the cost of
// re-serializing the markup.
type DOMRewriter struct{}

// Rewrite implements interfaces.LinkRewriter. Input that cannot be parsed is
// returned unchanged.
func (DOMRewriter) Rewrite(html, baseURL string) string {
	if !strings.Contains(html, "<a") {
		return html
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if IsRelative(href) {
			s.SetAttr("href", Absolute(href, baseURL))
		}
	})

	out, err := doc.Find("body").Html()
	if err != nil {
		return html
	}
	return out
}
