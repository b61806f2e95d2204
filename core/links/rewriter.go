// ABOUTME: Link rewriting for article HTML fetched from a wiki
// ABOUTME: Turns relative wiki links absolute while leaving anchors and external links alone

// Package links rewrites links in article HTML so that it can be shown away
// from the wiki that rendered it.
//
// The wiki parse API returns the same HTML as the rendered article, so links
// to other articles are relative and break once the HTML is embedded
// elsewhere. In-page anchors (footnotes, references) must keep pointing at the
// embedded copy, and absolute links are already fine.
package links

import "strings"

const anchorOpen = `<a href="`

// IsRelative reports whether href is a same-wiki relative link. Anchors,
// absolute http(s) links, protocol-relative links, and empty values are not.
func IsRelative(href string) bool {
	switch {
	case href == "":
		return false
	case strings.HasPrefix(href, "http"):
		return false
	case strings.HasPrefix(href, "#"):
		return false
	case strings.HasPrefix(href, "//"):
		return false
	}
	return true
}

// Absolute joins a relative href onto baseURL with exactly one slash between.
func Absolute(href, baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimPrefix(href, "/")
}

// TextRewriter rewrites links with a text scan over `<a href="` openings.
// No HTML parser is involved, so markup outside the href values is returned
// byte for byte.
type TextRewriter struct{}

// Rewrite implements interfaces.LinkRewriter
func (TextRewriter) Rewrite(html, baseURL string) string {
	return Rewrite(html, baseURL)
}

// Rewrite makes every relative `<a href="...">` in html absolute against
// baseURL. Applying it twice gives the same result as applying it once.
func Rewrite(html, baseURL string) string {
	if !strings.Contains(html, anchorOpen) {
		return html
	}

	var b strings.Builder
	b.Grow(len(html) + 64)

	rest := html
	for {
		i := strings.Index(rest, anchorOpen)
		if i < 0 {
			b.WriteString(rest)
			break
		}
		i += len(anchorOpen)
		b.WriteString(rest[:i])
		rest = rest[i:]

		href := rest
		if end := strings.IndexByte(rest, '"'); end >= 0 {
			href = rest[:end]
		}
		if IsRelative(href) {
			abs := Absolute(href, baseURL)
			b.WriteString(abs)
			rest = rest[len(href):]
		}
	}
	return b.String()
}
