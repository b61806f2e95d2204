package attribution

import (
	"regexp"
	"strconv"

	"article-viewer-api/core/domain"
)

// authorSpan matches the opening of an authorship marker span. The id must be
// followed by a non-digit so that author 1 does not match token-authorid-12.
var authorSpan = regexp.MustCompile(`<span class="author-token token-authorid-(\d+)(["\s])`)

// Overlay adds a background color to every authorship span belonging to a
// roster author and returns the rewritten HTML with the legend. The class
// attribute is kept as is, so styled spans no longer match and a second pass
// changes nothing.
func Overlay(html string, roster domain.Roster, palette []string) (string, []domain.LegendEntry, error) {
	legend, err := Assign(roster, palette)
	if err != nil {
		return "", nil, err
	}

	colors := make(map[string]string, len(roster))
	for i, author := range roster {
		if !author.Resolved() {
			continue
		}
		id := strconv.Itoa(author.UserID)
		// first occurrence wins if the wiki returned a user twice
		if _, ok := colors[id]; !ok {
			colors[id] = legend[i].Color
		}
	}

	out := authorSpan.ReplaceAllStringFunc(html, func(match string) string {
		parts := authorSpan.FindStringSubmatch(match)
		color, ok := colors[parts[1]]
		if !ok {
			return match
		}
		return `<span style="background: ` + color + `" class="author-token token-authorid-` + parts[1] + parts[2]
	})

	return out, legend, nil
}
