package viewer

import (
	"bytes"
	"html/template"

	"article-viewer-api/core/domain"
)

var fragmentTemplate = template.Must(template.New("viewer").Parse(
	`<div class="article-viewer{{if not .Shown}} hidden{{end}}">` +
		`{{if .Legend}}<table><tbody>{{range .Legend}}<tr><td>{{.Name}}</td><td>{{.Color}}</td></tr>{{end}}</tbody></table>{{end}}` +
		`<p><a class="button dark small" href="{{.ViewOnWikiURL}}" target="_blank">{{.ViewOnWikiLabel}}</a>` +
		`<a class="pull-right button small" href="{{.FeedbackURL}}" target="_blank">How did the article viewer work for you?</a></p>` +
		`<div class="parsed-article">{{.Article}}</div>` +
		`</div>`))

type fragmentData struct {
	Shown           bool
	Legend          []domain.LegendEntry
	ViewOnWikiURL   string
	ViewOnWikiLabel string
	FeedbackURL     string
	Article         template.HTML
}

// RenderFragment renders a snapshot as the viewer's HTML: the legend table,
// the wiki and feedback links, and the article fragment. The container is
// marked hidden until the viewer is visible and has something to show.
//
// The article HTML comes from the wiki and the authorship service and is
// embedded without escaping.
func RenderFragment(snap domain.Snapshot) (string, error) {
	data := fragmentData{
		Shown:           snap.Visible && snap.HTML != "",
		Legend:          snap.Legend,
		ViewOnWikiURL:   snap.Article.URL,
		ViewOnWikiLabel: domain.DefaultViewOnWikiLabel,
		FeedbackURL:     domain.FeedbackURL,
		Article:         template.HTML(snap.HTML),
	}

	var buf bytes.Buffer
	if err := fragmentTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
