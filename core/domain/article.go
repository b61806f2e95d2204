// ABOUTME: Article domain model identifies a wiki article and the wiki that hosts it
// ABOUTME: Provides validation and derivation of the wiki base URL

package domain

import (
	"fmt"
	"strings"

	coreerrors "article-viewer-api/core/errors"
)

// ArticleRef identifies a single article on a MediaWiki wiki.
// It is supplied by the caller and never modified.
type ArticleRef struct {
	// Language is the wiki language code, e.g. "en"
	Language string `json:"language"`

	// Project is the wiki project, e.g. "wikipedia"
	Project string `json:"project"`

	// Title is the article title as used in wiki URLs, e.g. "Test_Article"
	Title string `json:"title"`

	// URL is the canonical article URL shown as the "view on wiki" link
	URL string `json:"url"`
}

// WikiURL returns the base URL of the wiki hosting the article.
func (a ArticleRef) WikiURL() string {
	return fmt.Sprintf("https://%s.%s.org", a.Language, a.Project)
}

// Validate checks that the reference can address a wiki article.
func (a ArticleRef) Validate() error {
	if strings.TrimSpace(a.Language) == "" {
		return &coreerrors.ValidationError{Field: "language", Message: "cannot be empty"}
	}
	if strings.TrimSpace(a.Project) == "" {
		return &coreerrors.ValidationError{Field: "project", Message: "cannot be empty"}
	}
	if strings.TrimSpace(a.Title) == "" {
		return &coreerrors.ValidationError{Field: "title", Message: "cannot be empty"}
	}
	if strings.ContainsAny(a.Language+a.Project, "/:. ") {
		return &coreerrors.ValidationError{Field: "language", Message: "language and project must be plain host labels"}
	}
	return nil
}
