package wiki

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"article-viewer-api/core/domain"
	coreerrors "article-viewer-api/core/errors"
)

// APIAuthorship names the authorship-diff source in errors and logs
const APIAuthorship = "whocolor"

// AuthorshipURL returns the authorship-diff request for the article
func AuthorshipURL(diffServiceBase string, article domain.ArticleRef) string {
	return fmt.Sprintf("%s/whocolor/index.php?title=%s",
		strings.TrimRight(diffServiceBase, "/"), url.QueryEscape(article.Title))
}

type authorshipResponse struct {
	HTML *string `json:"html"`
}

func (r *authorshipResponse) validate(api string) error {
	if r.HTML == nil {
		return &coreerrors.MalformedResponseError{API: api, Field: "html"}
	}
	return nil
}

// FetchAuthorshipDiff returns the article HTML with author-token spans
func (c *Client) FetchAuthorshipDiff(ctx context.Context, article domain.ArticleRef) (string, error) {
	var resp authorshipResponse
	key := "wiki:whocolor:" + article.Title
	if err := c.getJSON(ctx, APIAuthorship, key, AuthorshipURL(c.cfg.DiffServiceBase, article), &resp); err != nil {
		return "", err
	}
	return *resp.HTML, nil
}
