package wiki

import (
	"context"
	"fmt"
	"net/url"

	"article-viewer-api/core/domain"
	coreerrors "article-viewer-api/core/errors"
	"article-viewer-api/core/interfaces"
)

// APIParse names the wiki parse source in errors and logs
const APIParse = "parse"

// ParseURL returns the parse API request for the article
func ParseURL(article domain.ArticleRef) string {
	return fmt.Sprintf("%s/w/api.php?action=parse&disableeditsection=true&format=json&page=%s",
		article.WikiURL(), url.QueryEscape(article.Title))
}

type parseResponse struct {
	Parse *struct {
		PageID int               `json:"pageid"`
		Text   map[string]string `json:"text"`
	} `json:"parse"`
}

func (r *parseResponse) validate(api string) error {
	if r.Parse == nil {
		return &coreerrors.MalformedResponseError{API: api, Field: "parse"}
	}
	if _, ok := r.Parse.Text["*"]; !ok {
		return &coreerrors.MalformedResponseError{API: api, Field: "parse.text['*']"}
	}
	return nil
}

// FetchParsedArticle returns the wiki's rendered HTML and page id. The HTML is
// returned raw; link rewriting is up to the caller.
func (c *Client) FetchParsedArticle(ctx context.Context, article domain.ArticleRef) (*interfaces.ParsedArticle, error) {
	var resp parseResponse
	key := fmt.Sprintf("wiki:parse:%s.%s:%s", article.Language, article.Project, article.Title)
	if err := c.getJSON(ctx, APIParse, key, ParseURL(article), &resp); err != nil {
		return nil, err
	}

	return &interfaces.ParsedArticle{
		HTML:   resp.Parse.Text["*"],
		PageID: resp.Parse.PageID,
	}, nil
}
