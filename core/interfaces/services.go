// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the remote sources, HTML transforms, and fetch dispatch

package interfaces

import (
	"context"

	"article-viewer-api/core/domain"
)

// ParsedArticle is the rendered article as returned by the wiki parse API
type ParsedArticle struct {
	HTML   string
	PageID int
}

// ArticleSource fetches the three inputs of an article viewer
type ArticleSource interface {
	// FetchParsedArticle returns the wiki's own rendering of the article
	FetchParsedArticle(ctx context.Context, article domain.ArticleRef) (*ParsedArticle, error)

	// FetchAuthorshipDiff returns article HTML annotated with author span markers
	FetchAuthorshipDiff(ctx context.Context, article domain.ArticleRef) (string, error)

	// ResolveUsers looks up wiki user ids for usernames, in the order returned by the wiki
	ResolveUsers(ctx context.Context, article domain.ArticleRef, usernames []string) (domain.Roster, error)
}

// LinkRewriter makes relative wiki links in article HTML absolute
type LinkRewriter interface {
	Rewrite(html, baseURL string) string
}

// Dispatcher runs fetch jobs without the caller waiting for them
type Dispatcher interface {
	Dispatch(job func()) error
}
