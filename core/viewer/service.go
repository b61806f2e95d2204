// ABOUTME: Viewer service creates article viewer sessions with shared collaborators
// ABOUTME: Resolves feature flags into per-session behavior at creation time

package viewer

import (
	"context"

	"article-viewer-api/core/attribution"
	"article-viewer-api/core/domain"
	coreerrors "article-viewer-api/core/errors"
	"article-viewer-api/core/interfaces"
	"article-viewer-api/core/links"
	"article-viewer-api/core/workers"
	"article-viewer-api/pkg/featureflags"
	"github.com/google/uuid"
)

// ServiceOptions configures a Service. Zero values fall back to defaults.
type ServiceOptions struct {
	// Palette is the ordered list of author colors
	Palette []string

	// Dispatcher runs fetches; defaults to one goroutine per fetch
	Dispatcher interfaces.Dispatcher

	Logger interfaces.Logger
}

// Service creates viewer sessions that share one article source
type Service struct {
	source     interfaces.ArticleSource
	palette    []string
	dispatcher interfaces.Dispatcher
	logger     interfaces.Logger
}

// NewService creates a new viewer service
func NewService(source interfaces.ArticleSource, opts ServiceOptions) *Service {
	if len(opts.Palette) == 0 {
		opts.Palette = attribution.DefaultPalette
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = workers.GoDispatcher{}
	}
	if opts.Logger == nil {
		opts.Logger = interfaces.NopLogger{}
	}

	palette := make([]string, len(opts.Palette))
	copy(palette, opts.Palette)

	return &Service{
		source:     source,
		palette:    palette,
		dispatcher: opts.Dispatcher,
		logger:     opts.Logger,
	}
}

// SessionRequest is what a caller supplies to open a viewer
type SessionRequest struct {
	Article   domain.ArticleRef
	Usernames []string
	Display   domain.DisplayOptions
}

// NewSession validates the request and returns a hidden viewer session with
// nothing fetched yet. Feature flags are read from ctx.
func (s *Service) NewSession(ctx context.Context, req SessionRequest) (*Session, error) {
	if err := req.Article.Validate(); err != nil {
		return nil, err
	}
	for _, name := range req.Usernames {
		if name == "" {
			return nil, &coreerrors.ValidationError{Field: "users", Message: "usernames cannot be empty"}
		}
	}

	var rewriter interfaces.LinkRewriter = links.TextRewriter{}
	if featureflags.IsEnabled(ctx, featureflags.StructuredLinkRewriter) {
		rewriter = links.DOMRewriter{}
	}

	authorship := true
	if featureflags.IsEnabled(ctx, featureflags.AuthorshipEnwikiOnly) {
		authorship = req.Article.Language == "en" && req.Article.Project == "wikipedia"
	}

	session := newSession(sessionConfig{
		id:         uuid.New().String(),
		article:    req.Article,
		usernames:  req.Usernames,
		display:    req.Display,
		palette:    s.palette,
		authorship: authorship,
		source:     s.source,
		rewriter:   rewriter,
		dispatcher: s.dispatcher,
		logger:     s.logger,
	})

	s.logger.Debug("Viewer session created", map[string]interface{}{
		"session_id": session.ID(),
		"title":      req.Article.Title,
		"users":      len(req.Usernames),
		"authorship": authorship,
	})
	return session, nil
}
