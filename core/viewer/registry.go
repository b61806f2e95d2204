// ABOUTME: Session registry owns live viewer sessions for the HTTP API
// ABOUTME: Evicts idle sessions, unmounting their dismiss controller and disposing them

package viewer

import (
	"context"
	"time"

	"article-viewer-api/core/dismiss"
	coreerrors "article-viewer-api/core/errors"
	"article-viewer-api/core/interfaces"
	"github.com/patrickmn/go-cache"
)

const (
	// DefaultSessionTTL is how long an untouched session lives
	DefaultSessionTTL = 30 * time.Minute
)

// Entry is a live session with its outside-dismiss controller
type Entry struct {
	Session    *Session
	Controller *dismiss.Controller
}

// Registry keeps sessions by id. Looking a session up renews its TTL.
type Registry struct {
	service *Service
	logger  interfaces.Logger
	ttl     time.Duration
	entries *cache.Cache
}

// NewRegistry creates a registry whose sessions expire after ttl of inactivity
func NewRegistry(service *Service, ttl time.Duration, logger interfaces.Logger) *Registry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	cleanup := ttl / 2
	if cleanup < time.Second {
		cleanup = time.Second
	}

	r := &Registry{
		service: service,
		logger:  logger,
		ttl:     ttl,
		entries: cache.New(ttl, cleanup),
	}
	r.entries.OnEvicted(func(id string, v interface{}) {
		if entry, ok := v.(*Entry); ok {
			r.dispose(id, entry)
		}
	})
	return r
}

// Create opens a session, mounts its dismiss controller, and registers it
func (r *Registry) Create(ctx context.Context, req SessionRequest, bounds dismiss.Bounds) (*Entry, error) {
	session, err := r.service.NewSession(ctx, req)
	if err != nil {
		return nil, err
	}

	controller := dismiss.NewController(session, bounds, r.logger)
	controller.Mount(context.Background())

	entry := &Entry{Session: session, Controller: controller}
	r.entries.SetDefault(session.ID(), entry)

	r.logger.Info("Viewer session opened", map[string]interface{}{
		"session_id": session.ID(),
		"title":      req.Article.Title,
		"language":   req.Article.Language,
		"project":    req.Article.Project,
	})
	return entry, nil
}

// Get returns the session with the given id and renews its TTL
func (r *Registry) Get(id string) (*Entry, error) {
	v, ok := r.entries.Get(id)
	if !ok {
		return nil, &coreerrors.NotFoundError{Resource: "viewer", ID: id}
	}
	entry := v.(*Entry)
	r.entries.SetDefault(id, entry)
	return entry, nil
}

// Delete disposes the session with the given id
func (r *Registry) Delete(id string) error {
	if _, ok := r.entries.Get(id); !ok {
		return &coreerrors.NotFoundError{Resource: "viewer", ID: id}
	}
	r.entries.Delete(id)
	return nil
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	return r.entries.ItemCount()
}

// Close disposes every session
func (r *Registry) Close() {
	r.entries.DeleteExpired()
	for id := range r.entries.Items() {
		r.entries.Delete(id)
	}
}

func (r *Registry) dispose(id string, entry *Entry) {
	entry.Controller.Unmount()
	entry.Session.Close()
	r.logger.Info("Viewer session closed", map[string]interface{}{
		"session_id": id,
	})
}
