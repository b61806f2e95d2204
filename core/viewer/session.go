// ABOUTME: Viewer session is the render state machine and fetch orchestrator for one article
// ABOUTME: Issues each remote fetch at most once and recomputes the displayed fragment as results arrive

// Package viewer implements article viewer sessions: the visibility state
// machine, the three remote fetches behind it, and the registry that owns
// sessions for the HTTP API.
package viewer

import (
	"context"
	"sync"

	"article-viewer-api/core/domain"
	"article-viewer-api/core/interfaces"
)

// NotificationKind says why subscribers are being notified
type NotificationKind int

const (
	// Rendered means the displayed fragment or legend changed
	Rendered NotificationKind = iota
	// VisibilityChanged means the viewer was revealed or hidden
	VisibilityChanged
	// Dismissed means the viewer was hidden by an outside event
	Dismissed
)

// Notification carries a snapshot taken right after the change
type Notification struct {
	Kind     NotificationKind
	Snapshot domain.Snapshot
}

type sessionConfig struct {
	id         string
	article    domain.ArticleRef
	usernames  []string
	display    domain.DisplayOptions
	palette    []string
	authorship bool
	source     interfaces.ArticleSource
	rewriter   interfaces.LinkRewriter
	dispatcher interfaces.Dispatcher
	logger     interfaces.Logger
}

// Session is one article viewer. It is safe for concurrent use; fetch results
// may arrive in any order and are applied one at a time.
type Session struct {
	cfg    sessionConfig
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	state   domain.RenderState
	visible bool
	closed  bool
	changed chan struct{}
	subs    map[int]func(Notification)
	nextSub int
}

func newSession(cfg sessionConfig) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
		state: domain.RenderState{
			Roster: domain.NewRoster(cfg.usernames),
		},
		changed: make(chan struct{}),
		subs:    make(map[int]func(Notification)),
	}
}

// ID returns the session id
func (s *Session) ID() string { return s.cfg.id }

// Article returns the article the session shows
func (s *Session) Article() domain.ArticleRef { return s.cfg.article }

// Visible reports whether the viewer is revealed
func (s *Session) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Reveal shows the viewer and issues every fetch that has not been issued.
// Calling it again, or while fetches are in flight, issues nothing new.
func (s *Session) Reveal() {
	s.setVisible(true, VisibilityChanged)

	s.FetchParsedArticle()
	if s.cfg.authorship {
		s.FetchUserIDs()
		s.FetchAuthorshipDiff()
	}
}

// Hide hides the viewer. Fetches already issued keep running.
func (s *Session) Hide() {
	s.setVisible(false, VisibilityChanged)
}

// Toggle reveals a hidden viewer and hides a visible one
func (s *Session) Toggle() {
	if s.Visible() {
		s.Hide()
		return
	}
	s.Reveal()
}

// Dismiss hides a visible viewer in response to an outside event and
// notifies subscribers. It reports whether the viewer was visible.
func (s *Session) Dismiss() bool {
	return s.setVisible(false, Dismissed)
}

func (s *Session) setVisible(visible bool, kind NotificationKind) bool {
	s.mu.Lock()
	if s.visible == visible {
		s.mu.Unlock()
		return false
	}
	s.visible = visible
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs, Notification{Kind: kind, Snapshot: snap})
	return true
}

// FetchParsedArticle issues the parse fetch unless it was issued before. It
// reports whether a fetch was issued by this call.
func (s *Session) FetchParsedArticle() bool {
	return s.issue(domain.SourceParse, func(ctx context.Context) (event, error) {
		parsed, err := s.cfg.source.FetchParsedArticle(ctx, s.cfg.article)
		if err != nil {
			return nil, err
		}
		return parseLoaded{
			html:   s.cfg.rewriter.Rewrite(parsed.HTML, s.cfg.article.WikiURL()),
			pageID: parsed.PageID,
		}, nil
	})
}

// FetchAuthorshipDiff issues the authorship-diff fetch unless it was issued
// before. Its result triggers the overlay once the roster is resolved.
func (s *Session) FetchAuthorshipDiff() bool {
	return s.issue(domain.SourceAuthorship, func(ctx context.Context) (event, error) {
		html, err := s.cfg.source.FetchAuthorshipDiff(ctx, s.cfg.article)
		if err != nil {
			return nil, err
		}
		return authorshipLoaded{html: s.cfg.rewriter.Rewrite(html, s.cfg.article.WikiURL())}, nil
	})
}

// FetchUserIDs issues the user resolution fetch unless it was issued before.
// The resolved roster replaces the username-only roster.
func (s *Session) FetchUserIDs() bool {
	return s.issue(domain.SourceUsers, func(ctx context.Context) (event, error) {
		roster, err := s.cfg.source.ResolveUsers(ctx, s.cfg.article, s.cfg.usernames)
		if err != nil {
			return nil, err
		}
		return usersLoaded{roster: roster}, nil
	})
}

// issue moves src from NotIssued to InFlight under the lock, so that only one
// caller ever dispatches the fetch, then hands the fetch to the dispatcher.
func (s *Session) issue(src domain.Source, fetch func(ctx context.Context) (event, error)) bool {
	s.mu.Lock()
	if s.closed || s.state.Source(src).Status != domain.SourceNotIssued {
		s.mu.Unlock()
		return false
	}
	s.state = reduce(s.state, issued{src: src})
	s.broadcastLocked()
	s.mu.Unlock()

	s.cfg.logger.Debug("Fetch issued", map[string]interface{}{
		"session_id": s.cfg.id,
		"source":     string(src),
		"title":      s.cfg.article.Title,
	})

	err := s.cfg.dispatcher.Dispatch(func() {
		e, err := fetch(s.ctx)
		if err != nil {
			s.fail(src, err)
			return
		}
		s.apply(e)
	})
	if err != nil {
		s.fail(src, err)
	}
	return true
}

func (s *Session) fail(src domain.Source, err error) {
	s.cfg.logger.Warn("Fetch failed", map[string]interface{}{
		"session_id": s.cfg.id,
		"source":     string(src),
		"title":      s.cfg.article.Title,
		"error":      err.Error(),
	})
	s.apply(failed{src: src, reason: err.Error()})
}

// apply reduces e into the state, recomputes the overlay, and notifies
// subscribers if the displayed fragment changed. Results arriving after Close
// are dropped.
func (s *Session) apply(e event) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	before := s.state.Fragment()
	hadLegend := len(s.state.Legend) > 0

	s.state = highlight(reduce(s.state, e), s.cfg.palette)
	s.broadcastLocked()

	if s.state.OverlayErr != "" && !s.state.Highlighted() {
		s.cfg.logger.Warn("Authorship overlay not applied", map[string]interface{}{
			"session_id": s.cfg.id,
			"error":      s.state.OverlayErr,
		})
	}

	rendered := s.state.Fragment() != before || (len(s.state.Legend) > 0) != hadLegend
	var snap domain.Snapshot
	var subs []func(Notification)
	if rendered {
		snap = s.snapshotLocked()
		subs = s.subscribersLocked()
	}
	s.mu.Unlock()

	if rendered {
		notify(subs, Notification{Kind: Rendered, Snapshot: snap})
	}
}

// Wait blocks until no fetch is in flight or ctx is done
func (s *Session) Wait(ctx context.Context) error {
	for {
		s.mu.Lock()
		settled := s.closed || !s.inFlightLocked()
		ch := s.changed
		s.mu.Unlock()

		if settled {
			return nil
		}
		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close disposes the session. In-flight fetches are cancelled and any result
// that still arrives is dropped.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.subs = make(map[int]func(Notification))
	s.broadcastLocked()
	s.mu.Unlock()

	s.cancel()
}

// Subscribe registers fn for notifications and returns a function that
// removes it. fn is called without the session lock held.
func (s *Session) Subscribe(fn func(Notification)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// State returns a copy of the render state
func (s *Session) State() domain.RenderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyState(s.state)
}

// Snapshot returns what the viewer currently displays
func (s *Session) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() domain.Snapshot {
	st := s.state
	snap := domain.Snapshot{
		ID:      s.cfg.id,
		Article: s.cfg.article,
		State:   domain.ViewerStateOf(s.visible, st),
		Visible: s.visible,
		HTML:    st.Fragment(),
		PageID:  st.PageID,
		Roster:  st.Roster.Clone(),
		Button:  s.cfg.display.Buttons(s.visible, s.cfg.article),
		Sources: map[domain.Source]domain.SourceState{
			domain.SourceParse:      st.Parse,
			domain.SourceAuthorship: st.Authorship,
			domain.SourceUsers:      st.Users,
		},
		OverlayErr: st.OverlayErr,
	}
	if st.Highlighted() {
		snap.Legend = append([]domain.LegendEntry(nil), st.Legend...)
	}
	return snap
}

func (s *Session) inFlightLocked() bool {
	for _, src := range domain.Sources {
		if s.state.Source(src).Status == domain.SourceInFlight {
			return true
		}
	}
	return false
}

// broadcastLocked wakes every Wait call
func (s *Session) broadcastLocked() {
	close(s.changed)
	s.changed = make(chan struct{})
}

func (s *Session) subscribersLocked() []func(Notification) {
	subs := make([]func(Notification), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func(Notification), n Notification) {
	for _, fn := range subs {
		fn(n)
	}
}

func copyState(st domain.RenderState) domain.RenderState {
	st.Roster = st.Roster.Clone()
	st.Legend = append([]domain.LegendEntry(nil), st.Legend...)
	return st
}
