package viewer

import (
	"context"
	"sync"

	"article-viewer-api/core/domain"
	"article-viewer-api/core/interfaces"
)

// stubSource is an ArticleSource whose responses are set per test
type stubSource struct {
	mu         sync.Mutex
	parseCalls int
	diffCalls  int
	usersCalls int

	parseFunc func(ctx context.Context) (*interfaces.ParsedArticle, error)
	diffFunc  func(ctx context.Context) (string, error)
	usersFunc func(ctx context.Context, usernames []string) (domain.Roster, error)
}

func (s *stubSource) FetchParsedArticle(ctx context.Context, article domain.ArticleRef) (*interfaces.ParsedArticle, error) {
	s.mu.Lock()
	s.parseCalls++
	s.mu.Unlock()
	if s.parseFunc != nil {
		return s.parseFunc(ctx)
	}
	return &interfaces.ParsedArticle{}, nil
}

func (s *stubSource) FetchAuthorshipDiff(ctx context.Context, article domain.ArticleRef) (string, error) {
	s.mu.Lock()
	s.diffCalls++
	s.mu.Unlock()
	if s.diffFunc != nil {
		return s.diffFunc(ctx)
	}
	return "", nil
}

func (s *stubSource) ResolveUsers(ctx context.Context, article domain.ArticleRef, usernames []string) (domain.Roster, error) {
	s.mu.Lock()
	s.usersCalls++
	s.mu.Unlock()
	if s.usersFunc != nil {
		return s.usersFunc(ctx, usernames)
	}
	return domain.Roster{}, nil
}

func (s *stubSource) calls() (parse, diff, users int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parseCalls, s.diffCalls, s.usersCalls
}

// manualDispatcher queues jobs until the test runs them, which lets a test
// choose the order in which fetches complete
type manualDispatcher struct {
	mu   sync.Mutex
	jobs []func()
	err  error
}

func (d *manualDispatcher) Dispatch(job func()) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	d.jobs = append(d.jobs, job)
	return nil
}

func (d *manualDispatcher) pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.jobs)
}

// run runs the i-th queued job (in dispatch order)
func (d *manualDispatcher) run(i int) {
	d.mu.Lock()
	job := d.jobs[i]
	d.mu.Unlock()
	job()
}

func (d *manualDispatcher) runAll() {
	d.mu.Lock()
	jobs := append([]func(){}, d.jobs...)
	d.mu.Unlock()
	for _, job := range jobs {
		job()
	}
}

// recorder collects notifications
type recorder struct {
	mu    sync.Mutex
	kinds []NotificationKind
	last  domain.Snapshot
}

func (r *recorder) record(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds = append(r.kinds, n.Kind)
	r.last = n.Snapshot
}

func (r *recorder) count(kind NotificationKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, k := range r.kinds {
		if k == kind {
			n++
		}
	}
	return n
}
