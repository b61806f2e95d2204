// ABOUTME: Reducer-style transitions for a viewer's render state
// ABOUTME: Every mutation of RenderState goes through reduce so monotonicity holds in one place

package viewer

import (
	"article-viewer-api/core/attribution"
	"article-viewer-api/core/domain"
)

// event is one transition of a viewer's render state
type event interface {
	source() domain.Source
}

type issued struct{ src domain.Source }

type parseLoaded struct {
	html   string
	pageID int
}

type authorshipLoaded struct{ html string }

type usersLoaded struct{ roster domain.Roster }

type failed struct {
	src    domain.Source
	reason string
}

func (e issued) source() domain.Source           { return e.src }
func (e parseLoaded) source() domain.Source      { return domain.SourceParse }
func (e authorshipLoaded) source() domain.Source { return domain.SourceAuthorship }
func (e usersLoaded) source() domain.Source      { return domain.SourceUsers }
func (e failed) source() domain.Source           { return e.src }

// reduce applies e to s and returns the new state. Events that would move a
// source backwards or settle a source that was never issued are ignored, so
// the result never loses information s had.
func reduce(s domain.RenderState, e event) domain.RenderState {
	status := statusOf(&s, e.source())
	if status == nil {
		return s
	}

	switch e := e.(type) {
	case issued:
		if status.Status == domain.SourceNotIssued {
			*status = domain.SourceState{Status: domain.SourceInFlight}
		}
	case failed:
		if status.Status == domain.SourceInFlight {
			*status = domain.SourceState{Status: domain.SourceFailed, Reason: e.reason}
		}
	case parseLoaded:
		if status.Status == domain.SourceInFlight {
			*status = domain.SourceState{Status: domain.SourceLoaded}
			s.ParsedArticleHTML = e.html
			s.PageID = e.pageID
		}
	case authorshipLoaded:
		if status.Status == domain.SourceInFlight {
			*status = domain.SourceState{Status: domain.SourceLoaded}
			s.AuthorshipDiffHTML = e.html
		}
	case usersLoaded:
		if status.Status == domain.SourceInFlight {
			*status = domain.SourceState{Status: domain.SourceLoaded}
			s.Roster = e.roster.Clone()
		}
	}
	return s
}

// highlight applies the authorship overlay once both the diff and the resolved
// roster are present. Before that, and after it has run once, it is a no-op.
func highlight(s domain.RenderState, palette []string) domain.RenderState {
	if !s.WhocolorFetched() || !s.UserIDsFetched() {
		return s
	}
	if s.Highlighted() || s.OverlayErr != "" {
		return s
	}

	html, legend, err := attribution.Overlay(s.AuthorshipDiffHTML, s.Roster, palette)
	if err != nil {
		s.OverlayErr = err.Error()
		return s
	}
	s.HighlightedHTML = html
	s.Legend = legend
	return s
}

func statusOf(s *domain.RenderState, src domain.Source) *domain.SourceState {
	switch src {
	case domain.SourceParse:
		return &s.Parse
	case domain.SourceAuthorship:
		return &s.Authorship
	case domain.SourceUsers:
		return &s.Users
	}
	return nil
}
