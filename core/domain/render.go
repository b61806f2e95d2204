// ABOUTME: Render state domain model tracks what each remote source has delivered
// ABOUTME: Encodes the fragment priority rule and the visible viewer states

package domain

// SourceStatus is the lifecycle of one remote fetch within a viewer session.
// It only ever moves forward: NotIssued -> InFlight -> Loaded or Failed.
type SourceStatus int

const (
	SourceNotIssued SourceStatus = iota
	SourceInFlight
	SourceLoaded
	SourceFailed
)

// String returns the lowercase name used in API responses
func (s SourceStatus) String() string {
	switch s {
	case SourceNotIssued:
		return "not_issued"
	case SourceInFlight:
		return "in_flight"
	case SourceLoaded:
		return "loaded"
	case SourceFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Settled reports whether the fetch has finished one way or the other.
func (s SourceStatus) Settled() bool {
	return s == SourceLoaded || s == SourceFailed
}

// SourceState is the status of a source plus the reason it failed, if it did.
type SourceState struct {
	Status SourceStatus
	Reason string
}

// Source names the three remote inputs of a viewer.
type Source string

const (
	SourceParse      Source = "parse"
	SourceAuthorship Source = "authorship"
	SourceUsers      Source = "users"
)

// Sources lists every source in issue order.
var Sources = []Source{SourceParse, SourceUsers, SourceAuthorship}

// RenderState holds everything fetched for one viewer session. Fields go from
// absent to present and are never cleared.
type RenderState struct {
	Parse      SourceState
	Authorship SourceState
	Users      SourceState

	ParsedArticleHTML  string
	PageID             int
	AuthorshipDiffHTML string

	// Roster starts as usernames only and is replaced once user ids resolve.
	Roster Roster

	HighlightedHTML string
	Legend          []LegendEntry

	// OverlayErr is set when the overlay could not be applied, e.g. when the
	// roster is longer than the palette.
	OverlayErr string
}

// Fetched reports whether the parsed article has loaded.
func (s RenderState) Fetched() bool { return s.Parse.Status == SourceLoaded }

// WhocolorFetched reports whether the authorship diff has loaded.
func (s RenderState) WhocolorFetched() bool { return s.Authorship.Status == SourceLoaded }

// UserIDsFetched reports whether the roster has been resolved.
func (s RenderState) UserIDsFetched() bool { return s.Users.Status == SourceLoaded }

// Highlighted reports whether the authorship overlay has been applied.
func (s RenderState) Highlighted() bool { return s.HighlightedHTML != "" }

// Source returns the state of the named source.
func (s RenderState) Source(src Source) SourceState {
	switch src {
	case SourceParse:
		return s.Parse
	case SourceAuthorship:
		return s.Authorship
	case SourceUsers:
		return s.Users
	}
	return SourceState{}
}

// Fragment returns the richest HTML available: the highlighted authorship
// view, then the plain authorship view, then the parsed article, else "".
func (s RenderState) Fragment() string {
	switch {
	case s.HighlightedHTML != "":
		return s.HighlightedHTML
	case s.AuthorshipDiffHTML != "":
		return s.AuthorshipDiffHTML
	default:
		return s.ParsedArticleHTML
	}
}

// ViewerState is the visible state of an article viewer.
type ViewerState int

const (
	Hidden ViewerState = iota
	RevealedLoading
	RevealedLoaded
)

// String returns the lowercase name used in API responses
func (v ViewerState) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case RevealedLoading:
		return "revealed_loading"
	case RevealedLoaded:
		return "revealed_loaded"
	default:
		return "unknown"
	}
}

// ViewerStateOf derives the viewer state from visibility and fetch progress.
func ViewerStateOf(visible bool, s RenderState) ViewerState {
	if !visible {
		return Hidden
	}
	if s.Fetched() {
		return RevealedLoaded
	}
	return RevealedLoading
}
