// ABOUTME: Viewer presentation models exposed to callers
// ABOUTME: Covers button labels and styles plus the per-session snapshot

package domain

const (
	DefaultShowButtonLabel = "Show current version"
	DefaultHideButtonLabel = "Hide"
	DefaultViewOnWikiLabel = "View on wiki"

	largeButtonClass = "button dark"
	smallButtonClass = "button dark small"

	// FeedbackURL is where readers can leave feedback about the viewer.
	FeedbackURL = "/feedback?subject=Article Viewer"
)

// DisplayOptions are the caller supplied presentation settings of a viewer.
type DisplayOptions struct {
	ShowButtonLabel string `json:"showButtonLabel,omitempty"`
	HideButtonLabel string `json:"hideButtonLabel,omitempty"`
	LargeButton     bool   `json:"largeButton,omitempty"`
}

// ButtonView describes the toggle button and links around the article.
type ButtonView struct {
	Label         string `json:"label"`
	Class         string `json:"class"`
	ViewOnWikiURL string `json:"viewOnWikiUrl"`
	FeedbackURL   string `json:"feedbackUrl"`
}

// Buttons returns the button to show in the given visibility state.
// The hide button is always small; the show button honors LargeButton.
func (o DisplayOptions) Buttons(visible bool, article ArticleRef) ButtonView {
	view := ButtonView{
		ViewOnWikiURL: article.URL,
		FeedbackURL:   FeedbackURL,
	}
	if visible {
		view.Label = o.HideButtonLabel
		if view.Label == "" {
			view.Label = DefaultHideButtonLabel
		}
		view.Class = smallButtonClass
		return view
	}

	view.Label = o.ShowButtonLabel
	if view.Label == "" {
		view.Label = DefaultShowButtonLabel
	}
	view.Class = smallButtonClass
	if o.LargeButton {
		view.Class = largeButtonClass
	}
	return view
}

// Snapshot is a consistent view of a viewer session at one instant.
type Snapshot struct {
	ID      string
	Article ArticleRef
	State   ViewerState
	Visible bool

	// HTML is the fragment selected by RenderState.Fragment.
	HTML string

	// Legend is present only once the highlighted fragment exists.
	Legend []LegendEntry

	PageID  int
	Sources map[Source]SourceState
	Roster  Roster
	Button  ButtonView

	OverlayErr string
}
