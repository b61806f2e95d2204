package domain

import (
	"testing"

	coreerrors "article-viewer-api/core/errors"
)

func TestArticleRef_WikiURL(t *testing.T) {
	a := ArticleRef{Language: "fr", Project: "wiktionary", Title: "Chat"}
	if got := a.WikiURL(); got != "https://fr.wiktionary.org" {
		t.Errorf("WikiURL() = %q", got)
	}
}

func TestArticleRef_Validate(t *testing.T) {
	tests := []struct {
		name    string
		article ArticleRef
		field   string
	}{
		{"valid", ArticleRef{Language: "en", Project: "wikipedia", Title: "Go"}, ""},
		{"no language", ArticleRef{Project: "wikipedia", Title: "Go"}, "language"},
		{"no project", ArticleRef{Language: "en", Title: "Go"}, "project"},
		{"blank title", ArticleRef{Language: "en", Project: "wikipedia", Title: "  "}, "title"},
		{"host injection", ArticleRef{Language: "evil.com/", Project: "wikipedia", Title: "Go"}, "language"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.article.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			ve, ok := err.(*coreerrors.ValidationError)
			if !ok {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestRoster(t *testing.T) {
	r := NewRoster([]string{"Alice", "Bob"})
	if len(r) != 2 || r[0].Resolved() {
		t.Fatalf("unexpected roster %+v", r)
	}

	c := r.Clone()
	c[0].UserID = 5
	if r[0].UserID != 0 {
		t.Error("Clone shares memory")
	}
	if !c[0].Resolved() {
		t.Error("author with id should be resolved")
	}
	if names := c.Names(); names[0] != "Alice" || names[1] != "Bob" {
		t.Errorf("Names() = %v", names)
	}
	if Roster(nil).Clone() != nil {
		t.Error("nil roster should clone to nil")
	}
}

func TestRenderState_Fragment(t *testing.T) {
	s := RenderState{}
	if s.Fragment() != "" {
		t.Error("empty state should render nothing")
	}
	s.ParsedArticleHTML = "parsed"
	if s.Fragment() != "parsed" {
		t.Errorf("got %q", s.Fragment())
	}
	s.AuthorshipDiffHTML = "diff"
	if s.Fragment() != "diff" {
		t.Errorf("got %q", s.Fragment())
	}
	s.HighlightedHTML = "highlighted"
	if s.Fragment() != "highlighted" {
		t.Errorf("got %q", s.Fragment())
	}
}

func TestViewerStateOf(t *testing.T) {
	loaded := RenderState{Parse: SourceState{Status: SourceLoaded}}

	if got := ViewerStateOf(false, loaded); got != Hidden {
		t.Errorf("hidden: got %s", got)
	}
	if got := ViewerStateOf(true, RenderState{}); got != RevealedLoading {
		t.Errorf("loading: got %s", got)
	}
	if got := ViewerStateOf(true, loaded); got != RevealedLoaded {
		t.Errorf("loaded: got %s", got)
	}
	if RevealedLoaded.String() != "revealed_loaded" {
		t.Errorf("String() = %q", RevealedLoaded.String())
	}
}

func TestSourceStatus(t *testing.T) {
	if SourceInFlight.Settled() || SourceNotIssued.Settled() {
		t.Error("unsettled status reported settled")
	}
	if !SourceLoaded.Settled() || !SourceFailed.Settled() {
		t.Error("settled status reported unsettled")
	}
}

func TestDisplayOptions_Buttons(t *testing.T) {
	article := ArticleRef{URL: "https://en.wikipedia.org/wiki/Go"}

	tests := []struct {
		name    string
		opts    DisplayOptions
		visible bool
		label   string
		class   string
	}{
		{"default show", DisplayOptions{}, false, DefaultShowButtonLabel, "button dark small"},
		{"large show", DisplayOptions{LargeButton: true}, false, DefaultShowButtonLabel, "button dark"},
		{"custom show", DisplayOptions{ShowButtonLabel: "Open"}, false, "Open", "button dark small"},
		{"hide ignores large", DisplayOptions{LargeButton: true}, true, DefaultHideButtonLabel, "button dark small"},
		{"custom hide", DisplayOptions{HideButtonLabel: "Close"}, true, "Close", "button dark small"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := tt.opts.Buttons(tt.visible, article)
			if view.Label != tt.label || view.Class != tt.class {
				t.Errorf("got %q/%q, want %q/%q", view.Label, view.Class, tt.label, tt.class)
			}
			if view.ViewOnWikiURL != article.URL || view.FeedbackURL != FeedbackURL {
				t.Errorf("unexpected links %+v", view)
			}
		})
	}
}
