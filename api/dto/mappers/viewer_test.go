package mappers

import (
	"testing"

	"article-viewer-api/api/dto/requests"
	"article-viewer-api/core/dismiss"
	"article-viewer-api/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestToArticleRef_DerivesURL(t *testing.T) {
	article := ToArticleRef(requests.ArticleRequest{Language: "en", Project: "wikipedia", Title: "Rock_&_Roll"})
	assert.Equal(t, "https://en.wikipedia.org/wiki/Rock_&_Roll", article.URL)

	explicit := ToArticleRef(requests.ArticleRequest{Language: "en", Project: "wikipedia", Title: "X", URL: "https://example.org/x"})
	assert.Equal(t, "https://example.org/x", explicit.URL)
}

func TestToSessionRequest(t *testing.T) {
	req := ToSessionRequest(requests.CreateViewerRequest{
		Article:         requests.ArticleRequest{Language: "en", Project: "wikipedia", Title: "X"},
		Users:           []string{"Alice", "Bob"},
		ShowButtonLabel: "Open",
		LargeButton:     true,
	})

	assert.Equal(t, []string{"Alice", "Bob"}, req.Usernames)
	assert.Equal(t, "Open", req.Display.ShowButtonLabel)
	assert.True(t, req.Display.LargeButton)
}

func TestToBounds(t *testing.T) {
	assert.Equal(t, dismiss.Bounds{}, ToBounds(nil))
	assert.Equal(t, dismiss.Bounds{X: 1, Y: 2, Width: 3, Height: 4},
		ToBounds(&requests.BoundsRequest{X: 1, Y: 2, Width: 3, Height: 4}))
}

func TestToViewerResponse(t *testing.T) {
	resp := ToViewerResponse(domain.Snapshot{
		ID:    "abc",
		State: domain.RevealedLoading,
		Sources: map[domain.Source]domain.SourceState{
			domain.SourceParse:      {Status: domain.SourceLoaded},
			domain.SourceAuthorship: {Status: domain.SourceFailed, Reason: "timeout"},
		},
	})

	assert.Equal(t, "revealed_loading", resp.State)
	assert.Equal(t, "loaded", resp.Sources["parse"].Status)
	assert.Equal(t, "timeout", resp.Sources["authorship"].Reason)
	assert.NotNil(t, resp.Legend)
	assert.NotNil(t, resp.Roster)
}
