// ABOUTME: Mappers between viewer API DTOs and core types
// ABOUTME: Keeps huma DTOs out of the core packages

package mappers

import (
	"net/url"

	"article-viewer-api/api/dto/requests"
	"article-viewer-api/api/dto/responses"
	"article-viewer-api/core/dismiss"
	"article-viewer-api/core/domain"
	"article-viewer-api/core/viewer"
)

// ToArticleRef converts an article request, deriving the article URL when absent
func ToArticleRef(req requests.ArticleRequest) domain.ArticleRef {
	article := domain.ArticleRef{
		Language: req.Language,
		Project:  req.Project,
		Title:    req.Title,
		URL:      req.URL,
	}
	if article.URL == "" && article.Title != "" {
		article.URL = article.WikiURL() + "/wiki/" + url.PathEscape(article.Title)
	}
	return article
}

// ToSessionRequest converts a create request
func ToSessionRequest(req requests.CreateViewerRequest) viewer.SessionRequest {
	return viewer.SessionRequest{
		Article:   ToArticleRef(req.Article),
		Usernames: req.Users,
		Display: domain.DisplayOptions{
			ShowButtonLabel: req.ShowButtonLabel,
			HideButtonLabel: req.HideButtonLabel,
			LargeButton:     req.LargeButton,
		},
	}
}

// ToBounds converts optional bounds; nil means an empty rectangle
func ToBounds(req *requests.BoundsRequest) dismiss.Bounds {
	if req == nil {
		return dismiss.Bounds{}
	}
	return dismiss.Bounds{X: req.X, Y: req.Y, Width: req.Width, Height: req.Height}
}

// ToEvent converts an event request
func ToEvent(req requests.EventRequest) dismiss.Event {
	return dismiss.Event{Kind: dismiss.EventKind(req.Kind), X: req.X, Y: req.Y}
}

// ToViewerResponse converts a session snapshot
func ToViewerResponse(snap domain.Snapshot) responses.ViewerResponse {
	resp := responses.ViewerResponse{
		ID:           snap.ID,
		Article:      snap.Article,
		State:        snap.State.String(),
		Visible:      snap.Visible,
		HTML:         snap.HTML,
		Legend:       snap.Legend,
		PageID:       snap.PageID,
		Sources:      make(map[string]responses.SourceResponse, len(snap.Sources)),
		Roster:       snap.Roster,
		Button:       snap.Button,
		OverlayError: snap.OverlayErr,
	}
	if resp.Legend == nil {
		resp.Legend = []domain.LegendEntry{}
	}
	if resp.Roster == nil {
		resp.Roster = []domain.Author{}
	}
	for src, state := range snap.Sources {
		resp.Sources[string(src)] = responses.SourceResponse{
			Status: state.Status.String(),
			Reason: state.Reason,
		}
	}
	return resp
}
