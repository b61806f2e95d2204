// ABOUTME: Response DTOs for the article viewer endpoints
// ABOUTME: Flattens session snapshots into JSON-friendly structures

package responses

import "article-viewer-api/core/domain"

// SourceResponse is the progress of one remote fetch
type SourceResponse struct {
	Status string `json:"status" enum:"not_issued,in_flight,loaded,failed"`
	Reason string `json:"reason,omitempty"`
}

// ViewerResponse is a viewer session snapshot
type ViewerResponse struct {
	ID           string                    `json:"id"`
	Article      domain.ArticleRef         `json:"article"`
	State        string                    `json:"state" enum:"hidden,revealed_loading,revealed_loaded"`
	Visible      bool                      `json:"visible"`
	HTML         string                    `json:"html" doc:"Richest fragment available: highlighted, authorship diff, or parsed article"`
	Legend       []domain.LegendEntry      `json:"legend"`
	PageID       int                       `json:"pageId,omitempty"`
	Sources      map[string]SourceResponse `json:"sources"`
	Roster       []domain.Author           `json:"roster"`
	Button       domain.ButtonView         `json:"button"`
	OverlayError string                    `json:"overlayError,omitempty"`
}

// EventResponse reports the outcome of an outside-dismiss event
type EventResponse struct {
	Dismissed bool           `json:"dismissed"`
	Viewer    ViewerResponse `json:"viewer"`
}

// HealthResponse is the service health
type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}
