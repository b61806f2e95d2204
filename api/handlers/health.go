// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports liveness and the number of open viewer sessions

package handlers

import (
	"context"
	"net/http"

	"article-viewer-api/api/dto/responses"
	"github.com/danielgtaylor/huma/v2"
)

// SessionCounter reports how many viewer sessions are open
type SessionCounter interface {
	Len() int
}

// HealthHandler handles health checks
type HealthHandler struct {
	sessions SessionCounter
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(sessions SessionCounter) *HealthHandler {
	return &HealthHandler{sessions: sessions}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health reports service health
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: responses.HealthResponse{
		Status:   "ok",
		Sessions: h.sessions.Len(),
	}}, nil
}
