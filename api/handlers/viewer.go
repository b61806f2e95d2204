// ABOUTME: Viewer handler for the Huma API
// ABOUTME: Exposes viewer sessions: create, reveal/hide/toggle, fragment rendering, outside-dismiss events

package handlers

import (
	"context"
	"net/http"

	"article-viewer-api/api/dto/mappers"
	"article-viewer-api/api/dto/requests"
	"article-viewer-api/api/dto/responses"
	"article-viewer-api/core/interfaces"
	"article-viewer-api/core/viewer"
	"github.com/danielgtaylor/huma/v2"
)

// ViewerHandler handles article viewer session requests
type ViewerHandler struct {
	registry *viewer.Registry
	logger   interfaces.Logger
}

// NewViewerHandler creates a new viewer handler
func NewViewerHandler(registry *viewer.Registry, logger interfaces.Logger) *ViewerHandler {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &ViewerHandler{registry: registry, logger: logger}
}

// RegisterRoutes registers all viewer routes
func (h *ViewerHandler) RegisterRoutes(api huma.API) {
	tags := []string{"Viewers"}

	huma.Register(api, huma.Operation{
		OperationID:   "createViewer",
		Method:        http.MethodPost,
		Path:          "/viewers",
		Summary:       "Open an article viewer",
		Description:   "Creates a hidden viewer session for an article. Nothing is fetched until the viewer is revealed.",
		Tags:          tags,
		DefaultStatus: http.StatusCreated,
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "getViewer",
		Method:      http.MethodGet,
		Path:        "/viewers/{id}",
		Summary:     "Get viewer state",
		Tags:        tags,
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "getViewerFragment",
		Method:      http.MethodGet,
		Path:        "/viewers/{id}/fragment",
		Summary:     "Render viewer HTML",
		Description: "Returns the legend, links and richest available article fragment as HTML",
		Tags:        tags,
	}, h.Fragment)

	huma.Register(api, huma.Operation{
		OperationID: "revealViewer",
		Method:      http.MethodPost,
		Path:        "/viewers/{id}/reveal",
		Summary:     "Reveal a viewer",
		Description: "Shows the viewer and issues any fetch not yet issued. With wait=true the response is sent once the fetches settle.",
		Tags:        tags,
	}, h.Reveal)

	huma.Register(api, huma.Operation{
		OperationID: "hideViewer",
		Method:      http.MethodPost,
		Path:        "/viewers/{id}/hide",
		Summary:     "Hide a viewer",
		Tags:        tags,
	}, h.Hide)

	huma.Register(api, huma.Operation{
		OperationID: "toggleViewer",
		Method:      http.MethodPost,
		Path:        "/viewers/{id}/toggle",
		Summary:     "Toggle a viewer",
		Tags:        tags,
	}, h.Toggle)

	huma.Register(api, huma.Operation{
		OperationID: "viewerEvent",
		Method:      http.MethodPost,
		Path:        "/viewers/{id}/events",
		Summary:     "Report a page event",
		Description: "A pointer-down or focus-in outside the viewer bounds dismisses a visible viewer",
		Tags:        tags,
	}, h.Event)

	huma.Register(api, huma.Operation{
		OperationID:   "setViewerBounds",
		Method:        http.MethodPut,
		Path:          "/viewers/{id}/bounds",
		Summary:       "Update viewer bounds",
		Tags:          tags,
		DefaultStatus: http.StatusNoContent,
	}, h.SetBounds)

	huma.Register(api, huma.Operation{
		OperationID:   "deleteViewer",
		Method:        http.MethodDelete,
		Path:          "/viewers/{id}",
		Summary:       "Close a viewer",
		Tags:          tags,
		DefaultStatus: http.StatusNoContent,
	}, h.Delete)
}

// CreateViewerInput defines the input for the Create operation
type CreateViewerInput struct {
	Body requests.CreateViewerRequest
}

// ViewerInput addresses one viewer
type ViewerInput struct {
	ID string `path:"id" doc:"Viewer id"`
}

// RevealInput defines the input for the Reveal operation
type RevealInput struct {
	ID   string `path:"id" doc:"Viewer id"`
	Wait bool   `query:"wait" doc:"Respond once every issued fetch has settled"`
}

// EventInput defines the input for the Event operation
type EventInput struct {
	ID   string `path:"id" doc:"Viewer id"`
	Body requests.EventRequest
}

// BoundsInput defines the input for the SetBounds operation
type BoundsInput struct {
	ID   string `path:"id" doc:"Viewer id"`
	Body requests.BoundsRequest
}

// ViewerOutput is a viewer snapshot
type ViewerOutput struct {
	Body responses.ViewerResponse
}

// FragmentOutput is rendered viewer HTML
type FragmentOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// EventOutput defines the output for the Event operation
type EventOutput struct {
	Body responses.EventResponse
}

func viewerOutput(s *viewer.Session) *ViewerOutput {
	return &ViewerOutput{Body: mappers.ToViewerResponse(s.Snapshot())}
}

// Create opens a viewer session
func (h *ViewerHandler) Create(ctx context.Context, input *CreateViewerInput) (*ViewerOutput, error) {
	entry, err := h.registry.Create(ctx, mappers.ToSessionRequest(input.Body), mappers.ToBounds(input.Body.Bounds))
	if err != nil {
		return nil, toHumaError(err)
	}
	return viewerOutput(entry.Session), nil
}

// Get returns a viewer snapshot
func (h *ViewerHandler) Get(ctx context.Context, input *ViewerInput) (*ViewerOutput, error) {
	entry, err := h.registry.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return viewerOutput(entry.Session), nil
}

// Fragment renders the viewer as HTML
func (h *ViewerHandler) Fragment(ctx context.Context, input *ViewerInput) (*FragmentOutput, error) {
	entry, err := h.registry.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	html, err := viewer.RenderFragment(entry.Session.Snapshot())
	if err != nil {
		h.logger.Error("Failed to render viewer fragment", map[string]interface{}{
			"session_id": input.ID,
			"error":      err.Error(),
		})
		return nil, toHumaError(err)
	}

	return &FragmentOutput{
		ContentType: "text/html; charset=utf-8",
		Body:        []byte(html),
	}, nil
}

// Reveal shows the viewer and starts its fetches
func (h *ViewerHandler) Reveal(ctx context.Context, input *RevealInput) (*ViewerOutput, error) {
	entry, err := h.registry.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	entry.Session.Reveal()
	if input.Wait {
		// a cancelled wait still answers with whatever has arrived
		if err := entry.Session.Wait(ctx); err != nil {
			h.logger.Debug("Reveal wait ended early", map[string]interface{}{
				"session_id": input.ID,
				"error":      err.Error(),
			})
		}
	}
	return viewerOutput(entry.Session), nil
}

// Hide hides the viewer
func (h *ViewerHandler) Hide(ctx context.Context, input *ViewerInput) (*ViewerOutput, error) {
	entry, err := h.registry.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	entry.Session.Hide()
	return viewerOutput(entry.Session), nil
}

// Toggle reveals a hidden viewer and hides a visible one
func (h *ViewerHandler) Toggle(ctx context.Context, input *ViewerInput) (*ViewerOutput, error) {
	entry, err := h.registry.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	entry.Session.Toggle()
	return viewerOutput(entry.Session), nil
}

// Event runs an outside-dismiss hit test for a page event
func (h *ViewerHandler) Event(ctx context.Context, input *EventInput) (*EventOutput, error) {
	entry, err := h.registry.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	dismissed := entry.Controller.Handle(mappers.ToEvent(input.Body))
	return &EventOutput{Body: responses.EventResponse{
		Dismissed: dismissed,
		Viewer:    mappers.ToViewerResponse(entry.Session.Snapshot()),
	}}, nil
}

// SetBounds updates the rectangle used for outside-dismiss
func (h *ViewerHandler) SetBounds(ctx context.Context, input *BoundsInput) (*struct{}, error) {
	entry, err := h.registry.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	entry.Controller.SetBounds(mappers.ToBounds(&input.Body))
	return nil, nil
}

// Delete closes the viewer session
func (h *ViewerHandler) Delete(ctx context.Context, input *ViewerInput) (*struct{}, error) {
	if err := h.registry.Delete(input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return nil, nil
}
