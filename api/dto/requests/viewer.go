// ABOUTME: Request DTOs for the article viewer endpoints
// ABOUTME: Carries huma validation tags so malformed requests are rejected before reaching a session

package requests

// ArticleRequest identifies the article to show
type ArticleRequest struct {
	Language string `json:"language" minLength:"1" maxLength:"20" example:"en" doc:"Wiki language code"`
	Project  string `json:"project" minLength:"1" maxLength:"30" example:"wikipedia" doc:"Wiki project"`
	Title    string `json:"title" minLength:"1" maxLength:"255" example:"Test_Article" doc:"Article title as used in wiki URLs"`
	URL      string `json:"url,omitempty" format:"uri" doc:"Article URL for the view-on-wiki link; derived from the title when omitted"`
}

// BoundsRequest is the viewer's on-screen rectangle used for outside-dismiss hit testing
type BoundsRequest struct {
	X      float64 `json:"x" doc:"Left edge"`
	Y      float64 `json:"y" doc:"Top edge"`
	Width  float64 `json:"width" minimum:"0" doc:"Width"`
	Height float64 `json:"height" minimum:"0" doc:"Height"`
}

// CreateViewerRequest opens a viewer session
type CreateViewerRequest struct {
	Article         ArticleRequest `json:"article" doc:"Article to show"`
	Users           []string       `json:"users,omitempty" maxItems:"50" doc:"Usernames whose contributions are highlighted, in color order"`
	ShowButtonLabel string         `json:"showButtonLabel,omitempty" maxLength:"100" doc:"Label of the reveal button"`
	HideButtonLabel string         `json:"hideButtonLabel,omitempty" maxLength:"100" doc:"Label of the hide button"`
	LargeButton     bool           `json:"largeButton,omitempty" doc:"Render the reveal button large"`
	Bounds          *BoundsRequest `json:"bounds,omitempty" doc:"Viewer rectangle for outside-dismiss"`
}

// EventRequest is a pointer or focus event seen by the embedding page
type EventRequest struct {
	Kind string  `json:"kind" enum:"pointerdown,focusin" doc:"Event kind"`
	X    float64 `json:"x" doc:"Event x coordinate"`
	Y    float64 `json:"y" doc:"Event y coordinate"`
}
