package queries

import "errors"

// GetTemplateQuery represents a query to get a single template
type GetTemplateQuery struct {
	TemplateID string
}

// Validate validates the GetTemplateQuery
func (q GetTemplateQuery) Validate() error {
	if q.TemplateID == "" {
		return errors.New("template ID is required")
	}
	return nil
}

// GetTemplateResult represents the result of getting a template
type GetTemplateResult struct {
	ID              string          `json:"id"`
	OwnerID         string          `json:"ownerId"`
	Name            string          `json:"name"`
	CanvasWidth     int             `json:"canvasWidth"`
	CanvasHeight    int             `json:"canvasHeight"`
	BackgroundColor string          `json:"backgroundColor"`
	Elements        []ElementResult `json:"elements"`
	Version         int             `json:"version"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

// ElementResult represents one element inside a template result, emitted in
// ascending zIndex order
type ElementResult struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	X          int                    `json:"x"`
	Y          int                    `json:"y"`
	Width      int                    `json:"width"`
	Height     int                    `json:"height"`
	ZIndex     int                    `json:"zIndex"`
	Properties map[string]interface{} `json:"properties"`
}
