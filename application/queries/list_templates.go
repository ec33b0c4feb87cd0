package queries

import "errors"

// ListTemplatesQuery represents a query to list an owner's templates
type ListTemplatesQuery struct {
	OwnerID string
}

// Validate validates the ListTemplatesQuery
func (q ListTemplatesQuery) Validate() error {
	if q.OwnerID == "" {
		return errors.New("owner ID is required")
	}
	return nil
}

// ListTemplatesResult represents the result of listing templates
type ListTemplatesResult struct {
	Templates []TemplateSummary `json:"templates"`
	Total     int               `json:"total"`
}

// TemplateSummary is a lightweight template listing entry
type TemplateSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ElementCount int    `json:"elementCount"`
	Version      int    `json:"version"`
	UpdatedAt    string `json:"updatedAt"`
}
