package queries

import "errors"

// ListArticlesQuery represents a query to list articles by author
type ListArticlesQuery struct {
	AuthorID string
}

// Validate validates the ListArticlesQuery
func (q ListArticlesQuery) Validate() error {
	if q.AuthorID == "" {
		return errors.New("author ID is required")
	}
	return nil
}

// ListArticlesResult represents the result of listing articles
type ListArticlesResult struct {
	Articles []ArticleSummary `json:"articles"`
}

// ArticleSummary is a lightweight projection for list views
type ArticleSummary struct {
	ID         string `json:"id"`
	TemplateID string `json:"templateId"`
	Title      string `json:"title"`
	State      string `json:"state"`
	UpdatedAt  string `json:"updatedAt"`
}
