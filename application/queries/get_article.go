package queries

import "errors"

// GetArticleQuery represents a query to get a single article
type GetArticleQuery struct {
	ArticleID string
}

// Validate validates the GetArticleQuery
func (q GetArticleQuery) Validate() error {
	if q.ArticleID == "" {
		return errors.New("article ID is required")
	}
	return nil
}

// GetArticleResult represents the result of getting an article, including
// the workflow predicates the client needs to render its action buttons
type GetArticleResult struct {
	ID                 string               `json:"id"`
	TemplateID         string               `json:"templateId"`
	AuthorID           string               `json:"authorId"`
	Title              string               `json:"title"`
	State              string               `json:"state"`
	Content            ArticleContentResult `json:"content"`
	ValidNextStates    []string             `json:"validNextStates"`
	CanEdit            bool                 `json:"canEdit"`
	CanPublish         bool                 `json:"canPublish"`
	CanSubmitForReview bool                 `json:"canSubmitForReview"`
	Version            int                  `json:"version"`
	CreatedAt          string               `json:"createdAt"`
	UpdatedAt          string               `json:"updatedAt"`
}

// ArticleContentResult mirrors the stored content payload shape
type ArticleContentResult struct {
	Elements []ArticleContentEntry `json:"elements"`
}

// ArticleContentEntry is one stored content value
type ArticleContentEntry struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Content *string `json:"content,omitempty"`
	URL     *string `json:"url,omitempty"`
}
