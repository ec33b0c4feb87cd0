package queries

import "errors"

// BuildSkeletonQuery asks for the editable form of an article: the
// template's skeleton populated with the article's stored content
type BuildSkeletonQuery struct {
	ArticleID string
}

// Validate validates the BuildSkeletonQuery
func (q BuildSkeletonQuery) Validate() error {
	if q.ArticleID == "" {
		return errors.New("article ID is required")
	}
	return nil
}

// BuildSkeletonResult represents the editing session for an article
type BuildSkeletonResult struct {
	ArticleID  string                `json:"articleId"`
	TemplateID string                `json:"templateId"`
	State      string                `json:"state"`
	Fields     []EditableFieldResult `json:"fields"`
}

// EditableFieldResult is one field the editor can render
type EditableFieldResult struct {
	ElementID string `json:"elementId"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	HasValue  bool   `json:"hasValue"`
	Editable  bool   `json:"editable"`
}
