package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	appservices "pressroom-backend/application/services"
	"pressroom-backend/domain/core/valueobjects"
	domainservices "pressroom-backend/domain/services"
)

// FieldValue is one filled-in editor field as submitted by a client
type FieldValue struct {
	ElementID string `json:"element_id" validate:"required"`
	Type      string `json:"type" validate:"required"`
	Value     string `json:"value"`
	HasValue  bool   `json:"has_value"`
}

// SaveArticleContentCommand represents the command to persist the values a
// user filled into an article's editing skeleton
type SaveArticleContentCommand struct {
	ArticleID string       `json:"article_id" validate:"required"`
	Fields    []FieldValue `json:"fields"`
}

// Validate validates the SaveArticleContentCommand
func (c SaveArticleContentCommand) Validate() error {
	if c.ArticleID == "" {
		return errors.New("article ID is required")
	}
	for _, field := range c.Fields {
		if field.ElementID == "" {
			return errors.New("every field requires an element ID")
		}
	}
	return nil
}

// SaveArticleContentHandler handles the SaveArticleContentCommand
type SaveArticleContentHandler struct {
	articles *appservices.ArticleService
	logger   *zap.Logger
}

// NewSaveArticleContentHandler creates a new handler instance
func NewSaveArticleContentHandler(articles *appservices.ArticleService, logger *zap.Logger) *SaveArticleContentHandler {
	return &SaveArticleContentHandler{
		articles: articles,
		logger:   logger,
	}
}

// Handle executes the save article content command
func (h *SaveArticleContentHandler) Handle(ctx context.Context, cmd SaveArticleContentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	skeleton := make([]domainservices.EditableField, 0, len(cmd.Fields))
	for _, field := range cmd.Fields {
		elementType, err := valueobjects.ParseElementType(field.Type)
		if err != nil {
			return err
		}
		skeleton = append(skeleton, domainservices.EditableField{
			ElementID: field.ElementID,
			Type:      elementType,
			Value:     field.Value,
			HasValue:  field.HasValue,
		})
	}

	if err := h.articles.SaveContent(ctx, cmd.ArticleID, skeleton); err != nil {
		return err
	}

	h.logger.Info("Article content saved",
		zap.String("articleID", cmd.ArticleID),
		zap.Int("fields", len(cmd.Fields)),
	)

	return nil
}
