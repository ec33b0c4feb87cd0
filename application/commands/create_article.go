package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"pressroom-backend/application/services"
	"pressroom-backend/domain/core/entities"
)

// CreateArticleCommand represents the command to start a new article from a template
type CreateArticleCommand struct {
	TemplateID string `json:"template_id" validate:"required"`
	AuthorID   string `json:"author_id" validate:"required"`
	Title      string `json:"title" validate:"max=200"`
}

// Validate validates the CreateArticleCommand
func (c CreateArticleCommand) Validate() error {
	if c.TemplateID == "" {
		return errors.New("template ID is required")
	}
	if c.AuthorID == "" {
		return errors.New("author ID is required")
	}
	return nil
}

// CreateArticleHandler handles the CreateArticleCommand
type CreateArticleHandler struct {
	articles *services.ArticleService
	logger   *zap.Logger
}

// NewCreateArticleHandler creates a new handler instance
func NewCreateArticleHandler(articles *services.ArticleService, logger *zap.Logger) *CreateArticleHandler {
	return &CreateArticleHandler{
		articles: articles,
		logger:   logger,
	}
}

// Handle executes the create article command
func (h *CreateArticleHandler) Handle(ctx context.Context, cmd CreateArticleCommand) (*entities.Article, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.articles.CreateFromTemplate(ctx, cmd.TemplateID, cmd.AuthorID, cmd.Title)
}
