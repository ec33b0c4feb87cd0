package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"pressroom-backend/application/services"
	"pressroom-backend/domain/core/entities"
	"pressroom-backend/domain/core/valueobjects"
)

// TransitionArticleCommand represents the command to move an article to a
// new workflow state. The target state code is the lowercase serialization
// form; unknown codes are rejected here rather than falling back to draft,
// since a transition request is explicit caller intent.
type TransitionArticleCommand struct {
	ArticleID   string `json:"article_id" validate:"required"`
	TargetState string `json:"target_state" validate:"required,oneof=draft saved pending_review published archived deleted"`
}

// Validate validates the TransitionArticleCommand
func (c TransitionArticleCommand) Validate() error {
	if c.ArticleID == "" {
		return errors.New("article ID is required")
	}
	if !valueobjects.ArticleState(c.TargetState).IsValid() {
		return errors.New("unknown target state: " + c.TargetState)
	}
	return nil
}

// TransitionArticleHandler handles the TransitionArticleCommand
type TransitionArticleHandler struct {
	articles *services.ArticleService
	logger   *zap.Logger
}

// NewTransitionArticleHandler creates a new handler instance
func NewTransitionArticleHandler(articles *services.ArticleService, logger *zap.Logger) *TransitionArticleHandler {
	return &TransitionArticleHandler{
		articles: articles,
		logger:   logger,
	}
}

// Handle executes the transition command. Validation and commit happen in
// one service call so the checked from-state cannot go stale in between.
func (h *TransitionArticleHandler) Handle(ctx context.Context, cmd TransitionArticleCommand) (*entities.Article, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.articles.Transition(ctx, cmd.ArticleID, valueobjects.ArticleState(cmd.TargetState))
}
