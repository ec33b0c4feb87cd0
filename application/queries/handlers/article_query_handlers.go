package handlers

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"pressroom-backend/application/queries"
	"pressroom-backend/application/services"
	"pressroom-backend/domain/core/entities"
	"pressroom-backend/domain/workflow"
)

// GetArticleHandler handles single article lookups
type GetArticleHandler struct {
	articleService *services.ArticleService
	logger         *zap.Logger
}

// NewGetArticleHandler creates a new article lookup handler
func NewGetArticleHandler(articleService *services.ArticleService, logger *zap.Logger) *GetArticleHandler {
	return &GetArticleHandler{
		articleService: articleService,
		logger:         logger,
	}
}

// Handle executes the article lookup
func (h *GetArticleHandler) Handle(ctx context.Context, query queries.GetArticleQuery) (*queries.GetArticleResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	article, err := h.articleService.Get(ctx, query.ArticleID)
	if err != nil {
		return nil, err
	}

	return articleToResult(article), nil
}

// ListArticlesHandler handles author article listings
type ListArticlesHandler struct {
	articleService *services.ArticleService
	logger         *zap.Logger
}

// NewListArticlesHandler creates a new article listing handler
func NewListArticlesHandler(articleService *services.ArticleService, logger *zap.Logger) *ListArticlesHandler {
	return &ListArticlesHandler{
		articleService: articleService,
		logger:         logger,
	}
}

// Handle executes the listing query
func (h *ListArticlesHandler) Handle(ctx context.Context, query queries.ListArticlesQuery) (*queries.ListArticlesResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	articles, err := h.articleService.ListByAuthor(ctx, query.AuthorID)
	if err != nil {
		return nil, err
	}

	summaries := make([]queries.ArticleSummary, 0, len(articles))
	for _, a := range articles {
		summaries = append(summaries, queries.ArticleSummary{
			ID:         a.ID(),
			TemplateID: a.TemplateID(),
			Title:      a.Title(),
			State:      a.State().String(),
			UpdatedAt:  a.UpdatedAt().Format(time.RFC3339),
		})
	}

	return &queries.ListArticlesResult{Articles: summaries}, nil
}

// BuildSkeletonHandler assembles the editing session for an article
type BuildSkeletonHandler struct {
	articleService *services.ArticleService
	logger         *zap.Logger
}

// NewBuildSkeletonHandler creates a new skeleton handler
func NewBuildSkeletonHandler(articleService *services.ArticleService, logger *zap.Logger) *BuildSkeletonHandler {
	return &BuildSkeletonHandler{
		articleService: articleService,
		logger:         logger,
	}
}

// Handle builds the populated skeleton for an article
func (h *BuildSkeletonHandler) Handle(ctx context.Context, query queries.BuildSkeletonQuery) (*queries.BuildSkeletonResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	article, fields, err := h.articleService.EditingSession(ctx, query.ArticleID)
	if err != nil {
		return nil, err
	}

	results := make([]queries.EditableFieldResult, 0, len(fields))
	for _, field := range fields {
		results = append(results, queries.EditableFieldResult{
			ElementID: field.ElementID,
			Type:      field.Type.String(),
			Value:     field.Value,
			HasValue:  field.HasValue,
			Editable:  field.Editable(),
		})
	}

	return &queries.BuildSkeletonResult{
		ArticleID:  article.ID(),
		TemplateID: article.TemplateID(),
		State:      article.State().String(),
		Fields:     results,
	}, nil
}

func articleToResult(article *entities.Article) *queries.GetArticleResult {
	state := article.State()

	nextStates := workflow.ValidNextStates(state)
	next := make([]string, 0, len(nextStates))
	for _, s := range nextStates {
		next = append(next, s.String())
	}

	content := article.Content()
	entries := make([]queries.ArticleContentEntry, 0, content.Len())
	for _, entry := range content.Elements {
		entries = append(entries, queries.ArticleContentEntry{
			ID:      entry.ID,
			Type:    entry.Type,
			Content: entry.Content,
			URL:     entry.URL,
		})
	}

	return &queries.GetArticleResult{
		ID:                 article.ID(),
		TemplateID:         article.TemplateID(),
		AuthorID:           article.AuthorID(),
		Title:              article.Title(),
		State:              state.String(),
		Content:            queries.ArticleContentResult{Elements: entries},
		ValidNextStates:    next,
		CanEdit:            workflow.CanEdit(state),
		CanPublish:         workflow.CanPublish(state),
		CanSubmitForReview: workflow.CanSubmitForReview(state),
		Version:            article.Version(),
		CreatedAt:          article.CreatedAt().Format(time.RFC3339),
		UpdatedAt:          article.UpdatedAt().Format(time.RFC3339),
	}
}
