package handlers

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"pressroom-backend/application/queries"
	"pressroom-backend/application/services"
	"pressroom-backend/domain/core/aggregates"
)

// GetTemplateHandler handles single template lookups
type GetTemplateHandler struct {
	templateService *services.TemplateService
	logger          *zap.Logger
}

// NewGetTemplateHandler creates a new template lookup handler
func NewGetTemplateHandler(templateService *services.TemplateService, logger *zap.Logger) *GetTemplateHandler {
	return &GetTemplateHandler{
		templateService: templateService,
		logger:          logger,
	}
}

// Handle executes the template lookup
func (h *GetTemplateHandler) Handle(ctx context.Context, query queries.GetTemplateQuery) (*queries.GetTemplateResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	template, err := h.templateService.Get(ctx, aggregates.TemplateID(query.TemplateID))
	if err != nil {
		return nil, err
	}

	return templateToResult(template), nil
}

// ListTemplatesHandler handles owner template listings
type ListTemplatesHandler struct {
	templateService *services.TemplateService
	logger          *zap.Logger
}

// NewListTemplatesHandler creates a new template listing handler
func NewListTemplatesHandler(templateService *services.TemplateService, logger *zap.Logger) *ListTemplatesHandler {
	return &ListTemplatesHandler{
		templateService: templateService,
		logger:          logger,
	}
}

// Handle executes the listing query
func (h *ListTemplatesHandler) Handle(ctx context.Context, query queries.ListTemplatesQuery) (*queries.ListTemplatesResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	templates, err := h.templateService.ListByOwner(ctx, query.OwnerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]queries.TemplateSummary, 0, len(templates))
	for _, t := range templates {
		summaries = append(summaries, queries.TemplateSummary{
			ID:           string(t.ID()),
			Name:         t.Name(),
			ElementCount: t.ElementCount(),
			Version:      t.Version(),
			UpdatedAt:    t.UpdatedAt().Format(time.RFC3339),
		})
	}

	return &queries.ListTemplatesResult{
		Templates: summaries,
		Total:     len(summaries),
	}, nil
}

func templateToResult(template *aggregates.Template) *queries.GetTemplateResult {
	canvas := template.Canvas()

	elements := make([]queries.ElementResult, 0, template.ElementCount())
	for _, element := range template.Elements() {
		elements = append(elements, queries.ElementResult{
			ID:         element.ID().String(),
			Type:       element.Type().String(),
			X:          element.X(),
			Y:          element.Y(),
			Width:      element.Width(),
			Height:     element.Height(),
			ZIndex:     element.ZIndex(),
			Properties: element.Properties(),
		})
	}

	return &queries.GetTemplateResult{
		ID:              string(template.ID()),
		OwnerID:         template.OwnerID(),
		Name:            template.Name(),
		CanvasWidth:     canvas.Width(),
		CanvasHeight:    canvas.Height(),
		BackgroundColor: canvas.BackgroundColor(),
		Elements:        elements,
		Version:         template.Version(),
		CreatedAt:       template.CreatedAt().Format(time.RFC3339),
		UpdatedAt:       template.UpdatedAt().Format(time.RFC3339),
	}
}
