package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"pressroom-backend/application/services"
	"pressroom-backend/domain/core/aggregates"
	"pressroom-backend/domain/core/valueobjects"
)

// RemoveElementCommand represents the command to remove an element from a template
type RemoveElementCommand struct {
	TemplateID string `json:"template_id" validate:"required"`
	ElementID  string `json:"element_id" validate:"required"`
	ActorID    string `json:"actor_id" validate:"required"`
}

// Validate validates the RemoveElementCommand
func (c RemoveElementCommand) Validate() error {
	if c.TemplateID == "" {
		return errors.New("template ID is required")
	}
	if c.ElementID == "" {
		return errors.New("element ID is required")
	}
	return nil
}

// RemoveElementHandler handles the RemoveElementCommand
type RemoveElementHandler struct {
	templates *services.TemplateService
	logger    *zap.Logger
}

// NewRemoveElementHandler creates a new handler instance
func NewRemoveElementHandler(templates *services.TemplateService, logger *zap.Logger) *RemoveElementHandler {
	return &RemoveElementHandler{
		templates: templates,
		logger:    logger,
	}
}

// Handle executes the remove element command
func (h *RemoveElementHandler) Handle(ctx context.Context, cmd RemoveElementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	elementID, err := valueobjects.NewElementIDFromString(cmd.ElementID)
	if err != nil {
		return err
	}

	template, err := h.templates.Get(ctx, aggregates.TemplateID(cmd.TemplateID))
	if err != nil {
		return err
	}

	if err := template.RemoveElement(elementID); err != nil {
		return err
	}

	if err := h.templates.Save(ctx, template, cmd.ActorID, "element removed"); err != nil {
		return err
	}

	h.logger.Info("Element removed",
		zap.String("templateID", cmd.TemplateID),
		zap.String("elementID", cmd.ElementID),
	)

	return nil
}
