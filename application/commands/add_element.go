package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"pressroom-backend/application/services"
	"pressroom-backend/domain/core/aggregates"
	"pressroom-backend/domain/core/entities"
	"pressroom-backend/domain/core/validators"
	"pressroom-backend/domain/core/valueobjects"
)

// AddElementCommand represents the command to place a new element on a template
type AddElementCommand struct {
	TemplateID string                 `json:"template_id" validate:"required"`
	ActorID    string                 `json:"actor_id" validate:"required"`
	Type       string                 `json:"type" validate:"required,oneof=text image header divider quote"`
	X          int                    `json:"x"`
	Y          int                    `json:"y"`
	Width      int                    `json:"width" validate:"min=0"`
	Height     int                    `json:"height" validate:"min=0"`
	ZIndex     int                    `json:"z_index"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// Validate validates the AddElementCommand
func (c AddElementCommand) Validate() error {
	if c.TemplateID == "" {
		return errors.New("template ID is required")
	}
	if c.Type == "" {
		return errors.New("element type is required")
	}
	return nil
}

// AddElementHandler handles the AddElementCommand
type AddElementHandler struct {
	templates *services.TemplateService
	validator *validators.TemplateValidator
	logger    *zap.Logger
}

// NewAddElementHandler creates a new handler instance
func NewAddElementHandler(
	templates *services.TemplateService,
	validator *validators.TemplateValidator,
	logger *zap.Logger,
) *AddElementHandler {
	return &AddElementHandler{
		templates: templates,
		validator: validator,
		logger:    logger,
	}
}

// Handle executes the add element command and returns the new element
func (h *AddElementHandler) Handle(ctx context.Context, cmd AddElementCommand) (*entities.Element, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	elementType, err := valueobjects.ParseElementType(cmd.Type)
	if err != nil {
		return nil, err
	}

	template, err := h.templates.Get(ctx, aggregates.TemplateID(cmd.TemplateID))
	if err != nil {
		return nil, err
	}

	element, err := entities.NewElement(elementType, cmd.X, cmd.Y, cmd.Width, cmd.Height)
	if err != nil {
		return nil, err
	}
	element.SetZIndex(cmd.ZIndex)
	for key, value := range cmd.Properties {
		element.SetProperty(key, value)
	}

	if err := h.validator.ValidateElement(element); err != nil {
		return nil, err
	}

	if err := template.AddElement(element); err != nil {
		return nil, err
	}

	if err := h.templates.Save(ctx, template, cmd.ActorID, "element added"); err != nil {
		return nil, err
	}

	h.logger.Info("Element added to template",
		zap.String("templateID", cmd.TemplateID),
		zap.String("elementID", element.ID().String()),
		zap.String("type", cmd.Type),
		zap.Int("zIndex", cmd.ZIndex),
	)

	return element, nil
}
