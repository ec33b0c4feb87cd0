package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"pressroom-backend/application/services"
	"pressroom-backend/domain/core/aggregates"
	"pressroom-backend/domain/core/validators"
	"pressroom-backend/domain/core/valueobjects"
)

// CreateTemplateCommand represents the command to create a new empty template
type CreateTemplateCommand struct {
	OwnerID         string `json:"owner_id" validate:"required"`
	Name            string `json:"name" validate:"required,min=1,max=200"`
	CanvasWidth     int    `json:"canvas_width" validate:"omitempty,min=1"`
	CanvasHeight    int    `json:"canvas_height" validate:"omitempty,min=1"`
	BackgroundColor string `json:"background_color" validate:"omitempty,hexcolor"`
}

// Validate validates the CreateTemplateCommand
func (c CreateTemplateCommand) Validate() error {
	if c.OwnerID == "" {
		return errors.New("owner ID is required")
	}
	if c.Name == "" {
		return errors.New("template name is required")
	}
	return nil
}

// CreateTemplateHandler handles the CreateTemplateCommand
type CreateTemplateHandler struct {
	templates *services.TemplateService
	validator *validators.TemplateValidator
	logger    *zap.Logger
}

// NewCreateTemplateHandler creates a new handler instance
func NewCreateTemplateHandler(
	templates *services.TemplateService,
	validator *validators.TemplateValidator,
	logger *zap.Logger,
) *CreateTemplateHandler {
	return &CreateTemplateHandler{
		templates: templates,
		validator: validator,
		logger:    logger,
	}
}

// Handle executes the create template command
func (h *CreateTemplateHandler) Handle(ctx context.Context, cmd CreateTemplateCommand) (*aggregates.Template, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.validator.ValidateName(cmd.Name); err != nil {
		return nil, err
	}
	if err := h.validator.ValidateBackgroundColor(cmd.BackgroundColor); err != nil {
		return nil, err
	}

	template, err := aggregates.NewTemplate(cmd.OwnerID, cmd.Name)
	if err != nil {
		return nil, err
	}

	// Canvas defaults apply when the command leaves dimensions unset
	if cmd.CanvasWidth != 0 || cmd.CanvasHeight != 0 || cmd.BackgroundColor != "" {
		canvas, err := valueobjects.NewCanvasProperties(cmd.CanvasWidth, cmd.CanvasHeight, cmd.BackgroundColor)
		if err != nil {
			return nil, err
		}
		template.SetCanvas(canvas)
	}

	if err := h.templates.Save(ctx, template, cmd.OwnerID, "template created"); err != nil {
		return nil, err
	}

	h.logger.Info("Template created",
		zap.String("templateID", template.ID().String()),
		zap.String("ownerID", cmd.OwnerID),
	)

	return template, nil
}
