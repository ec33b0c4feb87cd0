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

// SetCanvasCommand represents the command to change a template's canvas
// properties. Zero values fall back to the canvas defaults.
type SetCanvasCommand struct {
	TemplateID      string `json:"template_id" validate:"required"`
	ActorID         string `json:"actor_id" validate:"required"`
	CanvasWidth     int    `json:"canvas_width" validate:"omitempty,min=1"`
	CanvasHeight    int    `json:"canvas_height" validate:"omitempty,min=1"`
	BackgroundColor string `json:"background_color" validate:"omitempty,hexcolor"`
}

// Validate validates the SetCanvasCommand
func (c SetCanvasCommand) Validate() error {
	if c.TemplateID == "" {
		return errors.New("template ID is required")
	}
	return nil
}

// SetCanvasHandler handles the SetCanvasCommand
type SetCanvasHandler struct {
	templates *services.TemplateService
	validator *validators.TemplateValidator
	logger    *zap.Logger
}

// NewSetCanvasHandler creates a new handler instance
func NewSetCanvasHandler(
	templates *services.TemplateService,
	validator *validators.TemplateValidator,
	logger *zap.Logger,
) *SetCanvasHandler {
	return &SetCanvasHandler{
		templates: templates,
		validator: validator,
		logger:    logger,
	}
}

// Handle executes the set canvas command
func (h *SetCanvasHandler) Handle(ctx context.Context, cmd SetCanvasCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.validator.ValidateBackgroundColor(cmd.BackgroundColor); err != nil {
		return err
	}

	canvas, err := valueobjects.NewCanvasProperties(cmd.CanvasWidth, cmd.CanvasHeight, cmd.BackgroundColor)
	if err != nil {
		return err
	}

	template, err := h.templates.Get(ctx, aggregates.TemplateID(cmd.TemplateID))
	if err != nil {
		return err
	}

	template.SetCanvas(canvas)

	if err := h.templates.Save(ctx, template, cmd.ActorID, "canvas changed"); err != nil {
		return err
	}

	h.logger.Info("Canvas properties changed",
		zap.String("templateID", cmd.TemplateID),
		zap.Int("width", canvas.Width()),
		zap.Int("height", canvas.Height()),
		zap.String("background", canvas.BackgroundColor()),
	)

	return nil
}
