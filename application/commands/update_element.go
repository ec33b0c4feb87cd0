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

// UpdateElementCommand represents the command to modify an existing element.
// Nil fields keep the element's current value; Properties, when set,
// replaces the whole bag.
type UpdateElementCommand struct {
	TemplateID string                 `json:"template_id" validate:"required"`
	ElementID  string                 `json:"element_id" validate:"required"`
	ActorID    string                 `json:"actor_id" validate:"required"`
	X          *int                   `json:"x,omitempty"`
	Y          *int                   `json:"y,omitempty"`
	Width      *int                   `json:"width,omitempty" validate:"omitempty,min=0"`
	Height     *int                   `json:"height,omitempty" validate:"omitempty,min=0"`
	ZIndex     *int                   `json:"z_index,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// Validate validates the UpdateElementCommand
func (c UpdateElementCommand) Validate() error {
	if c.TemplateID == "" {
		return errors.New("template ID is required")
	}
	if c.ElementID == "" {
		return errors.New("element ID is required")
	}
	return nil
}

// UpdateElementHandler handles the UpdateElementCommand
type UpdateElementHandler struct {
	templates *services.TemplateService
	validator *validators.TemplateValidator
	logger    *zap.Logger
}

// NewUpdateElementHandler creates a new handler instance
func NewUpdateElementHandler(
	templates *services.TemplateService,
	validator *validators.TemplateValidator,
	logger *zap.Logger,
) *UpdateElementHandler {
	return &UpdateElementHandler{
		templates: templates,
		validator: validator,
		logger:    logger,
	}
}

// Handle executes the update element command
func (h *UpdateElementHandler) Handle(ctx context.Context, cmd UpdateElementCommand) error {
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

	current, err := template.FindElement(elementID)
	if err != nil {
		return err
	}

	replacement := current.Clone()
	if cmd.X != nil || cmd.Y != nil {
		x, y := replacement.X(), replacement.Y()
		if cmd.X != nil {
			x = *cmd.X
		}
		if cmd.Y != nil {
			y = *cmd.Y
		}
		replacement.MoveTo(x, y)
	}
	if cmd.Width != nil || cmd.Height != nil {
		width, height := replacement.Width(), replacement.Height()
		if cmd.Width != nil {
			width = *cmd.Width
		}
		if cmd.Height != nil {
			height = *cmd.Height
		}
		if err := replacement.Resize(width, height); err != nil {
			return err
		}
	}
	if cmd.ZIndex != nil {
		replacement.SetZIndex(*cmd.ZIndex)
	}
	if cmd.Properties != nil {
		rebuilt, err := entities.ReconstructElement(
			replacement.ID(),
			replacement.Type(),
			replacement.X(), replacement.Y(),
			replacement.Width(), replacement.Height(),
			replacement.ZIndex(),
			cmd.Properties,
		)
		if err != nil {
			return err
		}
		replacement = rebuilt
	}

	if err := h.validator.ValidateElement(replacement); err != nil {
		return err
	}

	if err := template.UpdateElement(elementID, replacement); err != nil {
		return err
	}

	if err := h.templates.Save(ctx, template, cmd.ActorID, "element updated"); err != nil {
		return err
	}

	h.logger.Info("Element updated",
		zap.String("templateID", cmd.TemplateID),
		zap.String("elementID", cmd.ElementID),
	)

	return nil
}
