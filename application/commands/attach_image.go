package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"pressroom-backend/application/ports"
	"pressroom-backend/application/services"
	"pressroom-backend/domain/core/aggregates"
	"pressroom-backend/domain/core/entities"
	"pressroom-backend/domain/core/valueobjects"
	pkgerrors "pressroom-backend/pkg/errors"
)

// AttachImageCommand represents the command to host a user-picked image and
// bind its stable URLs to an image element
type AttachImageCommand struct {
	TemplateID string `json:"template_id" validate:"required"`
	ElementID  string `json:"element_id" validate:"required"`
	ActorID    string `json:"actor_id" validate:"required"`
	Filename   string `json:"filename" validate:"required"`
	Data       []byte `json:"data" validate:"required"`
}

// Validate validates the AttachImageCommand
func (c AttachImageCommand) Validate() error {
	if c.TemplateID == "" {
		return errors.New("template ID is required")
	}
	if c.ElementID == "" {
		return errors.New("element ID is required")
	}
	if len(c.Data) == 0 {
		return errors.New("image data is required")
	}
	return nil
}

// AttachImageHandler handles the AttachImageCommand
type AttachImageHandler struct {
	templates *services.TemplateService
	imageHost ports.ImageHost
	logger    *zap.Logger
}

// NewAttachImageHandler creates a new handler instance
func NewAttachImageHandler(
	templates *services.TemplateService,
	imageHost ports.ImageHost,
	logger *zap.Logger,
) *AttachImageHandler {
	return &AttachImageHandler{
		templates: templates,
		imageHost: imageHost,
		logger:    logger,
	}
}

// Handle uploads the image through the hosting collaborator and writes the
// returned URLs into the element's properties
func (h *AttachImageHandler) Handle(ctx context.Context, cmd AttachImageCommand) (*ports.HostedImage, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	elementID, err := valueobjects.NewElementIDFromString(cmd.ElementID)
	if err != nil {
		return nil, err
	}

	template, err := h.templates.Get(ctx, aggregates.TemplateID(cmd.TemplateID))
	if err != nil {
		return nil, err
	}

	element, err := template.FindElement(elementID)
	if err != nil {
		return nil, err
	}
	if !element.Type().IsImage() {
		return nil, pkgerrors.NewValidationError("element does not accept images")
	}

	hosted, err := h.imageHost.Upload(ctx, cmd.Filename, cmd.Data)
	if err != nil {
		return nil, pkgerrors.NewExternalError("image-host", err)
	}

	replacement := element.Clone()
	replacement.SetProperty(entities.PropURL, hosted.URL)
	replacement.SetProperty(entities.PropImageURI, hosted.URL)
	replacement.SetProperty(entities.PropThumbnailURI, hosted.ThumbnailURL)

	if err := template.UpdateElement(elementID, replacement); err != nil {
		return nil, err
	}

	if err := h.templates.Save(ctx, template, cmd.ActorID, "image attached"); err != nil {
		return nil, err
	}

	h.logger.Info("Image attached to element",
		zap.String("templateID", cmd.TemplateID),
		zap.String("elementID", cmd.ElementID),
		zap.String("url", hosted.URL),
	)

	return hosted, nil
}
