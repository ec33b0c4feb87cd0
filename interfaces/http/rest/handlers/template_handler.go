package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"pressroom-backend/application/commands"
	"pressroom-backend/application/commands/bus"
	"pressroom-backend/application/queries"
	querybus "pressroom-backend/application/queries/bus"
	"pressroom-backend/application/services"
	"pressroom-backend/domain/core/aggregates"
	"pressroom-backend/pkg/common"
	pkgerrors "pressroom-backend/pkg/errors"
	"pressroom-backend/pkg/utils"
)

// maxRequestBody caps request bodies; image uploads carry base64 payloads
const maxRequestBody = 10 << 20

// TemplateHandler handles template-related HTTP requests
type TemplateHandler struct {
	createTemplate  *commands.CreateTemplateHandler
	addElement      *commands.AddElementHandler
	attachImage     *commands.AttachImageHandler
	commandBus      *bus.CommandBus
	queryBus        *querybus.QueryBus
	templateService *services.TemplateService
	cache           querybus.Cache
	errors          *pkgerrors.ErrorHandler
	logger          *zap.Logger
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(
	createTemplate *commands.CreateTemplateHandler,
	addElement *commands.AddElementHandler,
	attachImage *commands.AttachImageHandler,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	templateService *services.TemplateService,
	cache querybus.Cache,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *TemplateHandler {
	return &TemplateHandler{
		createTemplate:  createTemplate,
		addElement:      addElement,
		attachImage:     attachImage,
		commandBus:      commandBus,
		queryBus:        queryBus,
		templateService: templateService,
		cache:           cache,
		errors:          errorHandler,
		logger:          logger,
	}
}

// CreateTemplateRequest represents the request body for creating a template
type CreateTemplateRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=200"`
	CanvasWidth     int    `json:"canvasWidth" validate:"omitempty,min=1"`
	CanvasHeight    int    `json:"canvasHeight" validate:"omitempty,min=1"`
	BackgroundColor string `json:"backgroundColor" validate:"omitempty,hexcolor"`
}

// AddElementRequest represents the request body for placing an element
type AddElementRequest struct {
	Type       string                 `json:"type" validate:"required,oneof=text image header divider quote"`
	X          int                    `json:"x"`
	Y          int                    `json:"y"`
	Width      int                    `json:"width" validate:"min=0"`
	Height     int                    `json:"height" validate:"min=0"`
	ZIndex     int                    `json:"zIndex"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// UpdateElementRequest represents the request body for updating an element
type UpdateElementRequest struct {
	X          *int                   `json:"x,omitempty"`
	Y          *int                   `json:"y,omitempty"`
	Width      *int                   `json:"width,omitempty" validate:"omitempty,min=0"`
	Height     *int                   `json:"height,omitempty" validate:"omitempty,min=0"`
	ZIndex     *int                   `json:"zIndex,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// SetCanvasRequest represents the request body for changing the canvas
type SetCanvasRequest struct {
	CanvasWidth     int    `json:"canvasWidth" validate:"omitempty,min=1"`
	CanvasHeight    int    `json:"canvasHeight" validate:"omitempty,min=1"`
	BackgroundColor string `json:"backgroundColor" validate:"omitempty,hexcolor"`
}

// AttachImageRequest represents the request body for attaching an image
type AttachImageRequest struct {
	Filename string `json:"filename" validate:"required"`
	Data     []byte `json:"data" validate:"required"`
}

// CreateTemplate handles POST /templates
func (h *TemplateHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.GetUserID(r.Context())
	if !ok {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Missing X-User-ID header")
		return
	}

	var req CreateTemplateRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBody); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	template, err := h.createTemplate.Handle(r.Context(), commands.CreateTemplateCommand{
		OwnerID:         userID,
		Name:            req.Name,
		CanvasWidth:     req.CanvasWidth,
		CanvasHeight:    req.CanvasHeight,
		BackgroundColor: req.BackgroundColor,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.invalidateTemplate(r, template.ID().String())
	common.RespondJSON(w, http.StatusCreated, templateResponse(template))
}

// GetTemplate handles GET /templates/{templateID}
func (h *TemplateHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateID")

	result, err := h.queryBus.Ask(r.Context(), queries.GetTemplateQuery{TemplateID: templateID})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ListTemplates handles GET /templates
func (h *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := common.GetUserID(r.Context())
	if !ok {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Missing X-User-ID header")
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListTemplatesQuery{OwnerID: ownerID})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// DeleteTemplate handles DELETE /templates/{templateID}
func (h *TemplateHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateID")

	if err := h.templateService.Delete(r.Context(), aggregates.TemplateID(templateID)); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.invalidateTemplate(r, templateID)
	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "Template deleted"})
}

// AddElement handles POST /templates/{templateID}/elements
func (h *TemplateHandler) AddElement(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateID")
	userID, _ := common.GetUserID(r.Context())

	var req AddElementRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBody); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	element, err := h.addElement.Handle(r.Context(), commands.AddElementCommand{
		TemplateID: templateID,
		ActorID:    userID,
		Type:       req.Type,
		X:          req.X,
		Y:          req.Y,
		Width:      req.Width,
		Height:     req.Height,
		ZIndex:     req.ZIndex,
		Properties: req.Properties,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.invalidateTemplate(r, templateID)
	common.RespondJSON(w, http.StatusCreated, queries.ElementResult{
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

// UpdateElement handles PATCH /templates/{templateID}/elements/{elementID}
func (h *TemplateHandler) UpdateElement(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateID")
	elementID := chi.URLParam(r, "elementID")
	userID, _ := common.GetUserID(r.Context())

	var req UpdateElementRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBody); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	err := h.commandBus.Send(r.Context(), commands.UpdateElementCommand{
		TemplateID: templateID,
		ElementID:  elementID,
		ActorID:    userID,
		X:          req.X,
		Y:          req.Y,
		Width:      req.Width,
		Height:     req.Height,
		ZIndex:     req.ZIndex,
		Properties: req.Properties,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.invalidateTemplate(r, templateID)
	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "Element updated"})
}

// RemoveElement handles DELETE /templates/{templateID}/elements/{elementID}
func (h *TemplateHandler) RemoveElement(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateID")
	elementID := chi.URLParam(r, "elementID")
	userID, _ := common.GetUserID(r.Context())

	err := h.commandBus.Send(r.Context(), commands.RemoveElementCommand{
		TemplateID: templateID,
		ElementID:  elementID,
		ActorID:    userID,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.invalidateTemplate(r, templateID)
	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "Element removed"})
}

// SetCanvas handles PUT /templates/{templateID}/canvas
func (h *TemplateHandler) SetCanvas(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateID")
	userID, _ := common.GetUserID(r.Context())

	var req SetCanvasRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBody); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	err := h.commandBus.Send(r.Context(), commands.SetCanvasCommand{
		TemplateID:      templateID,
		ActorID:         userID,
		CanvasWidth:     req.CanvasWidth,
		CanvasHeight:    req.CanvasHeight,
		BackgroundColor: req.BackgroundColor,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.invalidateTemplate(r, templateID)
	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "Canvas updated"})
}

// AttachImage handles POST /templates/{templateID}/elements/{elementID}/image
func (h *TemplateHandler) AttachImage(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateID")
	elementID := chi.URLParam(r, "elementID")
	userID, _ := common.GetUserID(r.Context())

	var req AttachImageRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBody); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	hosted, err := h.attachImage.Handle(r.Context(), commands.AttachImageCommand{
		TemplateID: templateID,
		ElementID:  elementID,
		ActorID:    userID,
		Filename:   req.Filename,
		Data:       req.Data,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.invalidateTemplate(r, templateID)
	common.RespondJSON(w, http.StatusOK, map[string]string{
		"url":          hosted.URL,
		"thumbnailUrl": hosted.ThumbnailURL,
	})
}

// invalidateTemplate drops cached query results touching the template
func (h *TemplateHandler) invalidateTemplate(r *http.Request, templateID string) {
	h.cache.Invalidate(r.Context(), "queries.GetTemplateQuery:{TemplateID:"+templateID)
	h.cache.Invalidate(r.Context(), "queries.ListTemplatesQuery:")
}

func templateResponse(template *aggregates.Template) queries.GetTemplateResult {
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

	return queries.GetTemplateResult{
		ID:              string(template.ID()),
		OwnerID:         template.OwnerID(),
		Name:            template.Name(),
		CanvasWidth:     canvas.Width(),
		CanvasHeight:    canvas.Height(),
		BackgroundColor: canvas.BackgroundColor(),
		Elements:        elements,
		Version:         template.Version(),
		CreatedAt:       utils.FormatRFC3339(template.CreatedAt()),
		UpdatedAt:       utils.FormatRFC3339(template.UpdatedAt()),
	}
}
