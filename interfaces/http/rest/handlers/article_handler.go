package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"pressroom-backend/application/commands"
	"pressroom-backend/application/commands/bus"
	"pressroom-backend/application/queries"
	querybus "pressroom-backend/application/queries/bus"
	"pressroom-backend/domain/core/entities"
	"pressroom-backend/domain/core/valueobjects"
	"pressroom-backend/domain/workflow"
	"pressroom-backend/pkg/common"
	pkgerrors "pressroom-backend/pkg/errors"
	"pressroom-backend/pkg/utils"
)

// ArticleHandler handles article-related HTTP requests
type ArticleHandler struct {
	createArticle *commands.CreateArticleHandler
	transition    *commands.TransitionArticleHandler
	commandBus    *bus.CommandBus
	queryBus      *querybus.QueryBus
	errors        *pkgerrors.ErrorHandler
	logger        *zap.Logger
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(
	createArticle *commands.CreateArticleHandler,
	transition *commands.TransitionArticleHandler,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *ArticleHandler {
	return &ArticleHandler{
		createArticle: createArticle,
		transition:    transition,
		commandBus:    commandBus,
		queryBus:      queryBus,
		errors:        errorHandler,
		logger:        logger,
	}
}

// CreateArticleRequest represents the request body for starting an article
type CreateArticleRequest struct {
	TemplateID string `json:"templateId" validate:"required"`
	Title      string `json:"title" validate:"max=200"`
}

// SaveContentRequest represents the request body for saving article content
type SaveContentRequest struct {
	Fields []FieldValueRequest `json:"fields" validate:"required,dive"`
}

// FieldValueRequest is one filled-in field of the editing skeleton
type FieldValueRequest struct {
	ElementID string `json:"elementId" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=text image header divider quote"`
	Value     string `json:"value"`
	HasValue  bool   `json:"hasValue"`
}

// TransitionRequest represents the request body for a workflow transition
type TransitionRequest struct {
	TargetState string `json:"targetState" validate:"required,oneof=draft saved pending_review published archived deleted"`
}

// TransitionResponse reports the state change and what is allowed next
type TransitionResponse struct {
	ID              string   `json:"id"`
	State           string   `json:"state"`
	ValidNextStates []string `json:"validNextStates"`
	Version         int      `json:"version"`
	UpdatedAt       string   `json:"updatedAt"`
}

// CreateArticle handles POST /articles
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	authorID, ok := common.GetUserID(r.Context())
	if !ok {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Missing X-User-ID header")
		return
	}

	var req CreateArticleRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBody); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	article, err := h.createArticle.Handle(r.Context(), commands.CreateArticleCommand{
		TemplateID: req.TemplateID,
		AuthorID:   authorID,
		Title:      req.Title,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, transitionResponse(article))
}

// GetArticle handles GET /articles/{articleID}
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "articleID")

	result, err := h.queryBus.Ask(r.Context(), queries.GetArticleQuery{ArticleID: articleID})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ListArticles handles GET /articles
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	authorID, ok := common.GetUserID(r.Context())
	if !ok {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Missing X-User-ID header")
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListArticlesQuery{AuthorID: authorID})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// GetSkeleton handles GET /articles/{articleID}/skeleton
func (h *ArticleHandler) GetSkeleton(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "articleID")

	result, err := h.queryBus.Ask(r.Context(), queries.BuildSkeletonQuery{ArticleID: articleID})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// SaveContent handles PUT /articles/{articleID}/content
func (h *ArticleHandler) SaveContent(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "articleID")

	var req SaveContentRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBody); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	fields := make([]commands.FieldValue, 0, len(req.Fields))
	for _, f := range req.Fields {
		fields = append(fields, commands.FieldValue{
			ElementID: f.ElementID,
			Type:      f.Type,
			Value:     f.Value,
			HasValue:  f.HasValue,
		})
	}

	err := h.commandBus.Send(r.Context(), commands.SaveArticleContentCommand{
		ArticleID: articleID,
		Fields:    fields,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "Content saved"})
}

// Transition handles POST /articles/{articleID}/transitions
func (h *ArticleHandler) Transition(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "articleID")

	var req TransitionRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBody); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	article, err := h.transition.Handle(r.Context(), commands.TransitionArticleCommand{
		ArticleID:   articleID,
		TargetState: req.TargetState,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, transitionResponse(article))
}

// DeleteArticle handles DELETE /articles/{articleID}. Deletion is the
// workflow's soft delete, reachable from every state.
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "articleID")

	article, err := h.transition.Handle(r.Context(), commands.TransitionArticleCommand{
		ArticleID:   articleID,
		TargetState: valueobjects.StateDeleted.String(),
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, transitionResponse(article))
}

// RestoreArticle handles POST /articles/{articleID}/restore
func (h *ArticleHandler) RestoreArticle(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "articleID")

	article, err := h.transition.Handle(r.Context(), commands.TransitionArticleCommand{
		ArticleID:   articleID,
		TargetState: valueobjects.StateDraft.String(),
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, transitionResponse(article))
}

func transitionResponse(article *entities.Article) TransitionResponse {
	state := article.State()

	nextStates := workflow.ValidNextStates(state)
	next := make([]string, 0, len(nextStates))
	for _, s := range nextStates {
		next = append(next, s.String())
	}

	return TransitionResponse{
		ID:              article.ID(),
		State:           state.String(),
		ValidNextStates: next,
		Version:         article.Version(),
		UpdatedAt:       utils.FormatRFC3339(article.UpdatedAt()),
	}
}
