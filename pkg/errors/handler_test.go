package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func handleError(t *testing.T, err error, debug bool) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()
	handler := NewErrorHandler(zap.NewNop(), debug)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/articles/1", nil)

	handler.Handle(recorder, request, err)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return recorder, response
}

func TestErrorHandler_DomainSentinelStatusCodes(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"template not found", ErrTemplateNotFound, http.StatusNotFound, "TEMPLATE_NOT_FOUND"},
		{"article not found", ErrArticleNotFound, http.StatusNotFound, "ARTICLE_NOT_FOUND"},
		{"not editable", ErrArticleNotEditable, http.StatusUnprocessableEntity, "ARTICLE_NOT_EDITABLE"},
		{"concurrent modification", ErrConcurrentModification, http.StatusConflict, "CONCURRENT_MODIFICATION"},
		{"element limit", ErrElementLimitExceeded, http.StatusUnprocessableEntity, "ELEMENT_LIMIT_EXCEEDED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder, response := handleError(t, tc.err, false)

			assert.Equal(t, tc.status, recorder.Code)
			assert.True(t, response.Error)
			assert.Equal(t, tc.code, response.Code)
		})
	}
}

func TestErrorHandler_AppErrorStatusCodes(t *testing.T) {
	recorder, response := handleError(t, NewValidationError("name cannot be empty"), false)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, string(ErrorTypeValidation), response.Type)

	recorder, _ = handleError(t, NewInvalidTransitionError("draft", "published"), false)
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	recorder, _ = handleError(t, NewConflictError("transition already in progress"), false)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestErrorHandler_WrappedSentinelStillMaps(t *testing.T) {
	wrapped := NewDatabaseError("get_article", ErrArticleNotFound)

	// The DomainError branch wins even when buried in an AppError chain
	recorder, _ := handleError(t, wrapped, false)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestErrorHandler_GenericErrorHidesDetailsUnlessDebug(t *testing.T) {
	recorder, response := handleError(t, errors.New("sql: driver exploded"), false)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "An internal error occurred", response.Message)

	_, response = handleError(t, errors.New("sql: driver exploded"), true)
	assert.Equal(t, "sql: driver exploded", response.Message)
}

func TestErrorHandler_NilErrorWritesNothing(t *testing.T) {
	handler := NewErrorHandler(zap.NewNop(), false)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	handler.Handle(recorder, request, nil)

	assert.Empty(t, recorder.Body.Bytes())
}
