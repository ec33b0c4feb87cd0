package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pressroom-backend/domain/core/aggregates"
	"pressroom-backend/domain/core/entities"
	"pressroom-backend/domain/core/valueobjects"
	domainservices "pressroom-backend/domain/services"
	"pressroom-backend/domain/versioning"
	"pressroom-backend/infrastructure/messaging"
	"pressroom-backend/infrastructure/persistence/memory"
	pkgerrors "pressroom-backend/pkg/errors"
)

type articleFixture struct {
	templates *memory.TemplateStore
	articles  *memory.ArticleStore
	lock      *memory.LocalLock
	publisher *messaging.RecordingPublisher
	service   *ArticleService
	template  *aggregates.Template
}

func newArticleFixture(t *testing.T) *articleFixture {
	t.Helper()
	ctx := context.Background()
	logger := zap.NewNop()

	templates := memory.NewTemplateStore()
	articles := memory.NewArticleStore()
	lock := memory.NewLocalLock()
	publisher := messaging.NewRecordingPublisher()
	mapper := domainservices.NewContentMapper()

	service := NewArticleService(articles, templates, mapper, publisher, lock, logger)

	template, err := aggregates.NewTemplate("owner-1", "Story Layout")
	require.NoError(t, err)

	header, err := entities.NewElement(valueobjects.ElementTypeHeader, 0, 0, 1080, 120)
	require.NoError(t, err)
	header.SetProperty(entities.PropText, "Default headline")

	body, err := entities.NewElement(valueobjects.ElementTypeText, 0, 150, 1080, 600)
	require.NoError(t, err)
	body.SetZIndex(1)

	divider, err := entities.NewElement(valueobjects.ElementTypeDivider, 0, 140, 1080, 4)
	require.NoError(t, err)
	divider.SetZIndex(2)

	for _, el := range []*entities.Element{header, body, divider} {
		require.NoError(t, template.AddElement(el))
	}
	require.NoError(t, templates.Save(ctx, template))

	return &articleFixture{
		templates: templates,
		articles:  articles,
		lock:      lock,
		publisher: publisher,
		service:   service,
		template:  template,
	}
}

func TestArticleService_CreateFromTemplate(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)

	article, err := f.service.CreateFromTemplate(ctx, f.template.ID().String(), "author-1", "My Story")
	require.NoError(t, err)

	assert.Equal(t, valueobjects.StateDraft, article.State())
	assert.Equal(t, f.template.ID().String(), article.TemplateID())
	assert.Equal(t, 2, article.Content().Len(), "divider carries no payload entry")

	require.NotNil(t, article.Content().Elements[0].Content)
	assert.Equal(t, "Default headline", *article.Content().Elements[0].Content)

	assert.NotEmpty(t, f.publisher.Events())
}

func TestArticleService_CreateFromTemplate_UnknownTemplate(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)

	_, err := f.service.CreateFromTemplate(ctx, "no-such-template", "author-1", "Story")
	assert.ErrorIs(t, err, pkgerrors.ErrTemplateNotFound)
}

func TestArticleService_EditingSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)

	article, err := f.service.CreateFromTemplate(ctx, f.template.ID().String(), "author-1", "Story")
	require.NoError(t, err)

	_, skeleton, err := f.service.EditingSession(ctx, article.ID())
	require.NoError(t, err)
	require.Len(t, skeleton, 3)

	skeleton[0].Value = "Rewritten headline"
	skeleton[1].Value = "Full body text"
	require.NoError(t, f.service.SaveContent(ctx, article.ID(), skeleton))

	_, reloaded, err := f.service.EditingSession(ctx, article.ID())
	require.NoError(t, err)
	assert.Equal(t, "Rewritten headline", reloaded[0].Value)
	assert.Equal(t, "Full body text", reloaded[1].Value)
	assert.False(t, reloaded[2].Editable())
}

func TestArticleService_EditingSession_TemplateGrewAfterSave(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)

	article, err := f.service.CreateFromTemplate(ctx, f.template.ID().String(), "author-1", "Story")
	require.NoError(t, err)

	// Template gains a quote element after the article stored its content
	quote, err := entities.NewElement(valueobjects.ElementTypeQuote, 0, 760, 1080, 100)
	require.NoError(t, err)
	quote.SetZIndex(10)
	require.NoError(t, f.template.AddElement(quote))
	require.NoError(t, f.templates.Save(ctx, f.template))

	_, skeleton, err := f.service.EditingSession(ctx, article.ID())
	require.NoError(t, err)
	require.Len(t, skeleton, 4, "skeleton follows the current template")
	assert.Equal(t, "Default headline", skeleton[0].Value)
	assert.Equal(t, "", skeleton[3].Value, "new field starts from the template default")
}

func TestArticleService_SaveContent_BlockedOutsideEditableStates(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)

	article, err := f.service.CreateFromTemplate(ctx, f.template.ID().String(), "author-1", "Story")
	require.NoError(t, err)

	_, err = f.service.Transition(ctx, article.ID(), valueobjects.StateSaved)
	require.NoError(t, err)
	_, err = f.service.Transition(ctx, article.ID(), valueobjects.StatePendingReview)
	require.NoError(t, err)

	_, skeleton, err := f.service.EditingSession(ctx, article.ID())
	require.NoError(t, err)

	err = f.service.SaveContent(ctx, article.ID(), skeleton)
	assert.ErrorIs(t, err, pkgerrors.ErrArticleNotEditable)
}

func TestArticleService_Transition_InvalidMoveLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)

	article, err := f.service.CreateFromTemplate(ctx, f.template.ID().String(), "author-1", "Story")
	require.NoError(t, err)

	_, err = f.service.Transition(ctx, article.ID(), valueobjects.StatePublished)
	assert.Error(t, err)

	stored, err := f.service.Get(ctx, article.ID())
	require.NoError(t, err)
	assert.Equal(t, valueobjects.StateDraft, stored.State())
}

func TestArticleService_Transition_ConflictsWhileLockHeld(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)

	article, err := f.service.CreateFromTemplate(ctx, f.template.ID().String(), "author-1", "Story")
	require.NoError(t, err)

	handle, err := f.lock.Acquire(ctx, "article#"+article.ID(), "other-caller", transitionLockTTL)
	require.NoError(t, err)
	defer handle.Release(ctx)

	_, err = f.service.Transition(ctx, article.ID(), valueobjects.StateSaved)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in progress")
}

func TestArticleService_Transition_ReleasesLock(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)

	article, err := f.service.CreateFromTemplate(ctx, f.template.ID().String(), "author-1", "Story")
	require.NoError(t, err)

	_, err = f.service.Transition(ctx, article.ID(), valueobjects.StateSaved)
	require.NoError(t, err)

	// A second transition must succeed: the lock was released
	_, err = f.service.Transition(ctx, article.ID(), valueobjects.StatePendingReview)
	require.NoError(t, err)
}

func TestArticleService_ValidNextStates(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)

	article, err := f.service.CreateFromTemplate(ctx, f.template.ID().String(), "author-1", "Story")
	require.NoError(t, err)

	next, err := f.service.ValidNextStates(ctx, article.ID())
	require.NoError(t, err)
	assert.ElementsMatch(t, []valueobjects.ArticleState{
		valueobjects.StateSaved,
		valueobjects.StateDeleted,
	}, next)
}

func TestArticleService_ListByAuthor(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)

	_, err := f.service.CreateFromTemplate(ctx, f.template.ID().String(), "author-1", "First")
	require.NoError(t, err)
	_, err = f.service.CreateFromTemplate(ctx, f.template.ID().String(), "author-1", "Second")
	require.NoError(t, err)
	_, err = f.service.CreateFromTemplate(ctx, f.template.ID().String(), "author-2", "Other")
	require.NoError(t, err)

	mine, err := f.service.ListByAuthor(ctx, "author-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestTemplateService_SaveAndVersioning(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	templates := memory.NewTemplateStore()
	publisher := messaging.NewRecordingPublisher()
	versioningService := versioning.NewVersioningService(5)
	service := NewTemplateService(templates, versioningService, publisher, logger)

	template, err := aggregates.NewTemplate("owner-1", "Layout")
	require.NoError(t, err)

	require.NoError(t, service.Save(ctx, template, "owner-1", "initial"))
	assert.NotEmpty(t, publisher.Events())
	assert.Empty(t, template.GetUncommittedEvents())

	stored, err := service.Get(ctx, template.ID())
	require.NoError(t, err)
	assert.Equal(t, template.Name(), stored.Name())

	require.NoError(t, service.Delete(ctx, template.ID()))
	_, err = service.Get(ctx, template.ID())
	assert.ErrorIs(t, err, pkgerrors.ErrTemplateNotFound)
}
