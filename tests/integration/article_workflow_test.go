package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pressroom-backend/application/commands"
	"pressroom-backend/application/queries"
	queryhandlers "pressroom-backend/application/queries/handlers"
	"pressroom-backend/application/services"
	domainconfig "pressroom-backend/domain/config"
	"pressroom-backend/domain/core/validators"
	"pressroom-backend/domain/core/valueobjects"
	domainservices "pressroom-backend/domain/services"
	"pressroom-backend/domain/versioning"
	"pressroom-backend/infrastructure/imagehost"
	"pressroom-backend/infrastructure/messaging"
	"pressroom-backend/infrastructure/persistence/memory"
)

// testEnv wires the full application stack against in-memory infrastructure
type testEnv struct {
	createTemplate *commands.CreateTemplateHandler
	addElement     *commands.AddElementHandler
	attachImage    *commands.AttachImageHandler
	createArticle  *commands.CreateArticleHandler
	saveContent    *commands.SaveArticleContentHandler
	transition     *commands.TransitionArticleHandler

	getArticle    *queryhandlers.GetArticleHandler
	buildSkeleton *queryhandlers.BuildSkeletonHandler
	getTemplate   *queryhandlers.GetTemplateHandler

	publisher *messaging.RecordingPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop()

	templates := memory.NewTemplateStore()
	articles := memory.NewArticleStore()
	lock := memory.NewLocalLock()
	publisher := messaging.NewRecordingPublisher()
	mapper := domainservices.NewContentMapper()
	validator := validators.NewTemplateValidatorWithConfig(domainconfig.DefaultDomainConfig())
	host := imagehost.NewLocalHost("http://localhost:8080")

	templateService := services.NewTemplateService(templates, versioning.NewVersioningService(20), publisher, logger)
	articleService := services.NewArticleService(articles, templates, mapper, publisher, lock, logger)

	return &testEnv{
		createTemplate: commands.NewCreateTemplateHandler(templateService, validator, logger),
		addElement:     commands.NewAddElementHandler(templateService, validator, logger),
		attachImage:    commands.NewAttachImageHandler(templateService, host, logger),
		createArticle:  commands.NewCreateArticleHandler(articleService, logger),
		saveContent:    commands.NewSaveArticleContentHandler(articleService, logger),
		transition:     commands.NewTransitionArticleHandler(articleService, logger),
		getArticle:     queryhandlers.NewGetArticleHandler(articleService, logger),
		buildSkeleton:  queryhandlers.NewBuildSkeletonHandler(articleService, logger),
		getTemplate:    queryhandlers.NewGetTemplateHandler(templateService, logger),
		publisher:      publisher,
	}
}

func (e *testEnv) buildStoryTemplate(t *testing.T, ctx context.Context) (templateID, headerID, bodyID, imageID string) {
	t.Helper()

	template, err := e.createTemplate.Handle(ctx, commands.CreateTemplateCommand{
		OwnerID: "designer-1",
		Name:    "Evening Edition",
	})
	require.NoError(t, err)
	templateID = template.ID().String()

	header, err := e.addElement.Handle(ctx, commands.AddElementCommand{
		TemplateID: templateID,
		ActorID:    "designer-1",
		Type:       "header",
		Width:      1080,
		Height:     120,
		Properties: map[string]interface{}{"text": "Evening Edition"},
	})
	require.NoError(t, err)
	headerID = header.ID().String()

	_, err = e.addElement.Handle(ctx, commands.AddElementCommand{
		TemplateID: templateID,
		ActorID:    "designer-1",
		Type:       "divider",
		Y:          130,
		Width:      1080,
		Height:     4,
		ZIndex:     1,
	})
	require.NoError(t, err)

	body, err := e.addElement.Handle(ctx, commands.AddElementCommand{
		TemplateID: templateID,
		ActorID:    "designer-1",
		Type:       "text",
		Y:          150,
		Width:      1080,
		Height:     600,
		ZIndex:     2,
	})
	require.NoError(t, err)
	bodyID = body.ID().String()

	image, err := e.addElement.Handle(ctx, commands.AddElementCommand{
		TemplateID: templateID,
		ActorID:    "designer-1",
		Type:       "image",
		Y:          800,
		Width:      1080,
		Height:     400,
		ZIndex:     3,
	})
	require.NoError(t, err)
	imageID = image.ID().String()

	return templateID, headerID, bodyID, imageID
}

func TestAuthoringLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	templateID, headerID, bodyID, imageID := env.buildStoryTemplate(t, ctx)

	// Designer attaches a stock photo to the image slot
	hosted, err := env.attachImage.Handle(ctx, commands.AttachImageCommand{
		TemplateID: templateID,
		ElementID:  imageID,
		ActorID:    "designer-1",
		Filename:   "skyline.jpg",
		Data:       []byte("jpeg-bytes"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, hosted.URL)
	assert.NotEmpty(t, hosted.ThumbnailURL)

	// Author starts an article from the template
	article, err := env.createArticle.Handle(ctx, commands.CreateArticleCommand{
		TemplateID: templateID,
		AuthorID:   "author-1",
		Title:      "City at Dusk",
	})
	require.NoError(t, err)
	assert.Equal(t, valueobjects.StateDraft, article.State())

	// The editing skeleton mirrors the template, divider included but locked
	skeleton, err := env.buildSkeleton.Handle(ctx, queries.BuildSkeletonQuery{ArticleID: article.ID()})
	require.NoError(t, err)
	require.Len(t, skeleton.Fields, 4)
	assert.Equal(t, headerID, skeleton.Fields[0].ElementID)
	assert.Equal(t, "Evening Edition", skeleton.Fields[0].Value)
	assert.False(t, skeleton.Fields[1].Editable)
	assert.Equal(t, hosted.URL, skeleton.Fields[3].Value, "template-attached image flows into new articles")

	// Author fills in the story
	err = env.saveContent.Handle(ctx, commands.SaveArticleContentCommand{
		ArticleID: article.ID(),
		Fields: []commands.FieldValue{
			{ElementID: headerID, Type: "header", Value: "City at Dusk", HasValue: true},
			{ElementID: bodyID, Type: "text", Value: "The skyline glowed.", HasValue: true},
			{ElementID: imageID, Type: "image", Value: hosted.URL, HasValue: true},
		},
	})
	require.NoError(t, err)

	// Read model reflects saved content and workflow capabilities
	result, err := env.getArticle.Handle(ctx, queries.GetArticleQuery{ArticleID: article.ID()})
	require.NoError(t, err)
	assert.Equal(t, "draft", result.State)
	assert.True(t, result.CanEdit)
	assert.False(t, result.CanPublish)
	require.Len(t, result.Content.Elements, 3, "divider never reaches the stored payload")
	require.NotNil(t, result.Content.Elements[0].Content)
	assert.Equal(t, "City at Dusk", *result.Content.Elements[0].Content)

	// Walk the workflow to published
	for _, target := range []string{"saved", "pending_review", "published"} {
		_, err := env.transition.Handle(ctx, commands.TransitionArticleCommand{
			ArticleID:   article.ID(),
			TargetState: target,
		})
		require.NoError(t, err, "transition to %s", target)
	}

	result, err = env.getArticle.Handle(ctx, queries.GetArticleQuery{ArticleID: article.ID()})
	require.NoError(t, err)
	assert.Equal(t, "published", result.State)
	assert.False(t, result.CanEdit)
	assert.ElementsMatch(t, []string{"archived", "deleted"}, result.ValidNextStates)

	assert.NotEmpty(t, env.publisher.Events())
}

func TestAuthoringLifecycle_ReviewRejection(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	templateID, _, bodyID, _ := env.buildStoryTemplate(t, ctx)

	article, err := env.createArticle.Handle(ctx, commands.CreateArticleCommand{
		TemplateID: templateID,
		AuthorID:   "author-1",
		Title:      "Rejected Draft",
	})
	require.NoError(t, err)

	for _, target := range []string{"saved", "pending_review"} {
		_, err := env.transition.Handle(ctx, commands.TransitionArticleCommand{
			ArticleID:   article.ID(),
			TargetState: target,
		})
		require.NoError(t, err)
	}

	// Reviewer sends it back for edits
	rejected, err := env.transition.Handle(ctx, commands.TransitionArticleCommand{
		ArticleID:   article.ID(),
		TargetState: "saved",
	})
	require.NoError(t, err)
	assert.Equal(t, valueobjects.StateSaved, rejected.State())

	// Author can edit again after the bounce
	err = env.saveContent.Handle(ctx, commands.SaveArticleContentCommand{
		ArticleID: article.ID(),
		Fields: []commands.FieldValue{
			{ElementID: bodyID, Type: "text", Value: "Revised body.", HasValue: true},
		},
	})
	require.NoError(t, err)
}

func TestAuthoringLifecycle_DeleteAndRestore(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	templateID, _, _, _ := env.buildStoryTemplate(t, ctx)

	article, err := env.createArticle.Handle(ctx, commands.CreateArticleCommand{
		TemplateID: templateID,
		AuthorID:   "author-1",
		Title:      "Disposable",
	})
	require.NoError(t, err)

	deleted, err := env.transition.Handle(ctx, commands.TransitionArticleCommand{
		ArticleID:   article.ID(),
		TargetState: "deleted",
	})
	require.NoError(t, err)
	assert.Equal(t, valueobjects.StateDeleted, deleted.State())

	// Only restore is possible from deleted
	_, err = env.transition.Handle(ctx, commands.TransitionArticleCommand{
		ArticleID:   article.ID(),
		TargetState: "published",
	})
	require.Error(t, err)

	restored, err := env.transition.Handle(ctx, commands.TransitionArticleCommand{
		ArticleID:   article.ID(),
		TargetState: "draft",
	})
	require.NoError(t, err)
	assert.Equal(t, valueobjects.StateDraft, restored.State())
}

func TestAuthoringLifecycle_UnknownTransitionTargetRejected(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	templateID, _, _, _ := env.buildStoryTemplate(t, ctx)

	article, err := env.createArticle.Handle(ctx, commands.CreateArticleCommand{
		TemplateID: templateID,
		AuthorID:   "author-1",
		Title:      "Strict Targets",
	})
	require.NoError(t, err)

	_, err = env.transition.Handle(ctx, commands.TransitionArticleCommand{
		ArticleID:   article.ID(),
		TargetState: "limbo",
	})
	assert.Error(t, err, "explicit transitions never coerce unknown states")
}

func TestTemplateRead_ElementsSortedForPresentation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	templateID, headerID, _, _ := env.buildStoryTemplate(t, ctx)

	result, err := env.getTemplate.Handle(ctx, queries.GetTemplateQuery{TemplateID: templateID})
	require.NoError(t, err)

	require.Len(t, result.Elements, 4)
	assert.Equal(t, headerID, result.Elements[0].ID, "lowest zIndex renders first")
	assert.Equal(t, 1080, result.CanvasWidth)
	assert.Equal(t, 1920, result.CanvasHeight)
	assert.Equal(t, "#FFFFFF", result.BackgroundColor)
}
