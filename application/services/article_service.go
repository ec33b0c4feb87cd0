package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"pressroom-backend/application/ports"
	"pressroom-backend/domain/core/aggregates"
	"pressroom-backend/domain/core/entities"
	"pressroom-backend/domain/core/valueobjects"
	domainservices "pressroom-backend/domain/services"
	"pressroom-backend/domain/workflow"
	pkgerrors "pressroom-backend/pkg/errors"
)

// transitionLockTTL bounds how long a crashed transition can leave an
// article locked
const transitionLockTTL = 10 * time.Second

// ArticleService coordinates articles with their templates: creating the
// editable skeleton, saving filled-in content, and moving articles through
// the workflow. State transitions are validated and then committed within
// one call so callers cannot persist a transition validated against a
// stale state.
type ArticleService struct {
	articleRepo  ports.ArticleRepository
	templateRepo ports.TemplateRepository
	mapper       domainservices.Mapper
	publisher    ports.EventPublisher
	lock         ports.ResourceLock
	logger       *zap.Logger
}

// NewArticleService creates a new article service
func NewArticleService(
	articleRepo ports.ArticleRepository,
	templateRepo ports.TemplateRepository,
	mapper domainservices.Mapper,
	publisher ports.EventPublisher,
	lock ports.ResourceLock,
	logger *zap.Logger,
) *ArticleService {
	return &ArticleService{
		articleRepo:  articleRepo,
		templateRepo: templateRepo,
		mapper:       mapper,
		publisher:    publisher,
		lock:         lock,
		logger:       logger,
	}
}

// Get retrieves an article by id
func (s *ArticleService) Get(ctx context.Context, id string) (*entities.Article, error) {
	return s.articleRepo.GetByID(ctx, id)
}

// ListByAuthor retrieves all articles for an author
func (s *ArticleService) ListByAuthor(ctx context.Context, authorID string) ([]*entities.Article, error) {
	return s.articleRepo.GetByAuthorID(ctx, authorID)
}

// CreateFromTemplate creates a new draft article whose initial content is
// the template's own serialized skeleton, so an untouched article
// round-trips the template's authored values exactly.
func (s *ArticleService) CreateFromTemplate(ctx context.Context, templateID, authorID, title string) (*entities.Article, error) {
	template, err := s.templateRepo.GetByID(ctx, aggregates.TemplateID(templateID))
	if err != nil {
		return nil, err
	}

	article, err := entities.NewArticle(template.ID().String(), authorID, title)
	if err != nil {
		return nil, err
	}

	skeleton := s.mapper.BuildEditableSkeleton(template)
	if err := article.SaveContent(s.mapper.SerializeSkeletonToContent(skeleton)); err != nil {
		return nil, err
	}

	if err := s.saveAndPublish(ctx, article); err != nil {
		return nil, err
	}

	s.logger.Info("Article created from template",
		zap.String("articleID", article.ID()),
		zap.String("templateID", templateID),
		zap.String("authorID", authorID),
	)

	return article, nil
}

// EditingSession loads the article's template, rebuilds the skeleton and
// overlays the article's stored content onto it. Missing or corrupt stored
// content degrades to template defaults; it never fails the load.
func (s *ArticleService) EditingSession(ctx context.Context, articleID string) (*entities.Article, []domainservices.EditableField, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, nil, err
	}

	template, err := s.templateRepo.GetByID(ctx, aggregates.TemplateID(article.TemplateID()))
	if err != nil {
		return nil, nil, err
	}

	skeleton := s.mapper.BuildEditableSkeleton(template)
	populated := s.mapper.PopulateSkeletonFromContent(skeleton, article.Content())

	return article, populated, nil
}

// SaveContent serializes the filled-in skeleton and stores it as the
// article's content payload
func (s *ArticleService) SaveContent(ctx context.Context, articleID string, skeleton []domainservices.EditableField) error {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return err
	}

	payload := s.mapper.SerializeSkeletonToContent(skeleton)
	if err := article.SaveContent(payload); err != nil {
		return err
	}

	return s.saveAndPublish(ctx, article)
}

// Transition validates and commits a workflow state change in one step.
// The article is locked for the duration so concurrent transitions cannot
// both validate against the same pre-transition state.
func (s *ArticleService) Transition(ctx context.Context, articleID string, to valueobjects.ArticleState) (*entities.Article, error) {
	handle, err := s.lock.Acquire(ctx, "article#"+articleID, "transition", transitionLockTTL)
	if err != nil {
		return nil, pkgerrors.NewConflictError("article transition already in progress")
	}
	defer func() {
		if err := handle.Release(ctx); err != nil {
			s.logger.Warn("Failed to release transition lock",
				zap.String("articleID", articleID),
				zap.Error(err),
			)
		}
	}()

	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	from := article.State()
	if err := article.TransitionTo(to); err != nil {
		return nil, err
	}

	if err := s.saveAndPublish(ctx, article); err != nil {
		return nil, err
	}

	s.logger.Info("Article state changed",
		zap.String("articleID", articleID),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
	)

	return article, nil
}

// ValidNextStates returns the legal next states for the article's current state
func (s *ArticleService) ValidNextStates(ctx context.Context, articleID string) ([]valueobjects.ArticleState, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	return workflow.ValidNextStates(article.State()), nil
}

// saveAndPublish persists the article and publishes its pending events.
// Publishing is best-effort; a failed publish is logged, not returned.
func (s *ArticleService) saveAndPublish(ctx context.Context, article *entities.Article) error {
	if err := s.articleRepo.Save(ctx, article); err != nil {
		return err
	}

	pending := article.GetUncommittedEvents()
	if len(pending) > 0 {
		if err := s.publisher.Publish(ctx, pending); err != nil {
			s.logger.Warn("Failed to publish article events",
				zap.String("articleID", article.ID()),
				zap.Int("events", len(pending)),
				zap.Error(err),
			)
		}
		article.MarkEventsAsCommitted()
	}

	return nil
}
