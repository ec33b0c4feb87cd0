package services

import (
	"context"

	"go.uber.org/zap"

	"pressroom-backend/application/ports"
	"pressroom-backend/domain/core/aggregates"
	"pressroom-backend/domain/versioning"
)

// TemplateService persists templates and handles the cross-cutting work a
// template write implies: version snapshotting and domain event publishing.
// Command handlers delegate their save step here so the behavior stays
// uniform across create, element mutation and canvas changes.
type TemplateService struct {
	templateRepo ports.TemplateRepository
	versioning   *versioning.VersioningService
	publisher    ports.EventPublisher
	logger       *zap.Logger
}

// NewTemplateService creates a new template service
func NewTemplateService(
	templateRepo ports.TemplateRepository,
	versioningService *versioning.VersioningService,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
		versioning:   versioningService,
		publisher:    publisher,
		logger:       logger,
	}
}

// Get retrieves a template by id
func (s *TemplateService) Get(ctx context.Context, id aggregates.TemplateID) (*aggregates.Template, error) {
	return s.templateRepo.GetByID(ctx, id)
}

// ListByOwner retrieves all templates for an owner
func (s *TemplateService) ListByOwner(ctx context.Context, ownerID string) ([]*aggregates.Template, error) {
	return s.templateRepo.GetByOwnerID(ctx, ownerID)
}

// Save persists the template, records a version snapshot and publishes the
// aggregate's uncommitted events. Event publishing is best-effort: a failed
// publish is logged but does not roll back the save.
func (s *TemplateService) Save(ctx context.Context, template *aggregates.Template, actorID, description string) error {
	if err := s.templateRepo.Save(ctx, template); err != nil {
		return err
	}

	version, err := s.versioning.CreateVersion(template, actorID, description)
	if err != nil {
		s.logger.Warn("Failed to snapshot template version",
			zap.String("templateID", template.ID().String()),
			zap.Error(err),
		)
	} else {
		s.logger.Debug("Template version recorded",
			zap.String("templateID", version.TemplateID),
			zap.Int("version", version.Version),
			zap.String("checksum", version.Checksum),
		)
	}

	pending := template.GetUncommittedEvents()
	if len(pending) > 0 {
		if err := s.publisher.Publish(ctx, pending); err != nil {
			s.logger.Warn("Failed to publish template events",
				zap.String("templateID", template.ID().String()),
				zap.Int("events", len(pending)),
				zap.Error(err),
			)
		}
		template.MarkEventsAsCommitted()
	}

	return nil
}

// Delete removes a template
func (s *TemplateService) Delete(ctx context.Context, id aggregates.TemplateID) error {
	return s.templateRepo.Delete(ctx, id)
}
