package ports

import (
	"context"

	"pressroom-backend/domain/core/aggregates"
	"pressroom-backend/domain/core/entities"
	"pressroom-backend/domain/events"
)

// TemplateRepository defines the interface for template persistence
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type TemplateRepository interface {
	// Save persists a template (create or update)
	Save(ctx context.Context, template *aggregates.Template) error

	// GetByID retrieves a template by its ID
	GetByID(ctx context.Context, id aggregates.TemplateID) (*aggregates.Template, error)

	// GetByOwnerID retrieves all templates for an owner
	GetByOwnerID(ctx context.Context, ownerID string) ([]*aggregates.Template, error)

	// Delete removes a template
	Delete(ctx context.Context, id aggregates.TemplateID) error
}

// ArticleRepository defines the interface for article persistence
type ArticleRepository interface {
	// Save persists an article (create or update)
	Save(ctx context.Context, article *entities.Article) error

	// GetByID retrieves an article by its ID
	GetByID(ctx context.Context, id string) (*entities.Article, error)

	// GetByAuthorID retrieves all articles for an author
	GetByAuthorID(ctx context.Context, authorID string) ([]*entities.Article, error)

	// GetByTemplateID retrieves all articles authored from a template
	GetByTemplateID(ctx context.Context, templateID string) ([]*entities.Article, error)

	// Delete removes an article record entirely. The workflow soft-delete is
	// a state change saved through Save; this is for administrative purges.
	Delete(ctx context.Context, id string) error
}

// EventPublisher defines the interface for publishing domain events to
// the outside world after an aggregate is persisted
type EventPublisher interface {
	// Publish sends domain events to interested consumers
	Publish(ctx context.Context, events []events.DomainEvent) error
}

// HostedImage is the result of handing a user-picked image to the image
// hosting collaborator: a stable URL plus a thumbnail variant
type HostedImage struct {
	URL          string
	ThumbnailURL string
}

// ImageHost defines the interface for the image hosting collaborator.
// The engine never performs network or file I/O itself; it hands raw image
// bytes to this port and records the returned URLs in element properties.
type ImageHost interface {
	// Upload stores an image and returns its stable URLs
	Upload(ctx context.Context, filename string, data []byte) (*HostedImage, error)
}
