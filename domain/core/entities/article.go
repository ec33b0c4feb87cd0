package entities

import (
	"time"

	"github.com/google/uuid"

	"pressroom-backend/domain/core/valueobjects"
	"pressroom-backend/domain/events"
	"pressroom-backend/domain/workflow"
	pkgerrors "pressroom-backend/pkg/errors"
)

// Article is an authored document produced by filling a template's elements
// with real content. The engine only governs its content payload, template
// reference and workflow state; rendering and delivery belong to callers.
type Article struct {
	id         string
	templateID string
	authorID   string
	title      string
	content    valueobjects.ContentPayload
	state      valueobjects.ArticleState
	createdAt  time.Time
	updatedAt  time.Time
	version    int

	events []events.DomainEvent
}

// NewArticle creates a new draft article bound to a template
func NewArticle(templateID, authorID, title string) (*Article, error) {
	if templateID == "" {
		return nil, pkgerrors.NewValidationError("templateID cannot be empty")
	}
	if authorID == "" {
		return nil, pkgerrors.NewValidationError("authorID cannot be empty")
	}

	now := time.Now()
	article := &Article{
		id:         uuid.New().String(),
		templateID: templateID,
		authorID:   authorID,
		title:      title,
		content:    valueobjects.EmptyContentPayload(),
		state:      workflow.InitialState(),
		createdAt:  now,
		updatedAt:  now,
		version:    1,
		events:     []events.DomainEvent{},
	}

	article.addEvent(events.NewArticleCreated(article.id, templateID, authorID, now))

	return article, nil
}

// ReconstructArticle rebuilds an article from repository data with preserved
// timestamps. The persisted state code has already been parsed leniently by
// the repository, falling back to draft for unknown codes.
func ReconstructArticle(
	id, templateID, authorID, title string,
	content valueobjects.ContentPayload,
	state valueobjects.ArticleState,
	createdAt, updatedAt time.Time,
	version int,
) (*Article, error) {
	if id == "" {
		return nil, pkgerrors.NewValidationError("article id cannot be empty")
	}
	if templateID == "" {
		return nil, pkgerrors.NewValidationError("templateID cannot be empty")
	}
	if !state.IsValid() {
		state = valueobjects.StateDraft
	}

	return &Article{
		id:         id,
		templateID: templateID,
		authorID:   authorID,
		title:      title,
		content:    content,
		state:      state,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		version:    version,
		events:     []events.DomainEvent{},
	}, nil
}

// ID returns the article's unique identifier
func (a *Article) ID() string {
	return a.id
}

// TemplateID returns the id of the template this article was authored from
func (a *Article) TemplateID() string {
	return a.templateID
}

// AuthorID returns the author's id
func (a *Article) AuthorID() string {
	return a.authorID
}

// Title returns the article title
func (a *Article) Title() string {
	return a.title
}

// Content returns the article's serialized content payload
func (a *Article) Content() valueobjects.ContentPayload {
	return a.content
}

// State returns the article's current workflow state
func (a *Article) State() valueobjects.ArticleState {
	return a.state
}

// Version returns the article's version for optimistic locking
func (a *Article) Version() int {
	return a.version
}

// CreatedAt returns when the article was created
func (a *Article) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns when the article was last updated
func (a *Article) UpdatedAt() time.Time {
	return a.updatedAt
}

// Rename changes the article title
func (a *Article) Rename(title string) {
	a.title = title
	a.updatedAt = time.Now()
}

// SaveContent replaces the article's content payload. Content may only be
// written while the workflow allows editing.
func (a *Article) SaveContent(content valueobjects.ContentPayload) error {
	if !workflow.CanEdit(a.state) {
		return pkgerrors.ErrArticleNotEditable
	}

	a.content = content
	a.updatedAt = time.Now()
	a.version++

	a.addEvent(events.NewArticleContentSaved(a.id, a.templateID, content.Len(), a.updatedAt))

	return nil
}

// TransitionTo moves the article to a new workflow state after validating
// the transition against the state table.
func (a *Article) TransitionTo(to valueobjects.ArticleState) error {
	if err := workflow.ValidateTransition(a.state, to); err != nil {
		return err
	}

	if a.state == to {
		return nil // Idempotent save
	}

	from := a.state
	a.state = to
	a.updatedAt = time.Now()
	a.version++

	a.addEvent(events.NewArticleStateChanged(a.id, from, to, a.updatedAt))

	return nil
}

// Delete soft-deletes the article. Every state may transition to deleted.
func (a *Article) Delete() error {
	return a.TransitionTo(valueobjects.StateDeleted)
}

// Restore brings a soft-deleted article back to draft
func (a *Article) Restore() error {
	return a.TransitionTo(valueobjects.StateDraft)
}

// GetUncommittedEvents returns all uncommitted domain events
func (a *Article) GetUncommittedEvents() []events.DomainEvent {
	return a.events
}

// MarkEventsAsCommitted clears the uncommitted events
func (a *Article) MarkEventsAsCommitted() {
	a.events = []events.DomainEvent{}
}

// addEvent adds a domain event to the uncommitted list
func (a *Article) addEvent(event events.DomainEvent) {
	a.events = append(a.events, event)
}
