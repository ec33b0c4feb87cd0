package events

import (
	"time"

	"pressroom-backend/domain/core/valueobjects"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// Template Events

// TemplateCreated is raised when a new template is created
type TemplateCreated struct {
	BaseEvent
	TemplateID string `json:"template_id"`
	OwnerID    string `json:"owner_id"`
	Name       string `json:"name"`
}

// NewTemplateCreated creates a TemplateCreated event
func NewTemplateCreated(templateID, ownerID, name string, timestamp time.Time) TemplateCreated {
	return TemplateCreated{
		BaseEvent: BaseEvent{
			AggregateID: templateID,
			EventType:   "template.created",
			Timestamp:   timestamp,
			Version:     1,
		},
		TemplateID: templateID,
		OwnerID:    ownerID,
		Name:       name,
	}
}

// ElementAdded is raised when an element is added to a template
type ElementAdded struct {
	BaseEvent
	TemplateID  string                   `json:"template_id"`
	ElementID   valueobjects.ElementID   `json:"element_id"`
	ElementType valueobjects.ElementType `json:"element_type"`
	ZIndex      int                      `json:"z_index"`
}

// NewElementAdded creates an ElementAdded event
func NewElementAdded(templateID string, elementID valueobjects.ElementID, elementType valueobjects.ElementType, zIndex int, timestamp time.Time) ElementAdded {
	return ElementAdded{
		BaseEvent: BaseEvent{
			AggregateID: templateID,
			EventType:   "template.element_added",
			Timestamp:   timestamp,
			Version:     1,
		},
		TemplateID:  templateID,
		ElementID:   elementID,
		ElementType: elementType,
		ZIndex:      zIndex,
	}
}

// ElementUpdated is raised when a template element is replaced
type ElementUpdated struct {
	BaseEvent
	TemplateID string                 `json:"template_id"`
	ElementID  valueobjects.ElementID `json:"element_id"`
}

// NewElementUpdated creates an ElementUpdated event
func NewElementUpdated(templateID string, elementID valueobjects.ElementID, timestamp time.Time) ElementUpdated {
	return ElementUpdated{
		BaseEvent: BaseEvent{
			AggregateID: templateID,
			EventType:   "template.element_updated",
			Timestamp:   timestamp,
			Version:     1,
		},
		TemplateID: templateID,
		ElementID:  elementID,
	}
}

// ElementRemoved is raised when a template element is removed
type ElementRemoved struct {
	BaseEvent
	TemplateID string                 `json:"template_id"`
	ElementID  valueobjects.ElementID `json:"element_id"`
}

// NewElementRemoved creates an ElementRemoved event
func NewElementRemoved(templateID string, elementID valueobjects.ElementID, timestamp time.Time) ElementRemoved {
	return ElementRemoved{
		BaseEvent: BaseEvent{
			AggregateID: templateID,
			EventType:   "template.element_removed",
			Timestamp:   timestamp,
			Version:     1,
		},
		TemplateID: templateID,
		ElementID:  elementID,
	}
}

// CanvasChanged is raised when a template's canvas properties change
type CanvasChanged struct {
	BaseEvent
	TemplateID string `json:"template_id"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Background string `json:"background"`
}

// NewCanvasChanged creates a CanvasChanged event
func NewCanvasChanged(templateID string, canvas valueobjects.CanvasProperties, timestamp time.Time) CanvasChanged {
	return CanvasChanged{
		BaseEvent: BaseEvent{
			AggregateID: templateID,
			EventType:   "template.canvas_changed",
			Timestamp:   timestamp,
			Version:     1,
		},
		TemplateID: templateID,
		Width:      canvas.Width(),
		Height:     canvas.Height(),
		Background: canvas.BackgroundColor(),
	}
}

// Article Events

// ArticleCreated is raised when a new article is created from a template
type ArticleCreated struct {
	BaseEvent
	ArticleID  string `json:"article_id"`
	TemplateID string `json:"template_id"`
	AuthorID   string `json:"author_id"`
}

// NewArticleCreated creates an ArticleCreated event
func NewArticleCreated(articleID, templateID, authorID string, timestamp time.Time) ArticleCreated {
	return ArticleCreated{
		BaseEvent: BaseEvent{
			AggregateID: articleID,
			EventType:   "article.created",
			Timestamp:   timestamp,
			Version:     1,
		},
		ArticleID:  articleID,
		TemplateID: templateID,
		AuthorID:   authorID,
	}
}

// ArticleStateChanged is raised when an article moves through the workflow
type ArticleStateChanged struct {
	BaseEvent
	ArticleID string                    `json:"article_id"`
	FromState valueobjects.ArticleState `json:"from_state"`
	ToState   valueobjects.ArticleState `json:"to_state"`
}

// NewArticleStateChanged creates an ArticleStateChanged event
func NewArticleStateChanged(articleID string, from, to valueobjects.ArticleState, timestamp time.Time) ArticleStateChanged {
	return ArticleStateChanged{
		BaseEvent: BaseEvent{
			AggregateID: articleID,
			EventType:   "article.state_changed",
			Timestamp:   timestamp,
			Version:     1,
		},
		ArticleID: articleID,
		FromState: from,
		ToState:   to,
	}
}

// ArticleContentSaved is raised when an article's content payload is rewritten
type ArticleContentSaved struct {
	BaseEvent
	ArticleID    string `json:"article_id"`
	TemplateID   string `json:"template_id"`
	ElementCount int    `json:"element_count"`
}

// NewArticleContentSaved creates an ArticleContentSaved event
func NewArticleContentSaved(articleID, templateID string, elementCount int, timestamp time.Time) ArticleContentSaved {
	return ArticleContentSaved{
		BaseEvent: BaseEvent{
			AggregateID: articleID,
			EventType:   "article.content_saved",
			Timestamp:   timestamp,
			Version:     1,
		},
		ArticleID:    articleID,
		TemplateID:   templateID,
		ElementCount: elementCount,
	}
}
