package aggregates

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"pressroom-backend/domain/config"
	"pressroom-backend/domain/core/entities"
	"pressroom-backend/domain/core/valueobjects"
	"pressroom-backend/domain/events"
	pkgerrors "pressroom-backend/pkg/errors"
)

// TemplateID represents a unique template identifier
type TemplateID string

// NewTemplateID creates a new random TemplateID
func NewTemplateID() TemplateID {
	return TemplateID(uuid.New().String())
}

// String returns the string representation
func (id TemplateID) String() string {
	return string(id)
}

// Template is the aggregate root for a reusable canvas layout. It owns the
// canvas properties and the positioned elements, and is the consistency
// boundary for all element mutations.
//
// The backing element slice preserves insertion order; every read and every
// serialization goes through Elements(), which stable-sorts by zIndex so
// equal-zIndex elements keep their insertion order. That ordering drives
// both visual stacking and the positional correlation the content mapper
// relies on, so it must never be produced by an unstable sort.
type Template struct {
	id        TemplateID
	ownerID   string
	name      string
	canvas    valueobjects.CanvasProperties
	elements  []*entities.Element
	createdAt time.Time
	updatedAt time.Time
	version   int

	events []events.DomainEvent
}

// NewTemplate creates a new empty template with the default canvas
func NewTemplate(ownerID, name string) (*Template, error) {
	if ownerID == "" {
		return nil, pkgerrors.NewValidationError("ownerID cannot be empty")
	}
	if name == "" {
		return nil, pkgerrors.NewValidationError("template name cannot be empty")
	}

	now := time.Now()
	template := &Template{
		id:        NewTemplateID(),
		ownerID:   ownerID,
		name:      name,
		canvas:    valueobjects.DefaultCanvasProperties(),
		elements:  []*entities.Element{},
		createdAt: now,
		updatedAt: now,
		version:   1,
		events:    []events.DomainEvent{},
	}

	template.addEvent(events.NewTemplateCreated(template.id.String(), ownerID, name, now))

	return template, nil
}

// ReconstructTemplate rebuilds a template from repository data with
// preserved timestamps and ids.
func ReconstructTemplate(
	id TemplateID,
	ownerID, name string,
	canvas valueobjects.CanvasProperties,
	elements []*entities.Element,
	createdAt, updatedAt time.Time,
	version int,
) (*Template, error) {
	if id == "" {
		return nil, pkgerrors.NewValidationError("template id cannot be empty")
	}
	if ownerID == "" {
		return nil, pkgerrors.NewValidationError("ownerID cannot be empty")
	}

	if elements == nil {
		elements = []*entities.Element{}
	}

	return &Template{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		canvas:    canvas,
		elements:  elements,
		createdAt: createdAt,
		updatedAt: updatedAt,
		version:   version,
		events:    []events.DomainEvent{},
	}, nil
}

// ID returns the template's unique identifier
func (t *Template) ID() TemplateID {
	return t.id
}

// OwnerID returns the owner's id
func (t *Template) OwnerID() string {
	return t.ownerID
}

// Name returns the template name
func (t *Template) Name() string {
	return t.name
}

// Canvas returns the template's canvas properties
func (t *Template) Canvas() valueobjects.CanvasProperties {
	return t.canvas
}

// Version returns the template's version for optimistic locking
func (t *Template) Version() int {
	return t.version
}

// CreatedAt returns when the template was created
func (t *Template) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt returns when the template was last updated
func (t *Template) UpdatedAt() time.Time {
	return t.updatedAt
}

// SetCanvas replaces the canvas properties
func (t *Template) SetCanvas(canvas valueobjects.CanvasProperties) {
	if canvas.Equals(t.canvas) {
		return
	}

	t.canvas = canvas
	t.updatedAt = time.Now()
	t.version++

	t.addEvent(events.NewCanvasChanged(t.id.String(), canvas, t.updatedAt))
}

// Elements returns the template's elements sorted ascending by zIndex.
// Ties keep insertion order. The returned slice is a copy; mutating it
// does not affect the template.
func (t *Template) Elements() []*entities.Element {
	sorted := make([]*entities.Element, len(t.elements))
	copy(sorted, t.elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ZIndex() < sorted[j].ZIndex()
	})
	return sorted
}

// ElementCount returns the number of elements on the canvas
func (t *Template) ElementCount() int {
	return len(t.elements)
}

// FindElement returns the element with the given id
func (t *Template) FindElement(id valueobjects.ElementID) (*entities.Element, error) {
	for _, element := range t.elements {
		if element.ID().Equals(id) {
			return element, nil
		}
	}
	return nil, pkgerrors.ErrElementNotFound
}

// AddElement appends an element to the template
func (t *Template) AddElement(element *entities.Element) error {
	return t.AddElementWithConfig(element, config.DefaultDomainConfig())
}

// AddElementWithConfig appends an element to the template with configuration
func (t *Template) AddElementWithConfig(element *entities.Element, cfg *config.DomainConfig) error {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	if element == nil {
		return pkgerrors.NewValidationError("element cannot be nil")
	}

	// Duplicate ids would make content correlation ambiguous
	for _, existing := range t.elements {
		if existing.ID().Equals(element.ID()) {
			return pkgerrors.NewConflictError("element id already present in template")
		}
	}

	if len(t.elements) >= cfg.MaxElementsPerTemplate {
		return pkgerrors.ErrElementLimitExceeded
	}

	t.elements = append(t.elements, element)
	t.updatedAt = time.Now()
	t.version++

	t.addEvent(events.NewElementAdded(t.id.String(), element.ID(), element.Type(), element.ZIndex(), t.updatedAt))

	return nil
}

// UpdateElement replaces the element whose id matches. The replacement
// keeps the original element's insertion position so equal-zIndex ordering
// stays stable across updates.
func (t *Template) UpdateElement(id valueobjects.ElementID, replacement *entities.Element) error {
	if replacement == nil {
		return pkgerrors.NewValidationError("replacement element cannot be nil")
	}

	for i, element := range t.elements {
		if element.ID().Equals(id) {
			t.elements[i] = replacement.Clone()
			t.updatedAt = time.Now()
			t.version++

			t.addEvent(events.NewElementUpdated(t.id.String(), id, t.updatedAt))
			return nil
		}
	}

	return pkgerrors.ErrElementNotFound
}

// RemoveElement removes the element with the given id
func (t *Template) RemoveElement(id valueobjects.ElementID) error {
	for i, element := range t.elements {
		if element.ID().Equals(id) {
			t.elements = append(t.elements[:i], t.elements[i+1:]...)
			t.updatedAt = time.Now()
			t.version++

			t.addEvent(events.NewElementRemoved(t.id.String(), id, t.updatedAt))
			return nil
		}
	}

	return pkgerrors.ErrElementNotFound
}

// GetUncommittedEvents returns all uncommitted domain events
func (t *Template) GetUncommittedEvents() []events.DomainEvent {
	return t.events
}

// MarkEventsAsCommitted clears the uncommitted events
func (t *Template) MarkEventsAsCommitted() {
	t.events = []events.DomainEvent{}
}

// addEvent adds a domain event to the uncommitted list
func (t *Template) addEvent(event events.DomainEvent) {
	t.events = append(t.events, event)
}
