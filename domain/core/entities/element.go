package entities

import (
	"pressroom-backend/domain/core/valueobjects"
	pkgerrors "pressroom-backend/pkg/errors"
)

// Well-known property keys used by convention per element type.
// The properties bag itself has no fixed schema; callers read and write
// keys appropriate for the element's type.
const (
	PropText         = "text"
	PropContent      = "content"
	PropPlaceholder  = "placeholder"
	PropURL          = "url"
	PropImageURI     = "imageUri"
	PropThumbnailURI = "thumbnailUri"
)

// Element is one positioned, typed unit on a template canvas.
// Its id is generated at creation and immutable for the element's lifetime;
// stored article content correlates back to template elements through it.
type Element struct {
	id          valueobjects.ElementID
	elementType valueobjects.ElementType
	x           int
	y           int
	width       int
	height      int
	zIndex      int
	properties  map[string]interface{}
}

// NewElement creates a new element with a fresh id and full validation.
// The type must belong to the closed set and width/height must be
// non-negative; zIndex defaults to 0 and the properties bag starts empty.
func NewElement(elementType valueobjects.ElementType, x, y, width, height int) (*Element, error) {
	if !elementType.IsValid() {
		return nil, pkgerrors.NewValidationError("unknown element type: " + elementType.String())
	}
	if width < 0 || height < 0 {
		return nil, pkgerrors.NewValidationError("element width and height must be non-negative")
	}

	return &Element{
		id:          valueobjects.NewElementID(),
		elementType: elementType,
		x:           x,
		y:           y,
		width:       width,
		height:      height,
		zIndex:      0,
		properties:  make(map[string]interface{}),
	}, nil
}

// ReconstructElement rebuilds an element from repository data, preserving
// its original id. The same construction rules apply.
func ReconstructElement(
	id valueobjects.ElementID,
	elementType valueobjects.ElementType,
	x, y, width, height, zIndex int,
	properties map[string]interface{},
) (*Element, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("element id cannot be empty")
	}
	if !elementType.IsValid() {
		return nil, pkgerrors.NewValidationError("unknown element type: " + elementType.String())
	}
	if width < 0 || height < 0 {
		return nil, pkgerrors.NewValidationError("element width and height must be non-negative")
	}

	props := make(map[string]interface{}, len(properties))
	for k, v := range properties {
		props[k] = v
	}

	return &Element{
		id:          id,
		elementType: elementType,
		x:           x,
		y:           y,
		width:       width,
		height:      height,
		zIndex:      zIndex,
		properties:  props,
	}, nil
}

// ID returns the element's unique identifier
func (e *Element) ID() valueobjects.ElementID {
	return e.id
}

// Type returns the element's type
func (e *Element) Type() valueobjects.ElementType {
	return e.elementType
}

// X returns the horizontal canvas coordinate
func (e *Element) X() int {
	return e.x
}

// Y returns the vertical canvas coordinate
func (e *Element) Y() int {
	return e.y
}

// Width returns the element width
func (e *Element) Width() int {
	return e.width
}

// Height returns the element height
func (e *Element) Height() int {
	return e.height
}

// ZIndex returns the stacking order of the element
func (e *Element) ZIndex() int {
	return e.zIndex
}

// SetZIndex changes the stacking order
func (e *Element) SetZIndex(z int) {
	e.zIndex = z
}

// MoveTo repositions the element on the canvas
func (e *Element) MoveTo(x, y int) {
	e.x = x
	e.y = y
}

// Resize changes the element dimensions with validation
func (e *Element) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return pkgerrors.NewValidationError("element width and height must be non-negative")
	}
	e.width = width
	e.height = height
	return nil
}

// SetProperty writes a key into the properties bag. Value shape is not
// validated here; conventions per type are the caller's responsibility.
func (e *Element) SetProperty(key string, value interface{}) {
	if e.properties == nil {
		e.properties = make(map[string]interface{})
	}
	e.properties[key] = value
}

// Property reads a key from the properties bag
func (e *Element) Property(key string) (interface{}, bool) {
	value, ok := e.properties[key]
	return value, ok
}

// StringProperty reads a key and returns it as a string when it is one
func (e *Element) StringProperty(key string) (string, bool) {
	value, ok := e.properties[key]
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// Properties returns a copy of the properties bag, never nil
func (e *Element) Properties() map[string]interface{} {
	props := make(map[string]interface{}, len(e.properties))
	for k, v := range e.properties {
		props[k] = v
	}
	return props
}

// Clone returns a deep copy of the element with the same id
func (e *Element) Clone() *Element {
	return &Element{
		id:          e.id,
		elementType: e.elementType,
		x:           e.x,
		y:           e.y,
		width:       e.width,
		height:      e.height,
		zIndex:      e.zIndex,
		properties:  e.Properties(),
	}
}
