package valueobjects

import (
	pkgerrors "pressroom-backend/pkg/errors"
)

// ElementType represents the kind of element placed on a template canvas.
// The set is closed: unknown types are rejected at construction and ignored
// when reading persisted data, never coerced to a known type.
type ElementType string

const (
	ElementTypeText    ElementType = "text"
	ElementTypeImage   ElementType = "image"
	ElementTypeHeader  ElementType = "header"
	ElementTypeDivider ElementType = "divider"
	ElementTypeQuote   ElementType = "quote"
)

// AllElementTypes returns every supported element type
func AllElementTypes() []ElementType {
	return []ElementType{
		ElementTypeText,
		ElementTypeImage,
		ElementTypeHeader,
		ElementTypeDivider,
		ElementTypeQuote,
	}
}

// ParseElementType converts a raw string into an ElementType
func ParseElementType(raw string) (ElementType, error) {
	t := ElementType(raw)
	if !t.IsValid() {
		return "", pkgerrors.NewValidationError("unknown element type: " + raw)
	}
	return t, nil
}

// String returns the string representation of the type
func (t ElementType) String() string {
	return string(t)
}

// IsValid reports whether the type belongs to the closed set
func (t ElementType) IsValid() bool {
	switch t {
	case ElementTypeText, ElementTypeImage, ElementTypeHeader, ElementTypeDivider, ElementTypeQuote:
		return true
	default:
		return false
	}
}

// IsTextBearing reports whether the element carries user-editable text.
// Text, header and quote elements store their value under a text property;
// dividers carry no editable value at all.
func (t ElementType) IsTextBearing() bool {
	switch t {
	case ElementTypeText, ElementTypeHeader, ElementTypeQuote:
		return true
	default:
		return false
	}
}

// IsImage reports whether the element holds a hosted image URL
func (t ElementType) IsImage() bool {
	return t == ElementTypeImage
}
