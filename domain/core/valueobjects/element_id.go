package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// ElementID is a value object representing a unique template element identifier.
// It is generated once at element creation and never changes; stored article
// content references elements by this id.
type ElementID struct {
	value string
}

// NewElementID creates a new random ElementID
func NewElementID() ElementID {
	return ElementID{value: uuid.New().String()}
}

// NewElementIDFromString creates an ElementID from an existing string
func NewElementIDFromString(id string) (ElementID, error) {
	if id == "" {
		return ElementID{}, errors.New("element ID cannot be empty")
	}
	return ElementID{value: id}, nil
}

// String returns the string representation of the ElementID
func (id ElementID) String() string {
	return id.value
}

// Equals checks if two ElementIDs are equal
func (id ElementID) Equals(other ElementID) bool {
	return id.value == other.value
}

// IsZero checks if the ElementID is the zero value
func (id ElementID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id ElementID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *ElementID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("ElementID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}
