package aggregates

import (
	"encoding/json"

	"pressroom-backend/domain/core/entities"
	"pressroom-backend/domain/core/valueobjects"
)

// LayoutJSON is the wire shape of a template layout. The surrounding
// storage and HTTP layers serialize this form; the aggregate itself stays
// encapsulated.
type LayoutJSON struct {
	CanvasWidth     int           `json:"canvasWidth"`
	CanvasHeight    int           `json:"canvasHeight"`
	BackgroundColor string        `json:"backgroundColor"`
	Elements        []ElementJSON `json:"elements"`
}

// ElementJSON is the wire shape of one template element
type ElementJSON struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	X          int                    `json:"x"`
	Y          int                    `json:"y"`
	Width      int                    `json:"width"`
	Height     int                    `json:"height"`
	ZIndex     int                    `json:"zIndex"`
	Properties map[string]interface{} `json:"properties"`
}

// EncodeLayout serializes a template's canvas and elements. Elements are
// emitted in ascending zIndex order, the same order every other read path
// uses.
func EncodeLayout(t *Template) LayoutJSON {
	elements := t.Elements()
	out := LayoutJSON{
		CanvasWidth:     t.Canvas().Width(),
		CanvasHeight:    t.Canvas().Height(),
		BackgroundColor: t.Canvas().BackgroundColor(),
		Elements:        make([]ElementJSON, 0, len(elements)),
	}
	for _, element := range elements {
		out.Elements = append(out.Elements, ElementJSON{
			ID:         element.ID().String(),
			Type:       element.Type().String(),
			X:          element.X(),
			Y:          element.Y(),
			Width:      element.Width(),
			Height:     element.Height(),
			ZIndex:     element.ZIndex(),
			Properties: element.Properties(),
		})
	}
	return out
}

// DecodeElements rebuilds elements from persisted layout data. Malformed
// data resolves to an empty slice and individually broken entries are
// skipped: callers treat "no elements yet" as a valid state, so historical
// templates with corrupt element data stay loadable.
func DecodeElements(raw []byte) []*entities.Element {
	if len(raw) == 0 {
		return []*entities.Element{}
	}

	var layout LayoutJSON
	if err := json.Unmarshal(raw, &layout); err != nil {
		return []*entities.Element{}
	}
	return ElementsFromJSON(layout.Elements)
}

// ElementsFromJSON converts wire-shaped elements into entities, dropping
// entries whose id or type cannot be resolved
func ElementsFromJSON(in []ElementJSON) []*entities.Element {
	elements := make([]*entities.Element, 0, len(in))
	for _, ej := range in {
		element, err := elementFromJSON(ej)
		if err != nil {
			continue
		}
		elements = append(elements, element)
	}
	return elements
}

func elementFromJSON(ej ElementJSON) (*entities.Element, error) {
	id, err := valueobjects.NewElementIDFromString(ej.ID)
	if err != nil {
		return nil, err
	}
	elementType, err := valueobjects.ParseElementType(ej.Type)
	if err != nil {
		return nil, err
	}
	return entities.ReconstructElement(id, elementType, ej.X, ej.Y, ej.Width, ej.Height, ej.ZIndex, ej.Properties)
}
