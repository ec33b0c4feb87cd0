// Package services holds stateless domain services that operate across
// aggregates: mapping template layouts to editable article content and back.
package services

import (
	"pressroom-backend/domain/core/aggregates"
	"pressroom-backend/domain/core/entities"
	"pressroom-backend/domain/core/valueobjects"
)

// EditableField is one entry of the in-memory skeleton a user fills in
// while authoring an article. Divider fields carry no editable value; they
// exist only so the editor can render the separator in position.
type EditableField struct {
	ElementID string
	Type      valueobjects.ElementType
	Value     string
	// HasValue distinguishes "image never set" from "text cleared to empty".
	// Text-bearing fields always have a value once built; image fields gain
	// one only when a URL is present.
	HasValue bool
}

// Editable reports whether the field accepts user input
func (f EditableField) Editable() bool {
	return f.Type != valueobjects.ElementTypeDivider
}

// Mapper translates between template layouts, editable skeletons and
// persisted content payloads. The interface exists so the correlation
// strategy can be swapped without touching callers: ContentMapper matches
// content to skeleton entries positionally for compatibility with
// historically stored payloads; a stricter id-based implementation can
// replace it behind this interface.
type Mapper interface {
	BuildEditableSkeleton(template *aggregates.Template) []EditableField
	PopulateSkeletonFromContent(skeleton []EditableField, payload valueobjects.ContentPayload) []EditableField
	SerializeSkeletonToContent(skeleton []EditableField) valueobjects.ContentPayload
}

// ContentMapper is the positional Mapper implementation
type ContentMapper struct{}

// NewContentMapper creates a content mapper
func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

var _ Mapper = (*ContentMapper)(nil)

// BuildEditableSkeleton produces one editable field per template element,
// in extraction order (ascending zIndex, stable ties). Initial values come
// from the element's properties: text/content for text-bearing elements,
// url/imageUri for images, nothing for dividers. It never fails; an empty
// template yields an empty skeleton.
func (m *ContentMapper) BuildEditableSkeleton(template *aggregates.Template) []EditableField {
	elements := template.Elements()
	skeleton := make([]EditableField, 0, len(elements))

	for _, element := range elements {
		field := EditableField{
			ElementID: element.ID().String(),
			Type:      element.Type(),
		}

		switch {
		case element.Type().IsTextBearing():
			field.Value = initialTextValue(element)
			field.HasValue = true
		case element.Type().IsImage():
			if url, ok := initialImageValue(element); ok {
				field.Value = url
				field.HasValue = true
			}
		}

		skeleton = append(skeleton, field)
	}

	return skeleton
}

// PopulateSkeletonFromContent overlays a previously stored content payload
// onto a freshly built skeleton. Matching is positional: payload entries
// are consumed in order against the skeleton's editable fields, up to
// whichever runs out first. Trailing skeleton fields keep their
// template-derived defaults; trailing payload entries are dropped.
//
// Dividers never appear in stored payloads, so they are skipped when
// advancing through the skeleton. Payloads that fail to parse arrive here
// already empty, which degrades to "use template defaults" - a partially
// corrupt article must remain editable.
func (m *ContentMapper) PopulateSkeletonFromContent(skeleton []EditableField, payload valueobjects.ContentPayload) []EditableField {
	populated := make([]EditableField, len(skeleton))
	copy(populated, skeleton)

	entryIdx := 0
	for i := range populated {
		if entryIdx >= len(payload.Elements) {
			break
		}
		if !populated[i].Editable() {
			continue
		}

		entry := payload.Elements[entryIdx]
		entryIdx++

		switch {
		case populated[i].Type.IsTextBearing():
			if entry.Content != nil {
				populated[i].Value = *entry.Content
				populated[i].HasValue = true
			}
		case populated[i].Type.IsImage():
			if entry.URL != nil {
				populated[i].Value = *entry.URL
				populated[i].HasValue = true
			}
		}
	}

	return populated
}

// SerializeSkeletonToContent emits the content payload for persistence, in
// skeleton order. Text-bearing fields always serialize their content, empty
// string included. Image fields serialize a url key only once an image was
// actually set. Divider fields are skipped entirely: they carry no user
// content and are regenerated from the template on every load.
func (m *ContentMapper) SerializeSkeletonToContent(skeleton []EditableField) valueobjects.ContentPayload {
	entries := make([]valueobjects.ContentEntry, 0, len(skeleton))

	for _, field := range skeleton {
		if !field.Editable() {
			continue
		}

		entry := valueobjects.ContentEntry{
			ID:   field.ElementID,
			Type: field.Type.String(),
		}

		switch {
		case field.Type.IsTextBearing():
			content := field.Value
			entry.Content = &content
		case field.Type.IsImage():
			if field.HasValue {
				url := field.Value
				entry.URL = &url
			}
		}

		entries = append(entries, entry)
	}

	return valueobjects.ContentPayload{Elements: entries}
}

// initialTextValue reads the template-authored starting text for an element.
// Templates store it under text by convention, with content as the legacy key.
func initialTextValue(element *entities.Element) string {
	if text, ok := element.StringProperty(entities.PropText); ok {
		return text
	}
	if content, ok := element.StringProperty(entities.PropContent); ok {
		return content
	}
	return ""
}

// initialImageValue reads a previously hosted image URL off the element
func initialImageValue(element *entities.Element) (string, bool) {
	if url, ok := element.StringProperty(entities.PropURL); ok && url != "" {
		return url, true
	}
	if uri, ok := element.StringProperty(entities.PropImageURI); ok && uri != "" {
		return uri, true
	}
	return "", false
}
