package valueobjects

import (
	"encoding/json"
)

// ContentPayload is the serialized, per-article form of the values a user
// filled into a template's elements. It is structurally shaped by the
// template that produced it but stored independently: editing the template
// later does not rewrite payloads already attached to articles.
type ContentPayload struct {
	Elements []ContentEntry `json:"elements"`
}

// ContentEntry is one filled-in element value inside a content payload.
// Text-bearing entries always carry a content string, empty when the user
// cleared it. Image entries carry a url only once an image was actually
// set; a nil URL distinguishes "no image yet" from "emptied text".
type ContentEntry struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Content *string `json:"content,omitempty"`
	URL     *string `json:"url,omitempty"`
}

// EmptyContentPayload returns a payload with no entries
func EmptyContentPayload() ContentPayload {
	return ContentPayload{Elements: []ContentEntry{}}
}

// ParseContentPayload decodes a persisted content payload. Malformed data
// resolves to an empty payload rather than an error: a partially corrupt
// stored article must remain viewable and editable.
func ParseContentPayload(data []byte) ContentPayload {
	if len(data) == 0 {
		return EmptyContentPayload()
	}

	var payload ContentPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return EmptyContentPayload()
	}
	if payload.Elements == nil {
		payload.Elements = []ContentEntry{}
	}
	return payload
}

// IsEmpty reports whether the payload holds no entries
func (p ContentPayload) IsEmpty() bool {
	return len(p.Elements) == 0
}

// Len returns the number of entries in the payload
func (p ContentPayload) Len() int {
	return len(p.Elements)
}

// Encode serializes the payload to JSON for persistence
func (p ContentPayload) Encode() ([]byte, error) {
	if p.Elements == nil {
		p.Elements = []ContentEntry{}
	}
	return json.Marshal(p)
}
