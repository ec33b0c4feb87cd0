package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressroom-backend/domain/core/aggregates"
	"pressroom-backend/domain/core/entities"
	"pressroom-backend/domain/core/valueobjects"
)

func buildTestTemplate(t *testing.T) (*aggregates.Template, []*entities.Element) {
	t.Helper()
	template, err := aggregates.NewTemplate("owner-1", "Story Layout")
	require.NoError(t, err)

	header, err := entities.NewElement(valueobjects.ElementTypeHeader, 0, 0, 1080, 120)
	require.NoError(t, err)
	header.SetProperty(entities.PropText, "Headline goes here")

	divider, err := entities.NewElement(valueobjects.ElementTypeDivider, 0, 130, 1080, 4)
	require.NoError(t, err)
	divider.SetZIndex(1)

	body, err := entities.NewElement(valueobjects.ElementTypeText, 0, 150, 1080, 600)
	require.NoError(t, err)
	body.SetZIndex(2)

	image, err := entities.NewElement(valueobjects.ElementTypeImage, 0, 800, 1080, 400)
	require.NoError(t, err)
	image.SetZIndex(3)

	for _, el := range []*entities.Element{header, divider, body, image} {
		require.NoError(t, template.AddElement(el))
	}

	return template, []*entities.Element{header, divider, body, image}
}

func TestBuildEditableSkeleton_OneFieldPerElement(t *testing.T) {
	mapper := NewContentMapper()
	template, elements := buildTestTemplate(t)

	skeleton := mapper.BuildEditableSkeleton(template)

	require.Len(t, skeleton, 4)
	for i, field := range skeleton {
		assert.Equal(t, elements[i].ID().String(), field.ElementID)
	}

	assert.Equal(t, "Headline goes here", skeleton[0].Value)
	assert.True(t, skeleton[0].HasValue)
	assert.False(t, skeleton[1].Editable(), "divider fields reject input")
	assert.True(t, skeleton[2].HasValue, "text fields always carry a value")
	assert.Equal(t, "", skeleton[2].Value)
	assert.False(t, skeleton[3].HasValue, "image without a url starts unset")
}

func TestBuildEditableSkeleton_EmptyTemplate(t *testing.T) {
	mapper := NewContentMapper()
	template, err := aggregates.NewTemplate("owner-1", "Blank")
	require.NoError(t, err)

	assert.Empty(t, mapper.BuildEditableSkeleton(template))
}

func TestBuildEditableSkeleton_LegacyContentKey(t *testing.T) {
	mapper := NewContentMapper()
	template, err := aggregates.NewTemplate("owner-1", "Legacy")
	require.NoError(t, err)

	element, err := entities.NewElement(valueobjects.ElementTypeText, 0, 0, 100, 100)
	require.NoError(t, err)
	element.SetProperty(entities.PropContent, "stored under the old key")
	require.NoError(t, template.AddElement(element))

	skeleton := mapper.BuildEditableSkeleton(template)
	require.Len(t, skeleton, 1)
	assert.Equal(t, "stored under the old key", skeleton[0].Value)
}

func TestSerializeSkeletonToContent_SkipsDividers(t *testing.T) {
	mapper := NewContentMapper()
	template, elements := buildTestTemplate(t)

	skeleton := mapper.BuildEditableSkeleton(template)
	skeleton[2].Value = "Article body"
	skeleton[3].Value = "https://img.example.com/i/photo.jpg"
	skeleton[3].HasValue = true

	payload := mapper.SerializeSkeletonToContent(skeleton)

	require.Len(t, payload.Elements, 3, "divider does not appear in the payload")
	assert.Equal(t, elements[0].ID().String(), payload.Elements[0].ID)
	assert.Equal(t, elements[2].ID().String(), payload.Elements[1].ID)
	assert.Equal(t, elements[3].ID().String(), payload.Elements[2].ID)

	require.NotNil(t, payload.Elements[1].Content)
	assert.Equal(t, "Article body", *payload.Elements[1].Content)
	require.NotNil(t, payload.Elements[2].URL)
	assert.Equal(t, "https://img.example.com/i/photo.jpg", *payload.Elements[2].URL)
}

func TestSerializeSkeletonToContent_UnsetImageOmitsURL(t *testing.T) {
	mapper := NewContentMapper()
	template, _ := buildTestTemplate(t)

	payload := mapper.SerializeSkeletonToContent(mapper.BuildEditableSkeleton(template))

	require.Len(t, payload.Elements, 3)
	assert.Nil(t, payload.Elements[2].URL)
	require.NotNil(t, payload.Elements[1].Content, "empty text still serializes a content string")
}

func TestPopulateSkeletonFromContent_PositionalMatch(t *testing.T) {
	mapper := NewContentMapper()
	template, _ := buildTestTemplate(t)

	skeleton := mapper.BuildEditableSkeleton(template)
	skeleton[0].Value = "Edited headline"
	skeleton[2].Value = "Edited body"
	skeleton[3].Value = "https://img.example.com/i/a.jpg"
	skeleton[3].HasValue = true
	payload := mapper.SerializeSkeletonToContent(skeleton)

	fresh := mapper.BuildEditableSkeleton(template)
	populated := mapper.PopulateSkeletonFromContent(fresh, payload)

	require.Len(t, populated, 4)
	assert.Equal(t, "Edited headline", populated[0].Value)
	assert.False(t, populated[1].Editable())
	assert.Equal(t, "Edited body", populated[2].Value)
	assert.Equal(t, "https://img.example.com/i/a.jpg", populated[3].Value)
	assert.True(t, populated[3].HasValue)
}

func TestPopulateSkeletonFromContent_ShorterPayloadKeepsDefaults(t *testing.T) {
	mapper := NewContentMapper()
	template, _ := buildTestTemplate(t)

	text := "Only the headline survived"
	payload := valueobjects.ContentPayload{Elements: []valueobjects.ContentEntry{
		{ID: "stale-id", Type: "header", Content: &text},
	}}

	populated := mapper.PopulateSkeletonFromContent(mapper.BuildEditableSkeleton(template), payload)

	require.Len(t, populated, 4)
	assert.Equal(t, text, populated[0].Value, "entries match by position, not by id")
	assert.Equal(t, "", populated[2].Value, "fields past the payload keep template defaults")
	assert.False(t, populated[3].HasValue)
}

func TestPopulateSkeletonFromContent_LongerPayloadDropsTrailingEntries(t *testing.T) {
	mapper := NewContentMapper()
	template, err := aggregates.NewTemplate("owner-1", "Short")
	require.NoError(t, err)

	element, err := entities.NewElement(valueobjects.ElementTypeText, 0, 0, 100, 100)
	require.NoError(t, err)
	require.NoError(t, template.AddElement(element))

	first := "kept"
	second := "dropped"
	payload := valueobjects.ContentPayload{Elements: []valueobjects.ContentEntry{
		{ID: "a", Type: "text", Content: &first},
		{ID: "b", Type: "text", Content: &second},
	}}

	populated := mapper.PopulateSkeletonFromContent(mapper.BuildEditableSkeleton(template), payload)

	require.Len(t, populated, 1)
	assert.Equal(t, "kept", populated[0].Value)
}

func TestPopulateSkeletonFromContent_EmptyPayloadUsesTemplateDefaults(t *testing.T) {
	mapper := NewContentMapper()
	template, _ := buildTestTemplate(t)

	populated := mapper.PopulateSkeletonFromContent(
		mapper.BuildEditableSkeleton(template),
		valueobjects.EmptyContentPayload(),
	)

	require.Len(t, populated, 4)
	assert.Equal(t, "Headline goes here", populated[0].Value)
}
