package aggregates

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressroom-backend/domain/core/valueobjects"
)

func TestEncodeLayout_EmitsElementsInZIndexOrder(t *testing.T) {
	template, err := NewTemplate("owner-1", "Layout")
	require.NoError(t, err)

	top := newTestElement(t, valueobjects.ElementTypeHeader, 10)
	bottom := newTestElement(t, valueobjects.ElementTypeText, 0)
	require.NoError(t, template.AddElement(top))
	require.NoError(t, template.AddElement(bottom))

	layout := EncodeLayout(template)

	assert.Equal(t, 1080, layout.CanvasWidth)
	assert.Equal(t, 1920, layout.CanvasHeight)
	assert.Equal(t, "#FFFFFF", layout.BackgroundColor)
	require.Len(t, layout.Elements, 2)
	assert.Equal(t, bottom.ID().String(), layout.Elements[0].ID)
	assert.Equal(t, top.ID().String(), layout.Elements[1].ID)
}

func TestDecodeElements_RoundTrip(t *testing.T) {
	template, err := NewTemplate("owner-1", "Layout")
	require.NoError(t, err)

	element := newTestElement(t, valueobjects.ElementTypeQuote, 2)
	element.SetProperty("text", "To be or not to be")
	require.NoError(t, template.AddElement(element))

	raw, err := json.Marshal(EncodeLayout(template))
	require.NoError(t, err)

	decoded := DecodeElements(raw)
	require.Len(t, decoded, 1)
	assert.True(t, decoded[0].ID().Equals(element.ID()))
	assert.Equal(t, valueobjects.ElementTypeQuote, decoded[0].Type())
	assert.Equal(t, 2, decoded[0].ZIndex())
	text, ok := decoded[0].StringProperty("text")
	require.True(t, ok)
	assert.Equal(t, "To be or not to be", text)
}

func TestDecodeElements_MalformedDataYieldsEmptySlice(t *testing.T) {
	assert.Empty(t, DecodeElements([]byte("{broken")))
	assert.Empty(t, DecodeElements(nil))
}

func TestElementsFromJSON_SkipsUnresolvableEntries(t *testing.T) {
	in := []ElementJSON{
		{ID: "el-1", Type: "text", Width: 10, Height: 10},
		{ID: "", Type: "text"},
		{ID: "el-3", Type: "carousel"},
		{ID: "el-4", Type: "image", Width: -5},
		{ID: "el-5", Type: "divider"},
	}

	elements := ElementsFromJSON(in)

	require.Len(t, elements, 2)
	assert.Equal(t, "el-1", elements[0].ID().String())
	assert.Equal(t, "el-5", elements[1].ID().String())
}
