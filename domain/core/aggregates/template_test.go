package aggregates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressroom-backend/domain/core/entities"
	"pressroom-backend/domain/core/valueobjects"
	pkgerrors "pressroom-backend/pkg/errors"
)

func newTestElement(t *testing.T, elementType valueobjects.ElementType, zIndex int) *entities.Element {
	t.Helper()
	element, err := entities.NewElement(elementType, 0, 0, 100, 50)
	require.NoError(t, err)
	element.SetZIndex(zIndex)
	return element
}

func TestNewTemplate_StartsWithDefaultCanvas(t *testing.T) {
	template, err := NewTemplate("owner-1", "Weekly Digest")
	require.NoError(t, err)

	assert.NotEmpty(t, template.ID().String())
	assert.Equal(t, "owner-1", template.OwnerID())
	assert.Equal(t, 1080, template.Canvas().Width())
	assert.Equal(t, 1920, template.Canvas().Height())
	assert.Equal(t, "#FFFFFF", template.Canvas().BackgroundColor())
	assert.Equal(t, 1, template.Version())
	assert.Equal(t, 0, template.ElementCount())
}

func TestNewTemplate_RejectsEmptyOwnerAndName(t *testing.T) {
	_, err := NewTemplate("", "Name")
	assert.Error(t, err)

	_, err = NewTemplate("owner-1", "")
	assert.Error(t, err)
}

func TestTemplate_Elements_SortedByZIndex(t *testing.T) {
	template, err := NewTemplate("owner-1", "Layout")
	require.NoError(t, err)

	top := newTestElement(t, valueobjects.ElementTypeHeader, 5)
	bottom := newTestElement(t, valueobjects.ElementTypeText, -2)
	middle := newTestElement(t, valueobjects.ElementTypeImage, 1)

	require.NoError(t, template.AddElement(top))
	require.NoError(t, template.AddElement(bottom))
	require.NoError(t, template.AddElement(middle))

	elements := template.Elements()
	require.Len(t, elements, 3)
	assert.Equal(t, bottom.ID(), elements[0].ID())
	assert.Equal(t, middle.ID(), elements[1].ID())
	assert.Equal(t, top.ID(), elements[2].ID())
}

func TestTemplate_Elements_EqualZIndexKeepsInsertionOrder(t *testing.T) {
	template, err := NewTemplate("owner-1", "Layout")
	require.NoError(t, err)

	first := newTestElement(t, valueobjects.ElementTypeText, 3)
	second := newTestElement(t, valueobjects.ElementTypeQuote, 3)
	third := newTestElement(t, valueobjects.ElementTypeDivider, 3)

	require.NoError(t, template.AddElement(first))
	require.NoError(t, template.AddElement(second))
	require.NoError(t, template.AddElement(third))

	elements := template.Elements()
	require.Len(t, elements, 3)
	assert.Equal(t, first.ID(), elements[0].ID())
	assert.Equal(t, second.ID(), elements[1].ID())
	assert.Equal(t, third.ID(), elements[2].ID())
}

func TestTemplate_Elements_ReturnedSliceIsACopy(t *testing.T) {
	template, err := NewTemplate("owner-1", "Layout")
	require.NoError(t, err)
	require.NoError(t, template.AddElement(newTestElement(t, valueobjects.ElementTypeText, 0)))

	elements := template.Elements()
	elements[0] = nil

	assert.NotNil(t, template.Elements()[0])
}

func TestTemplate_AddElement_RejectsDuplicateID(t *testing.T) {
	template, err := NewTemplate("owner-1", "Layout")
	require.NoError(t, err)

	element := newTestElement(t, valueobjects.ElementTypeText, 0)
	require.NoError(t, template.AddElement(element))

	err = template.AddElement(element.Clone())
	assert.Error(t, err)
	assert.Equal(t, 1, template.ElementCount())
}

func TestTemplate_UpdateElement_PreservesInsertionPosition(t *testing.T) {
	template, err := NewTemplate("owner-1", "Layout")
	require.NoError(t, err)

	first := newTestElement(t, valueobjects.ElementTypeText, 1)
	second := newTestElement(t, valueobjects.ElementTypeQuote, 1)
	require.NoError(t, template.AddElement(first))
	require.NoError(t, template.AddElement(second))

	moved := first.Clone()
	moved.MoveTo(50, 60)
	require.NoError(t, template.UpdateElement(first.ID(), moved))

	elements := template.Elements()
	require.Len(t, elements, 2)
	assert.Equal(t, first.ID(), elements[0].ID(), "updated element keeps its slot among equal zIndex peers")
	assert.Equal(t, 50, elements[0].X())
	assert.Equal(t, 60, elements[0].Y())
}

func TestTemplate_UpdateElement_UnknownID(t *testing.T) {
	template, err := NewTemplate("owner-1", "Layout")
	require.NoError(t, err)

	err = template.UpdateElement(valueobjects.NewElementID(), newTestElement(t, valueobjects.ElementTypeText, 0))
	assert.ErrorIs(t, err, pkgerrors.ErrElementNotFound)
}

func TestTemplate_RemoveElement(t *testing.T) {
	template, err := NewTemplate("owner-1", "Layout")
	require.NoError(t, err)

	element := newTestElement(t, valueobjects.ElementTypeImage, 0)
	require.NoError(t, template.AddElement(element))

	require.NoError(t, template.RemoveElement(element.ID()))
	assert.Equal(t, 0, template.ElementCount())

	err = template.RemoveElement(element.ID())
	assert.ErrorIs(t, err, pkgerrors.ErrElementNotFound)
}

func TestTemplate_SetCanvas_NoopWhenUnchanged(t *testing.T) {
	template, err := NewTemplate("owner-1", "Layout")
	require.NoError(t, err)
	template.MarkEventsAsCommitted()
	versionBefore := template.Version()

	template.SetCanvas(valueobjects.DefaultCanvasProperties())

	assert.Equal(t, versionBefore, template.Version())
	assert.Empty(t, template.GetUncommittedEvents())
}

func TestTemplate_SetCanvas_BumpsVersion(t *testing.T) {
	template, err := NewTemplate("owner-1", "Layout")
	require.NoError(t, err)
	versionBefore := template.Version()

	canvas, err := valueobjects.NewCanvasProperties(800, 600, "#EEEEEE")
	require.NoError(t, err)
	template.SetCanvas(canvas)

	assert.Equal(t, versionBefore+1, template.Version())
	assert.Equal(t, 800, template.Canvas().Width())
}

func TestTemplate_EventAccumulation(t *testing.T) {
	template, err := NewTemplate("owner-1", "Layout")
	require.NoError(t, err)
	require.Len(t, template.GetUncommittedEvents(), 1)

	require.NoError(t, template.AddElement(newTestElement(t, valueobjects.ElementTypeText, 0)))
	assert.Len(t, template.GetUncommittedEvents(), 2)

	template.MarkEventsAsCommitted()
	assert.Empty(t, template.GetUncommittedEvents())
}
