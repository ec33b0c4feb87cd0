package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCanvasProperties(t *testing.T) {
	canvas := DefaultCanvasProperties()

	assert.Equal(t, 1080, canvas.Width())
	assert.Equal(t, 1920, canvas.Height())
	assert.Equal(t, "#FFFFFF", canvas.BackgroundColor())
}

func TestNewCanvasProperties_ZeroValuesFallBackToDefaults(t *testing.T) {
	canvas, err := NewCanvasProperties(0, 0, "")
	require.NoError(t, err)

	assert.Equal(t, DefaultCanvasWidth, canvas.Width())
	assert.Equal(t, DefaultCanvasHeight, canvas.Height())
	assert.Equal(t, DefaultBackgroundColor, canvas.BackgroundColor())
}

func TestNewCanvasProperties_NegativeDimensionsRejected(t *testing.T) {
	_, err := NewCanvasProperties(-1, 100, "#000000")
	assert.Error(t, err)

	_, err = NewCanvasProperties(100, -1, "#000000")
	assert.Error(t, err)
}

func TestCanvasProperties_Equals(t *testing.T) {
	a, err := NewCanvasProperties(800, 600, "#FF0000")
	require.NoError(t, err)
	b, err := NewCanvasProperties(800, 600, "#FF0000")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.True(t, DefaultCanvasProperties().Equals(CanvasProperties{}),
		"zero value reads as the default canvas")
}
