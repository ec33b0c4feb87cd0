package valueobjects

import (
	pkgerrors "pressroom-backend/pkg/errors"
)

// Canvas defaults applied whenever persisted template data is missing a value
const (
	DefaultCanvasWidth     = 1080
	DefaultCanvasHeight    = 1920
	DefaultBackgroundColor = "#FFFFFF"
)

// CanvasProperties is a value object describing the template canvas:
// its dimensions and background color.
type CanvasProperties struct {
	width           int
	height          int
	backgroundColor string
}

// DefaultCanvasProperties returns the canvas every new template starts with
func DefaultCanvasProperties() CanvasProperties {
	return CanvasProperties{
		width:           DefaultCanvasWidth,
		height:          DefaultCanvasHeight,
		backgroundColor: DefaultBackgroundColor,
	}
}

// NewCanvasProperties creates canvas properties with validation.
// Zero or missing values are substituted with the defaults so that
// partially persisted canvas data still produces a usable canvas.
func NewCanvasProperties(width, height int, backgroundColor string) (CanvasProperties, error) {
	if width < 0 || height < 0 {
		return CanvasProperties{}, pkgerrors.NewValidationError("canvas dimensions must be positive")
	}
	if width == 0 {
		width = DefaultCanvasWidth
	}
	if height == 0 {
		height = DefaultCanvasHeight
	}
	if backgroundColor == "" {
		backgroundColor = DefaultBackgroundColor
	}
	return CanvasProperties{
		width:           width,
		height:          height,
		backgroundColor: backgroundColor,
	}, nil
}

// Width returns the canvas width in pixels
func (c CanvasProperties) Width() int {
	if c.width == 0 {
		return DefaultCanvasWidth
	}
	return c.width
}

// Height returns the canvas height in pixels
func (c CanvasProperties) Height() int {
	if c.height == 0 {
		return DefaultCanvasHeight
	}
	return c.height
}

// BackgroundColor returns the canvas background as a hex color string
func (c CanvasProperties) BackgroundColor() string {
	if c.backgroundColor == "" {
		return DefaultBackgroundColor
	}
	return c.backgroundColor
}

// Equals checks if two canvas property sets are equal
func (c CanvasProperties) Equals(other CanvasProperties) bool {
	return c.Width() == other.Width() &&
		c.Height() == other.Height() &&
		c.BackgroundColor() == other.BackgroundColor()
}
