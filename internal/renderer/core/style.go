// Package core provides the cell and style types shared by the console and
// its display backends.
package core

import "fmt"

// Attribute represents text attributes.
type Attribute uint8

// Text attribute flags.
const (
	AttrNone    Attribute = 0
	AttrBold    Attribute = 1 << iota
	AttrReverse           // Reverse video (swap fg/bg)
	AttrUnderline
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Color is a terminal color. The zero value is the terminal default.
type Color struct {
	R, G, B uint8
	// Set is false for the terminal's default color.
	Set bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{}

// Common colors.
var (
	ColorBlack = Color{R: 0, G: 0, B: 0, Set: true}
	ColorWhite = Color{R: 255, G: 255, B: 255, Set: true}
)

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// IsDefault returns true if this is the terminal default color.
func (c Color) IsDefault() bool {
	return !c.Set
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Style represents the visual style of a cell.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{}
}

// StatusStyle is black text on a white background, used for the status bar.
func StatusStyle() Style {
	return Style{Foreground: ColorBlack, Background: ColorWhite}
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Reverse returns a new style with reverse video added.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Cell is a single terminal cell.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell with default style.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}
