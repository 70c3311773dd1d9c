package laneshift

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/lane-shift/internal/config"
	"github.com/vovakirdan/lane-shift/internal/core"
)

// Shape is the outline used to draw the player token.
type Shape string

const (
	ShapeSquare    Shape = "square"
	ShapeCircle    Shape = "circle"
	ShapeRectangle Shape = "rectangle"
)

// Shapes lists the selectable shapes in menu order.
var Shapes = []Shape{ShapeSquare, ShapeCircle, ShapeRectangle}

// Valid reports whether s is a known shape.
func (s Shape) Valid() bool {
	for _, known := range Shapes {
		if s == known {
			return true
		}
	}
	return false
}

// Next returns the shape after s in menu order, wrapping around.
func (s Shape) Next() Shape {
	for i, known := range Shapes {
		if s == known {
			return Shapes[(i+1)%len(Shapes)]
		}
	}
	return Shapes[0]
}

// Sprite limits keep a custom sprite inside one lane at the catch-line.
const (
	MaxSpriteRows = 3
	MaxSpriteCols = 8
)

// ErrEmptySprite is returned when a sprite file has no drawable content.
var ErrEmptySprite = errors.New("sprite is empty")

// Customization is the player's look. It only affects rendering.
type Customization struct {
	Shape  Shape
	Color  core.Color
	Sprite []string // Optional text-art sprite, replaces the shape when set
}

// DefaultCustomization returns the configured default look.
func DefaultCustomization(cfg config.PlayerConfig) Customization {
	return Customization{
		Shape: Shape(cfg.Shape),
		Color: core.Color(cfg.Color),
	}.Normalize(Customization{Shape: ShapeSquare, Color: "#4caf50"})
}

// Normalize replaces unknown shapes and malformed colors with the
// fallback's values and trims the sprite to the allowed size.
func (c Customization) Normalize(fallback Customization) Customization {
	if !c.Shape.Valid() {
		c.Shape = fallback.Shape
	}
	if !c.Color.IsHex() {
		c.Color = fallback.Color
	}
	c.Sprite = trimSprite(c.Sprite)
	return c
}

// LoadSprite reads a text-art sprite from a file.
func LoadSprite(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("laneshift: cannot open sprite: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() && len(lines) < MaxSpriteRows {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("laneshift: cannot read sprite: %w", err)
	}

	sprite := trimSprite(lines)
	if len(sprite) == 0 {
		return nil, fmt.Errorf("laneshift: %s: %w", path, ErrEmptySprite)
	}
	return sprite, nil
}

// trimSprite cuts rows and columns to the sprite limits and drops blank
// trailing rows. Returns nil when nothing drawable remains.
func trimSprite(lines []string) []string {
	if len(lines) > MaxSpriteRows {
		lines = lines[:MaxSpriteRows]
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if utf8.RuneCountInString(line) > MaxSpriteCols {
			line = string([]rune(line)[:MaxSpriteCols])
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Player is the controllable token.
type Player struct {
	Lane Lane
	Look Customization
}

// Move shifts the player one lane in direction (negative is left).
// The result is clamped to the outer lanes; it never wraps.
func (p Player) Move(direction int) Player {
	switch {
	case direction < 0:
		direction = -1
	case direction > 0:
		direction = 1
	}
	p.Lane = clampLane(int(p.Lane) + direction)
	return p
}
