package style

import (
	"github.com/fatih/color"
)

// Painter applies a palette to text. The enabled flag is fixed when the
// Painter is created, so a colorized and a plain render can run side by
// side without touching fatih/color's process-wide NoColor switch.
type Painter struct {
	enabled bool
	palette Palette
	colors  map[Role]*color.Color
}

// NewPainter creates a Painter for the palette. When enabled is false every
// call to Paint returns its text unchanged.
func NewPainter(palette Palette, enabled bool) *Painter {
	p := &Painter{
		enabled: enabled,
		palette: palette,
		colors:  make(map[Role]*color.Color, len(palette)),
	}

	for role, s := range palette {
		if s.IsZero() {
			continue
		}
		c := color.New(s...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		p.colors[role] = c
	}

	return p
}

// Enabled reports whether the painter emits escape sequences.
func (p *Painter) Enabled() bool {
	return p.enabled
}

// Paint styles text with the role's style. Roles with no style, and every
// role when the painter is disabled, render plain.
func (p *Painter) Paint(role Role, text string) string {
	if !p.enabled {
		return text
	}
	c, ok := p.colors[role]
	if !ok {
		return text
	}
	return c.Sprint(text)
}
