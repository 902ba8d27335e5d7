package radar

import (
	"github.com/midbel/svg"
)

type LineStyle int

const (
	StyleStraight LineStyle = iota
	StyleDotted
	StyleDashed
)

func (i LineStyle) setStroke(sk *svg.Stroke) {
	switch i {
	case StyleDotted:
		sk.DashArray(1)
	case StyleDashed:
		sk.DashArray(5)
	default:
	}
}

type Style struct {
	Line struct {
		Style   LineStyle
		Width   float64
		Opacity float64
	}
	Fill struct {
		Opacity float64
		List    Palette
	}
	Text struct {
		Size  float64
		Color string
		Pad   float64
	}
}

func DefaultStyle() Style {
	var s Style
	s.Line.Width = 1
	s.Line.Opacity = 1
	s.Fill.Opacity = 0.25
	s.Fill.List = Category10
	s.Text.Size = 10
	s.Text.Color = "black"
	s.Text.Pad = 25
	return s
}
