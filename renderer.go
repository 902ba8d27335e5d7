package radar

import (
	"math"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

const currentColour = "currentColour"

type Renderer interface {
	Render(Serie) svg.Element
}

// PolygonRenderer draws one serie as a closed polygon with its vertices
// placed in polar coordinates, one spoke per point.
type PolygonRenderer struct {
	Fill    bool
	Opacity float64
	Width   float64
	Style   LineStyle
	Point   PointFunc
}

func (r PolygonRenderer) Render(serie Serie) svg.Element {
	if r.Width <= 0 {
		r.Width = 1
	}
	var (
		grp  = getBaseGroup(serie.Color, "polygon")
		pat  = getBasePath(r.Fill, r.Opacity, r.Width)
		ring = r.polygon(serie)
	)
	grp.Id = serie.Title
	r.Style.setStroke(&pat.Stroke)
	for i, pos := range ring {
		if i == 0 {
			pat.AbsMoveTo(pos)
		} else {
			pat.AbsLineTo(pos)
		}
	}
	pat.ClosePath()
	grp.Append(pat.AsElement())
	if r.Point != nil && len(ring) > 0 {
		for _, pos := range ring[:len(ring)-1] {
			if el := r.Point(pos); el != nil {
				grp.Append(el)
			}
		}
	}
	return grp.AsElement()
}

// polygon computes the closed vertex ring of a serie: one vertex per point
// plus the first vertex repeated to close the shape.
func (r PolygonRenderer) polygon(serie Serie) []svg.Pos {
	var ring []svg.Pos
	for i, pt := range serie.Points {
		var (
			ang = spokeAngle(serie.Angle, i)
			rad = serie.Radius.Scale(pt.Y)
		)
		ring = append(ring, getPosFromAngle(ang, rad))
	}
	if len(ring) > 0 {
		ring = append(ring, slices.Fst(ring))
	}
	return ring
}

func getBasePath(fill bool, opacity, width float64) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(currentColour, width)
	if fill {
		pat.Fill = svg.NewFill(currentColour)
		pat.Fill.Opacity = opacity
	} else {
		pat.Fill = svg.NewFill("none")
	}
	return pat
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}

func getPosFromAngle(angle, radius float64) svg.Pos {
	var (
		x1 = radius * math.Cos(angle)
		y1 = radius * math.Sin(angle)
	)
	return svg.NewPos(x1, y1)
}
